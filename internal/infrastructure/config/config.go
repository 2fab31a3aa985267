package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	MediaBackendLocal = "local"
	MediaBackendS3    = "s3"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	PublicDir   string   `env:"PUBLIC_DIR,   default=public"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Media   MediaConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET, default=secret"`
	TTL          time.Duration `env:"SESSION_TTL,    default=24h"`
	CookieSecure bool          `env:"COOKIE_SECURE,  default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=comunidad"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MediaConfig struct {
	Backend        string `env:"MEDIA_BACKEND,    default=local"`
	UploadDir      string `env:"UPLOAD_DIR,       default=uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES, default=52428800"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION, default=us-east-1"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// a missing .env is normal outside local development
	_ = godotenv.Load(envFiles...)

	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Media.Backend {
	case MediaBackendLocal:
	case MediaBackendS3:
		if c.Media.S3Bucket == "" || c.Media.S3PublicURL == "" {
			return fmt.Errorf("S3_BUCKET and S3_PUBLIC_URL are required when MEDIA_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.Media.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	return nil
}
