package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	media ports.MediaStorage
	log   zerolog.Logger
	now   func() time.Time
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, media ports.MediaStorage, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, media: media, log: log, now: time.Now}
}

// Create stores the optional media first, then the post referencing it.
// A failed post write leaves the stored file behind.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	caption := strings.TrimSpace(in.Caption)
	if caption == "" {
		return nil, fmt.Errorf("create post: %w", domain.ErrMissingField)
	}

	post := &domain.Post{
		Caption:   caption,
		CreatedBy: in.ActorID,
	}

	if in.Media != nil {
		ref, err := s.media.Store(ctx, *in.Media)
		if err != nil {
			s.log.Error().Err(err).Str("filename", in.Media.Filename).Msg("failed to store media")
			return nil, fmt.Errorf("create post: store media: %w", err)
		}
		post.Media = ref
	}

	post.CreatedAt = s.now().UTC()
	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.ActorID).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info().
		Str("post_id", created.ID).
		Str("user_id", in.ActorID).
		Bool("with_media", created.Media != "").
		Msg("post created")
	return created, nil
}

// List returns every post newest first with owners resolved.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	slices.SortStableFunc(posts, func(a, b *domain.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	owners := make([]string, len(posts))
	for i, p := range posts {
		owners[i] = p.CreatedBy
	}
	creators, err := resolveCreators(ctx, s.users, owners)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for _, p := range posts {
		p.Creator = creators[p.CreatedBy]
	}
	return posts, nil
}
