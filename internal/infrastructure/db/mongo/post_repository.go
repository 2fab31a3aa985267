package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comunidad/social-api/internal/core/domain"
)

const collectionPosts = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(collectionPosts)}
}

type mongoPost struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Caption   string              `bson:"caption"`
	Media     string              `bson:"media,omitempty"`
	CreatedBy *primitive.ObjectID `bson:"createdBy,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
}

func (p *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        p.ID.Hex(),
		Caption:   p.Caption,
		Media:     p.Media,
		CreatedBy: ownerHex(p.CreatedBy),
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		Caption:   post.Caption,
		Media:     post.Media,
		CreatedBy: ownerID(post.CreatedBy),
		CreatedAt: post.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	var docs []mongoPost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toDomain())
	}
	return posts, nil
}

func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}})
	return err
}
