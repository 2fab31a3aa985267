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

const collectionEvents = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(collectionEvents)}
}

type mongoEvent struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	Date        string              `bson:"date"`
	Time        string              `bson:"time"`
	Place       string              `bson:"place"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
}

func (e *mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          e.ID.Hex(),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Place:       e.Place,
		CreatedBy:   ownerHex(e.CreatedBy),
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

// Create inserts a new event document.
func (r *EventRepository) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEvent{
		ID:          primitive.NewObjectID(),
		Title:       ev.Title,
		Description: ev.Description,
		Date:        ev.Date,
		Time:        ev.Time,
		Place:       ev.Place,
		CreatedBy:   ownerID(ev.CreatedBy),
		CreatedAt:   ev.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all events sorted by date then time, ascending.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var docs []mongoEvent
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]*domain.Event, 0, len(docs))
	for i := range docs {
		events = append(events, docs[i].toDomain())
	}
	return events, nil
}

// EnsureIndexes creates the agenda ordering index.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
	})
	return err
}
