package eventRepo

import (
	"context"
	"fmt"
	"time"

	"flowdesk/database"
	"flowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository stores product events consumed by the analytics aggregators.
type EventRepository interface {
	// Record inserts a new event.
	Record(event *models.Event) error
	// ListByCompany retrieves a company's events recorded in [start, end].
	ListByCompany(companyID string, start, end time.Time) ([]models.Event, error)
}

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	repo := &MongoEventRepo{coll: database.Collection("events")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Record inserts a new event document.
func (r *MongoEventRepo) Record(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// ListByCompany retrieves a company's events recorded in [start, end].
func (r *MongoEventRepo) ListByCompany(companyID string, start, end time.Time) ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"companyId": companyID,
		"createdAt": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
