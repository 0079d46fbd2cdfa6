package timeEntryRepo

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

// TimeEntryRepository defines methods for completed time-tracking intervals.
type TimeEntryRepository interface {
	// Create inserts a new time entry record.
	Create(entry *models.TimeEntry) error
	// ListByTask retrieves all entries logged against a task.
	ListByTask(companyID, taskID string) ([]models.TimeEntry, error)
	// ListByUserRange retrieves a user's entries overlapping [start, end].
	ListByUserRange(companyID, userID string, start, end time.Time) ([]models.TimeEntry, error)
}

// MongoTimeEntryRepo implements TimeEntryRepository using MongoDB.
type MongoTimeEntryRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeEntryRepo creates a new instance of TimeEntryRepository using MongoDB.
func NewMongoTimeEntryRepo() TimeEntryRepository {
	repo := &MongoTimeEntryRepo{coll: database.Collection("time_entries")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTimeEntryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "taskId", Value: 1}}},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "userId", Value: 1}, {Key: "startTime", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new time entry document.
func (r *MongoTimeEntryRepo) Create(entry *models.TimeEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	return nil
}

// ListByTask retrieves all entries logged against a task.
func (r *MongoTimeEntryRepo) ListByTask(companyID, taskID string) ([]models.TimeEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"companyId": companyID, "taskId": taskID}
	return r.find(ctx, filter)
}

// ListByUserRange retrieves a user's entries overlapping [start, end].
func (r *MongoTimeEntryRepo) ListByUserRange(companyID, userID string, start, end time.Time) ([]models.TimeEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"companyId": companyID,
		"userId":    userID,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}
	return r.find(ctx, filter)
}

func (r *MongoTimeEntryRepo) find(ctx context.Context, filter bson.M) ([]models.TimeEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve time entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.TimeEntry
	for cursor.Next(ctx) {
		var e models.TimeEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
