package meetingRepo

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

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo creates a new instance of MeetingRepository using MongoDB.
func NewMongoMeetingRepo() MeetingRepository {
	repo := &MongoMeetingRepo{coll: database.Collection("meetings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMeetingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "userId", Value: 1}, {Key: "startTime", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a meeting by its unique ID, scoped to a company.
func (r *MongoMeetingRepo) GetByID(companyID, id string) (*models.Meeting, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var meeting models.Meeting
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("failed to fetch meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

// GetOverlappingRange returns the user's non-recurring meetings overlapping
// [start, end] plus all recurring meetings (their occurrences inside the
// range are expanded by the availability engine, not here).
func (r *MongoMeetingRepo) GetOverlappingRange(companyID, userID string, start, end time.Time) ([]models.Meeting, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"companyId": companyID,
		"userId":    userID,
		"$or": []bson.M{
			{"isRecurring": true},
			{"startTime": bson.M{"$lt": end}, "endTime": bson.M{"$gt": start}},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	for cursor.Next(ctx) {
		var m models.Meeting
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// Create inserts a new meeting document.
func (r *MongoMeetingRepo) Create(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// Update modifies an existing meeting document.
func (r *MongoMeetingRepo) Update(meeting *models.Meeting) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	meeting.UpdatedAt = time.Now()
	filter := bson.M{"id": meeting.ID, "companyId": meeting.CompanyID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": meeting})
	if err != nil {
		return fmt.Errorf("failed to update meeting with id %s: %w", meeting.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", meeting.ID)
	}
	return nil
}

// Delete removes a meeting document by its ID, scoped to a company.
func (r *MongoMeetingRepo) Delete(companyID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "companyId": companyID})
	if err != nil {
		return fmt.Errorf("failed to delete meeting with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("meeting with id %s not found", id)
	}
	return nil
}
