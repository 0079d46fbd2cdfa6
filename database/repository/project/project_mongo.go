package projectRepo

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

// ProjectRepository defines methods for project data access.
type ProjectRepository interface {
	// GetByID retrieves a project by its unique ID, scoped to a company.
	GetByID(companyID, id string) (*models.Project, error)
	// List retrieves all projects in a company, optionally including archived.
	List(companyID string, includeArchived bool) ([]models.Project, error)
	// Create inserts a new project record.
	Create(project *models.Project) error
	// Update modifies an existing project record.
	Update(project *models.Project) error
	// Delete removes a project record by its ID, scoped to a company.
	Delete(companyID, id string) error
	// CountActive counts unarchived projects owned by a user.
	CountActive(companyID, ownerID string) (int64, error)
}

// MongoProjectRepo implements ProjectRepository using MongoDB.
type MongoProjectRepo struct {
	coll *mongo.Collection
}

// NewMongoProjectRepo creates a new instance of ProjectRepository using MongoDB.
func NewMongoProjectRepo() ProjectRepository {
	repo := &MongoProjectRepo{coll: database.Collection("projects")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProjectRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "archived", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a project by its unique ID, scoped to a company.
func (r *MongoProjectRepo) GetByID(companyID, id string) (*models.Project, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var project models.Project
	filter := bson.M{"id": id, "companyId": companyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to fetch project with id %s: %w", id, err)
	}
	return &project, nil
}

// List retrieves all projects in a company.
func (r *MongoProjectRepo) List(companyID string, includeArchived bool) ([]models.Project, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"companyId": companyID}
	if !includeArchived {
		query["archived"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	for cursor.Next(ctx) {
		var p models.Project
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Create inserts a new project document.
func (r *MongoProjectRepo) Create(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update modifies an existing project document.
func (r *MongoProjectRepo) Update(project *models.Project) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	project.UpdatedAt = time.Now()
	filter := bson.M{"id": project.ID, "companyId": project.CompanyID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": project})
	if err != nil {
		return fmt.Errorf("failed to update project with id %s: %w", project.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("project with id %s not found", project.ID)
	}
	return nil
}

// Delete removes a project document by its ID, scoped to a company.
func (r *MongoProjectRepo) Delete(companyID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "companyId": companyID})
	if err != nil {
		return fmt.Errorf("failed to delete project with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("project with id %s not found", id)
	}
	return nil
}

// CountActive counts unarchived projects owned by a user.
func (r *MongoProjectRepo) CountActive(companyID, ownerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"companyId": companyID, "ownerId": ownerID, "archived": false}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
