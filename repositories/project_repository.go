package repository

import (
	"context"
	"fmt"

	"esgreporting/database"
	"esgreporting/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, id int64, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		db:         db,
		collection: db.Collection("projects"),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	id, err := database.NextID(ctx, r.db, "projects")
	if err != nil {
		return err
	}
	project.ID = id

	_, err = r.collection.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id int64, project *models.Project) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": project})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no project found with id %d", id)
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no project found with id %d", id)
	}

	return nil
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.ProjectActivity) error
	GetByID(ctx context.Context, id int64) (*models.ProjectActivity, error)
	GetAll(ctx context.Context) ([]models.ProjectActivity, error)
	GetByProject(ctx context.Context, projectID int64) ([]models.ProjectActivity, error)
	Update(ctx context.Context, id int64, activity *models.ProjectActivity) error
	Delete(ctx context.Context, id int64) error
	DeleteByProject(ctx context.Context, projectID int64) error
}

type activityRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{
		db:         db,
		collection: db.Collection("activities"),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.ProjectActivity) error {
	id, err := database.NextID(ctx, r.db, "activities")
	if err != nil {
		return err
	}
	activity.ID = id

	_, err = r.collection.InsertOne(ctx, activity)
	return err
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*models.ProjectActivity, error) {
	var activity models.ProjectActivity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) GetAll(ctx context.Context) ([]models.ProjectActivity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.ProjectActivity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) GetByProject(ctx context.Context, projectID int64) ([]models.ProjectActivity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.ProjectActivity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, id int64, activity *models.ProjectActivity) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": activity})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no activity found with id %d", id)
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no activity found with id %d", id)
	}

	return nil
}

func (r *activityRepository) DeleteByProject(ctx context.Context, projectID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
