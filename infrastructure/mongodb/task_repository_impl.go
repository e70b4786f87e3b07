package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-tracker/domain/models"
	"task-tracker/domain/repositories"
)

type TaskRepositoryImpl struct {
	collection *mongo.Collection
	pinger     func(ctx context.Context) error
}

func NewTaskRepository(db *Database, collection string) repositories.TaskRepository {
	return &TaskRepositoryImpl{
		collection: db.Collection(collection),
		pinger:     db.Ping,
	}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	task.PrepareForInsert(time.Now().UTC())

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

func (r *TaskRepositoryImpl) Find(ctx context.Context) ([]*models.Task, error) {
	return r.find(ctx, options.Find())
}

func (r *TaskRepositoryImpl) FindSorted(ctx context.Context, field string, direction repositories.SortDirection) ([]*models.Task, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: field, Value: int(direction)}}))
}

func (r *TaskRepositoryImpl) find(ctx context.Context, opts *options.FindOptions) ([]*models.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeTasks(ctx, cursor)
}

// AggregateByStatusRank orders completed, in progress, pending, then anything else.
func (r *TaskRepositoryImpl) AggregateByStatusRank(ctx context.Context) ([]*models.Task, error) {
	cursor, err := r.collection.Aggregate(ctx, statusRankPipeline())
	if err != nil {
		return nil, err
	}
	return decodeTasks(ctx, cursor)
}

func statusRankPipeline() mongo.Pipeline {
	branch := func(status models.TaskStatus) bson.D {
		return bson.D{
			{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$status", string(status)}}}},
			{Key: "then", Value: status.Rank()},
		}
	}

	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{{Key: "statusRank", Value: bson.D{{Key: "$switch", Value: bson.D{
			{Key: "branches", Value: bson.A{
				branch(models.TaskStatusCompleted),
				branch(models.TaskStatusInProgress),
				branch(models.TaskStatusPending),
			}},
			{Key: "default", Value: models.TaskStatus("").Rank()},
		}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "statusRank", Value: 1}}}},
		{{Key: "$project", Value: bson.D{{Key: "statusRank", Value: 0}}}},
	}
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Task, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}

	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindByIDAndUpdate(ctx context.Context, id string, task *models.Task) (*models.Task, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}

	task.PrepareForUpdate(time.Now().UTC())
	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"dueDate":     task.DueDate,
		"status":      task.Status,
		"updatedAt":   task.UpdatedAt,
	}}

	var updated models.Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *TaskRepositoryImpl) FindByIDAndDelete(ctx context.Context, id string) (*models.Task, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}

	var deleted models.Task
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *TaskRepositoryImpl) Ping(ctx context.Context) error {
	return r.pinger(ctx)
}

// parseObjectID reports false for ids that can never match a stored document.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func decodeTasks(ctx context.Context, cursor *mongo.Cursor) ([]*models.Task, error) {
	defer cursor.Close(ctx)

	tasks := make([]*models.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
