package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hudsonrene96-debug/todo-list-backend/entities"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoUsers is the UserRepository backed by the users collection.
type MongoUsers struct {
	coll *mongo.Collection
}

func NewMongoUsers(db *mongo.Database) *MongoUsers {
	return &MongoUsers{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique username index. Uniqueness lives in the
// store so concurrent registrations cannot race past a lookup.
func (r *MongoUsers) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

func (r *MongoUsers) Insert(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUsers) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// MongoTasks is the TaskRepository backed by the tasks collection.
type MongoTasks struct {
	coll *mongo.Collection
}

func NewMongoTasks(db *mongo.Database) *MongoTasks {
	return &MongoTasks{coll: db.Collection("tasks")}
}

func (r *MongoTasks) Insert(ctx context.Context, task *entities.Task) error {
	if task.ID == "" {
		task.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// FindByOwner sorts with an aggregation because Mongo's natural null
// ordering would put undated tasks first; the contract wants them last
// within each completion group.
func (r *MongoTasks) FindByOwner(ctx context.Context, userID, category string) ([]entities.Task, error) {
	match := bson.M{"userId": userID}
	if category != "" && category != entities.AllCategories {
		match["category"] = category
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{
			"undated": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$dueDate", nil}}, 0, 1,
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "completed", Value: 1},
			{Key: "undated", Value: 1},
			{Key: "dueDate", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
		{{Key: "$unset", Value: "undated"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks := []entities.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTasks) UpdateOwned(ctx context.Context, userID, taskID string, patch entities.TaskUpdate) (*entities.Task, error) {
	set := bson.M{}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.DueDate != nil && !patch.ClearDueDate {
		set["dueDate"] = *patch.DueDate
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if patch.ClearDueDate {
		update["$unset"] = bson.M{"dueDate": ""}
	}

	var task entities.Task
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": taskID, "userId": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

func (r *MongoTasks) DeleteOwned(ctx context.Context, userID, taskID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": taskID, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
