package store

import (
	"context"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoBlogStore struct {
	collection *mongo.Collection
}

func NewMongoBlogStore(database *mongo.Database) *MongoBlogStore {
	return &MongoBlogStore{collection: database.Collection("blogs")}
}

func (s *MongoBlogStore) Insert(ctx context.Context, blog models.Blog) (*InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, blog)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoBlogStore) FindAll(ctx context.Context) ([]models.Blog, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoBlogStore) FindByStatus(ctx context.Context, status models.BlogStatus) ([]models.Blog, error) {
	return s.find(ctx, bson.M{"status": status})
}

func (s *MongoBlogStore) find(ctx context.Context, filter bson.M) ([]models.Blog, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *MongoBlogStore) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var blog models.Blog
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *MongoBlogStore) SetStatus(ctx context.Context, id string, status models.BlogStatus) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return nil, err
	}
	return toUpdateResult(result), nil
}

func (s *MongoBlogStore) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
