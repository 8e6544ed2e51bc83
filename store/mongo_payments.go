package store

import (
	"context"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPaymentStore struct {
	collection *mongo.Collection
}

func NewMongoPaymentStore(database *mongo.Database) *MongoPaymentStore {
	return &MongoPaymentStore{collection: database.Collection("payments")}
}

func (s *MongoPaymentStore) Insert(ctx context.Context, payment models.Payment) (*InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoPaymentStore) FindAll(ctx context.Context, page, size int64) ([]models.Payment, error) {
	findOptions := options.Find().SetSkip(page * size).SetLimit(size)

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *MongoPaymentStore) All(ctx context.Context) ([]models.Payment, error) {
	return s.FindAll(ctx, 0, 0)
}

func (s *MongoPaymentStore) Count(ctx context.Context) (int64, error) {
	return s.collection.EstimatedDocumentCount(ctx)
}
