package store

import (
	"context"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoReferenceStore struct {
	divisions *mongo.Collection
	districts *mongo.Collection
	upazilas  *mongo.Collection
}

func NewMongoReferenceStore(database *mongo.Database) *MongoReferenceStore {
	return &MongoReferenceStore{
		divisions: database.Collection("divisions"),
		districts: database.Collection("districts"),
		upazilas:  database.Collection("upazilas"),
	}
}

func (s *MongoReferenceStore) Divisions(ctx context.Context) ([]models.Division, error) {
	cursor, err := s.divisions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	divisions := []models.Division{}
	if err := cursor.All(ctx, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

func (s *MongoReferenceStore) Districts(ctx context.Context) ([]models.District, error) {
	cursor, err := s.districts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	districts := []models.District{}
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

func (s *MongoReferenceStore) Upazilas(ctx context.Context) ([]models.Upazila, error) {
	cursor, err := s.upazilas.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	upazilas := []models.Upazila{}
	if err := cursor.All(ctx, &upazilas); err != nil {
		return nil, err
	}
	return upazilas, nil
}
