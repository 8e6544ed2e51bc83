package store

import (
	"context"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(database *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: database.Collection("users")}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func toUpdateResult(result *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) (*InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context, page, size int64) ([]models.User, error) {
	findOptions := options.Find().SetSkip(page * size).SetLimit(size)

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) SetRole(ctx context.Context, id string, role models.Role) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		return nil, err
	}
	return toUpdateResult(result), nil
}

func (s *MongoUserStore) SetStatus(ctx context.Context, id string, status models.UserStatus) (*UpdateResult, error) {
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

func (s *MongoUserStore) ReplaceProfile(ctx context.Context, id string, profile models.UserProfile) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"name":       profile.Name,
			"email":      profile.Email,
			"division":   profile.Division,
			"district":   profile.District,
			"upazila":    profile.Upazila,
			"image_url":  profile.ImageURL,
			"bloodGroup": profile.BloodGroup,
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return toUpdateResult(result), nil
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.collection.EstimatedDocumentCount(ctx)
}
