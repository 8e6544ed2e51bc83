package store

import (
	"context"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDonationStore struct {
	collection *mongo.Collection
}

func NewMongoDonationStore(database *mongo.Database) *MongoDonationStore {
	return &MongoDonationStore{collection: database.Collection("donationRequests")}
}

func (s *MongoDonationStore) Insert(ctx context.Context, request models.DonationRequest) (*InsertResult, error) {
	result, err := s.collection.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *MongoDonationStore) Find(ctx context.Context, requesterEmail string, page, size int64) ([]models.DonationRequest, error) {
	filter := bson.M{}
	if requesterEmail != "" {
		filter = bson.M{"requesterEmail": requesterEmail}
	}

	findOptions := options.Find().
		SetSort(bson.M{"date": -1}).
		SetSkip(page * size).
		SetLimit(size)

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *MongoDonationStore) FindAll(ctx context.Context, page, size int64) ([]models.DonationRequest, error) {
	findOptions := options.Find().SetSkip(page * size).SetLimit(size)

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Replace overwrites the descriptive fields only. Status and the assigned
// donor are owned by the transition endpoints and survive a full replace.
func (s *MongoDonationStore) Replace(ctx context.Context, id string, request models.DonationRequest) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"requesterName":  request.RequesterName,
			"requesterEmail": request.RequesterEmail,
			"recipientName":  request.RecipientName,
			"division":       request.Division,
			"district":       request.District,
			"upazila":        request.Upazila,
			"bloodGroup":     request.BloodGroup,
			"hospitalName":   request.HospitalName,
			"fullAddress":    request.FullAddress,
			"donationDate":   request.DonationDate,
			"donationTime":   request.DonationTime,
			"requestMessage": request.RequestMessage,
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
	if err != nil {
		return nil, err
	}
	return toUpdateResult(result), nil
}

func (s *MongoDonationStore) AssignDonor(ctx context.Context, id string, donor models.DonorAssignment) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"status":     models.DonationInProgress,
			"donorName":  donor.DonorName,
			"donorEmail": donor.DonorEmail,
		},
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, err
	}
	return toUpdateResult(result), nil
}

func (s *MongoDonationStore) SetStatus(ctx context.Context, id string, status models.DonationStatus) (*UpdateResult, error) {
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

func (s *MongoDonationStore) Delete(ctx context.Context, id string) (*DeleteResult, error) {
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

func (s *MongoDonationStore) Count(ctx context.Context) (int64, error) {
	return s.collection.EstimatedDocumentCount(ctx)
}

func (s *MongoDonationStore) CountByRequester(ctx context.Context, email string) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"requesterEmail": email})
}
