package store

import (
	"context"
	"errors"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateEmail reports a registration against an email that already
	// has a user record. Backed by the unique index on users.email.
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidID reports a document identifier that is not a valid hex
	// ObjectID. Handlers answer it with 400 instead of letting it crash
	// the request.
	ErrInvalidID = errors.New("invalid document id")
)

// Acknowledgment types mirror the driver results so list/update/delete
// handlers can return them to the client as-is.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UserStore interface {
	Insert(ctx context.Context, user models.User) (*InsertResult, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, size int64) ([]models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) (*UpdateResult, error)
	SetStatus(ctx context.Context, id string, status models.UserStatus) (*UpdateResult, error)
	ReplaceProfile(ctx context.Context, id string, profile models.UserProfile) (*UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type DonationStore interface {
	Insert(ctx context.Context, request models.DonationRequest) (*InsertResult, error)
	// Find filters by requester email when one is given and sorts by date
	// descending. Size 0 means no limit.
	Find(ctx context.Context, requesterEmail string, page, size int64) ([]models.DonationRequest, error)
	FindAll(ctx context.Context, page, size int64) ([]models.DonationRequest, error)
	Replace(ctx context.Context, id string, request models.DonationRequest) (*UpdateResult, error)
	AssignDonor(ctx context.Context, id string, donor models.DonorAssignment) (*UpdateResult, error)
	SetStatus(ctx context.Context, id string, status models.DonationStatus) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	Count(ctx context.Context) (int64, error)
	CountByRequester(ctx context.Context, email string) (int64, error)
}

type BlogStore interface {
	Insert(ctx context.Context, blog models.Blog) (*InsertResult, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindByStatus(ctx context.Context, status models.BlogStatus) ([]models.Blog, error)
	// FindByID returns (nil, nil) when no blog matches.
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	SetStatus(ctx context.Context, id string, status models.BlogStatus) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (*InsertResult, error)
	FindAll(ctx context.Context, page, size int64) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
	Count(ctx context.Context) (int64, error)
}

type ReferenceStore interface {
	Divisions(ctx context.Context) ([]models.Division, error)
	Districts(ctx context.Context) ([]models.District, error)
	Upazilas(ctx context.Context) ([]models.Upazila, error)
}

// Stores bundles every per-entity store so main can wire handlers in one shot.
type Stores struct {
	Users     UserStore
	Donations DonationStore
	Blogs     BlogStore
	Payments  PaymentStore
	Reference ReferenceStore
}

func NewMongoStores(database *mongo.Database) *Stores {
	return &Stores{
		Users:     NewMongoUserStore(database),
		Donations: NewMongoDonationStore(database),
		Blogs:     NewMongoBlogStore(database),
		Payments:  NewMongoPaymentStore(database),
		Reference: NewMongoReferenceStore(database),
	}
}
