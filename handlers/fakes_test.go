package handlers

import (
	"context"
	"sort"
	"sync"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores backing the handler tests. They mirror the Mongo
// implementations' contracts: hex ObjectID identifiers, zero-count
// acknowledgments on a miss, size 0 meaning no limit.

func paginate[T any](items []T, page, size int64) []T {
	if size <= 0 {
		return items
	}
	start := page * size
	if start >= int64(len(items)) {
		return []T{}
	}
	end := start + size
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[start:end]
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func (s *fakeUserStore) Insert(_ context.Context, user models.User) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, store.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return &store.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindAll(_ context.Context, page, size int64) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(append([]models.User{}, s.users...), page, size), nil
}

func (s *fakeUserStore) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.User{}
	for _, user := range s.users {
		if user.Role == role {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func (s *fakeUserStore) SetRole(_ context.Context, id string, role models.Role) (*store.UpdateResult, error) {
	return s.update(id, func(user *models.User) { user.Role = role })
}

func (s *fakeUserStore) SetStatus(_ context.Context, id string, status models.UserStatus) (*store.UpdateResult, error) {
	return s.update(id, func(user *models.User) { user.Status = status })
}

func (s *fakeUserStore) update(id string, apply func(*models.User)) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == oid {
			apply(&s.users[i])
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &store.UpdateResult{Acknowledged: true}, nil
}

func (s *fakeUserStore) ReplaceProfile(_ context.Context, id string, profile models.UserProfile) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == oid {
			s.users[i].Name = profile.Name
			s.users[i].Email = profile.Email
			s.users[i].Division = profile.Division
			s.users[i].District = profile.District
			s.users[i].Upazila = profile.Upazila
			s.users[i].ImageURL = profile.ImageURL
			s.users[i].BloodGroup = profile.BloodGroup
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	s.users = append(s.users, models.User{
		ID:         oid,
		Name:       profile.Name,
		Email:      profile.Email,
		Division:   profile.Division,
		District:   profile.District,
		Upazila:    profile.Upazila,
		ImageURL:   profile.ImageURL,
		BloodGroup: profile.BloodGroup,
	})
	return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (s *fakeUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type fakeDonationStore struct {
	mu       sync.Mutex
	requests []models.DonationRequest
}

func (s *fakeDonationStore) Insert(_ context.Context, request models.DonationRequest) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	s.requests = append(s.requests, request)
	return &store.InsertResult{Acknowledged: true, InsertedID: request.ID}, nil
}

func (s *fakeDonationStore) Find(_ context.Context, requesterEmail string, page, size int64) ([]models.DonationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.DonationRequest{}
	for _, request := range s.requests {
		if requesterEmail == "" || request.RequesterEmail == requesterEmail {
			matched = append(matched, request)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return paginate(matched, page, size), nil
}

func (s *fakeDonationStore) FindAll(_ context.Context, page, size int64) ([]models.DonationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(append([]models.DonationRequest{}, s.requests...), page, size), nil
}

func (s *fakeDonationStore) Replace(_ context.Context, id string, request models.DonationRequest) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == oid {
			status := s.requests[i].Status
			donorName := s.requests[i].DonorName
			donorEmail := s.requests[i].DonorEmail
			date := s.requests[i].Date
			request.ID = oid
			request.Status = status
			request.DonorName = donorName
			request.DonorEmail = donorEmail
			request.Date = date
			s.requests[i] = request
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	request.ID = oid
	request.Status = ""
	request.DonorName = ""
	request.DonorEmail = ""
	s.requests = append(s.requests, request)
	return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (s *fakeDonationStore) AssignDonor(_ context.Context, id string, donor models.DonorAssignment) (*store.UpdateResult, error) {
	return s.update(id, func(request *models.DonationRequest) {
		request.Status = models.DonationInProgress
		request.DonorName = donor.DonorName
		request.DonorEmail = donor.DonorEmail
	})
}

func (s *fakeDonationStore) SetStatus(_ context.Context, id string, status models.DonationStatus) (*store.UpdateResult, error) {
	return s.update(id, func(request *models.DonationRequest) {
		request.Status = status
	})
}

func (s *fakeDonationStore) update(id string, apply func(*models.DonationRequest)) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == oid {
			apply(&s.requests[i])
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &store.UpdateResult{Acknowledged: true}, nil
}

func (s *fakeDonationStore) Delete(_ context.Context, id string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == oid {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{Acknowledged: true}, nil
}

func (s *fakeDonationStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.requests)), nil
}

func (s *fakeDonationStore) CountByRequester(_ context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, request := range s.requests {
		if request.RequesterEmail == email {
			count++
		}
	}
	return count, nil
}

type fakeBlogStore struct {
	mu    sync.Mutex
	blogs []models.Blog
}

func (s *fakeBlogStore) Insert(_ context.Context, blog models.Blog) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	s.blogs = append(s.blogs, blog)
	return &store.InsertResult{Acknowledged: true, InsertedID: blog.ID}, nil
}

func (s *fakeBlogStore) FindAll(_ context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Blog{}, s.blogs...), nil
}

func (s *fakeBlogStore) FindByStatus(_ context.Context, status models.BlogStatus) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Blog{}
	for _, blog := range s.blogs {
		if blog.Status == status {
			matched = append(matched, blog)
		}
	}
	return matched, nil
}

func (s *fakeBlogStore) FindByID(_ context.Context, id string) (*models.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == oid {
			blog := s.blogs[i]
			return &blog, nil
		}
	}
	return nil, nil
}

func (s *fakeBlogStore) SetStatus(_ context.Context, id string, status models.BlogStatus) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == oid {
			s.blogs[i].Status = status
			return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &store.UpdateResult{Acknowledged: true}, nil
}

func (s *fakeBlogStore) Delete(_ context.Context, id string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == oid {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{Acknowledged: true}, nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (s *fakePaymentStore) Insert(_ context.Context, payment models.Payment) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.payments = append(s.payments, payment)
	return &store.InsertResult{Acknowledged: true, InsertedID: payment.ID}, nil
}

func (s *fakePaymentStore) FindAll(_ context.Context, page, size int64) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(append([]models.Payment{}, s.payments...), page, size), nil
}

func (s *fakePaymentStore) All(ctx context.Context) ([]models.Payment, error) {
	return s.FindAll(ctx, 0, 0)
}

func (s *fakePaymentStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.payments)), nil
}

type fakeReferenceStore struct {
	divisions []models.Division
	districts []models.District
	upazilas  []models.Upazila
}

func (s *fakeReferenceStore) Divisions(_ context.Context) ([]models.Division, error) {
	return s.divisions, nil
}

func (s *fakeReferenceStore) Districts(_ context.Context) ([]models.District, error) {
	return s.districts, nil
}

func (s *fakeReferenceStore) Upazilas(_ context.Context) ([]models.Upazila, error) {
	return s.upazilas, nil
}
