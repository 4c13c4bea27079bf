package usecase

import (
	"context"
	"io"

	"lifelink-backend/internal/domain/entity"
	"lifelink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// In-memory doubles for the repository and store interfaces. The db argument
// is ignored; authorization and not-found paths never reach a transaction, so
// a nil *gorm.DB is safe for the flows exercised here.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
	donors   []entity.Profile
	// lastDonorQuery records the compatible set passed to FindAvailableDonors
	lastDonorQuery []entity.BloodType
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}
	return repo
}

func (r *fakeProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	return r.profiles[userID], nil
}

func (r *fakeProfileRepo) Update(db *gorm.DB, profile *entity.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindAvailableDonors(db *gorm.DB, bloodTypes []entity.BloodType) ([]entity.Profile, error) {
	r.lastDonorQuery = bloodTypes

	compatible := map[entity.BloodType]bool{}
	for _, bt := range bloodTypes {
		compatible[bt] = true
	}

	matched := []entity.Profile{}
	for _, p := range r.donors {
		if compatible[p.BloodType] {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*entity.Hospital
	createErr error
}

func newFakeHospitalRepo(hospitals ...*entity.Hospital) *fakeHospitalRepo {
	repo := &fakeHospitalRepo{hospitals: map[uuid.UUID]*entity.Hospital{}}
	for _, h := range hospitals {
		repo.hospitals[h.ID] = h
	}
	return repo
}

func (r *fakeHospitalRepo) Create(db *gorm.DB, hospital *entity.Hospital) error {
	if r.createErr != nil {
		return r.createErr
	}
	if hospital.ID == uuid.Nil {
		hospital.ID = uuid.New()
	}
	r.hospitals[hospital.ID] = hospital
	return nil
}

func (r *fakeHospitalRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *fakeHospitalRepo) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	all := []entity.Hospital{}
	for _, h := range r.hospitals {
		all = append(all, *h)
	}
	return all, nil
}

func (r *fakeHospitalRepo) FindByStatus(db *gorm.DB, status entity.HospitalStatus) ([]entity.Hospital, error) {
	matched := []entity.Hospital{}
	for _, h := range r.hospitals {
		if h.Status == status {
			matched = append(matched, *h)
		}
	}
	return matched, nil
}

func (r *fakeHospitalRepo) Update(db *gorm.DB, hospital *entity.Hospital) error {
	r.hospitals[hospital.ID] = hospital
	return nil
}

func (r *fakeHospitalRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.hospitals[id]; !ok {
		return 0, nil
	}
	delete(r.hospitals, id)
	return 1, nil
}

type fakeBloodRequestRepo struct {
	requests map[uuid.UUID]*entity.BloodRequest
}

func newFakeBloodRequestRepo(requests ...*entity.BloodRequest) *fakeBloodRequestRepo {
	repo := &fakeBloodRequestRepo{requests: map[uuid.UUID]*entity.BloodRequest{}}
	for _, req := range requests {
		repo.requests[req.ID] = req
	}
	return repo
}

func (r *fakeBloodRequestRepo) Create(db *gorm.DB, request *entity.BloodRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeBloodRequestRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	return r.requests[id], nil
}

func (r *fakeBloodRequestRepo) FindByIDWithRelations(db *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	return r.requests[id], nil
}

func (r *fakeBloodRequestRepo) FindByRequester(db *gorm.DB, requesterID uuid.UUID) ([]entity.BloodRequest, error) {
	matched := []entity.BloodRequest{}
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			matched = append(matched, *req)
		}
	}
	return matched, nil
}

func (r *fakeBloodRequestRepo) FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BloodRequest, error) {
	matched := []entity.BloodRequest{}
	for _, req := range r.requests {
		if req.HospitalID == hospitalID {
			matched = append(matched, *req)
		}
	}
	return matched, nil
}

func (r *fakeBloodRequestRepo) Update(db *gorm.DB, request *entity.BloodRequest) error {
	r.requests[request.ID] = request
	return nil
}

type fakeDonationRepo struct {
	donations map[uuid.UUID]*entity.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: map[uuid.UUID]*entity.Donation{}}
}

func (r *fakeDonationRepo) Create(db *gorm.DB, donation *entity.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	r.donations[donation.ID] = donation
	return nil
}

func (r *fakeDonationRepo) FindByDonor(db *gorm.DB, donorID uuid.UUID) ([]entity.Donation, error) {
	matched := []entity.Donation{}
	for _, d := range r.donations {
		if d.DonorID == donorID {
			matched = append(matched, *d)
		}
	}
	return matched, nil
}

func (r *fakeDonationRepo) FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Donation, error) {
	matched := []entity.Donation{}
	for _, d := range r.donations {
		if d.HospitalID == hospitalID {
			matched = append(matched, *d)
		}
	}
	return matched, nil
}

type fakeAuditService struct{}

func (fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}

type fakeNotificationStore struct {
	notifications map[uuid.UUID]*entity.Notification
	// failFor makes Save fail for specific donor IDs
	failFor map[uuid.UUID]error
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{
		notifications: map[uuid.UUID]*entity.Notification{},
		failFor:       map[uuid.UUID]error{},
	}
}

func (s *fakeNotificationStore) Save(ctx context.Context, n *entity.Notification) error {
	if err := s.failFor[n.DonorID]; err != nil {
		return err
	}
	clone := *n
	s.notifications[n.ID] = &clone
	return nil
}

func (s *fakeNotificationStore) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Notification, error) {
	matched := []entity.Notification{}
	for _, n := range s.notifications {
		if n.DonorID == donorID {
			matched = append(matched, *n)
		}
	}
	return matched, nil
}

func (s *fakeNotificationStore) Get(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, service.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (s *fakeNotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, ok := s.notifications[id]
	if !ok {
		return service.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}
