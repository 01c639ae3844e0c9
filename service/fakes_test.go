package service

import (
	"context"
	"time"

	"carconnect/pkg/models"
	"carconnect/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fakeStorage struct {
	cars      *fakeCarRepo
	inquiries *fakeInquiryRepo
	users     *fakeUserRepo
	sessions  *fakeSessionRepo
}

func newFakeStorage() *fakeStorage {
	cars := &fakeCarRepo{byID: map[string]*models.Car{}}
	return &fakeStorage{
		cars:      cars,
		inquiries: &fakeInquiryRepo{cars: cars, byID: map[string]*models.Inquiry{}},
		users:     &fakeUserRepo{byID: map[int64]*models.User{}},
		sessions:  &fakeSessionRepo{byID: map[string]*models.Session{}},
	}
}

func (s *fakeStorage) Car() storage.ICarStorage         { return s.cars }
func (s *fakeStorage) Inquiry() storage.IInquiryStorage { return s.inquiries }
func (s *fakeStorage) User() storage.IUserStorage       { return s.users }
func (s *fakeStorage) Session() storage.ISessionStorage { return s.sessions }
func (s *fakeStorage) Close()                           {}
func (s *fakeStorage) GetPool() *pgxpool.Pool           { return nil }

type fakeCarRepo struct {
	byID  map[string]*models.Car
	order []string
}

func (r *fakeCarRepo) Create(_ context.Context, car *models.Car) (*models.Car, error) {
	car.CreatedAt = time.Now()
	r.byID[car.ID] = car
	r.order = append(r.order, car.ID)
	return car, nil
}

func (r *fakeCarRepo) GetByID(_ context.Context, id string) (*models.Car, error) {
	car, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return car, nil
}

func (r *fakeCarRepo) GetAll(_ context.Context) ([]*models.Car, error) {
	var cars []*models.Car
	for _, id := range r.order {
		if car, ok := r.byID[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func (r *fakeCarRepo) UpdateStatus(_ context.Context, id, status string) error {
	car, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	car.Status = status
	return nil
}

func (r *fakeCarRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type fakeInquiryRepo struct {
	cars  *fakeCarRepo
	byID  map[string]*models.Inquiry
	order []string
}

func (r *fakeInquiryRepo) Create(_ context.Context, inq *models.Inquiry) (*models.Inquiry, error) {
	inq.CreatedAt = time.Now()
	r.byID[inq.ID] = inq
	r.order = append(r.order, inq.ID)
	return inq, nil
}

// GetAll mirrors the SQL join: CarLabel carries the referenced car's make
// when the listing still exists, otherwise stays empty.
func (r *fakeInquiryRepo) GetAll(_ context.Context) ([]*models.Inquiry, error) {
	var inquiries []*models.Inquiry
	for _, id := range r.order {
		inq, ok := r.byID[id]
		if !ok {
			continue
		}
		inq.CarLabel = ""
		if inq.CarID != nil && r.cars != nil {
			if car, ok := r.cars.byID[*inq.CarID]; ok {
				inq.CarLabel = car.Make
			}
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

func (r *fakeInquiryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID   map[int64]*models.User
	nextID int64
}

func (r *fakeUserRepo) Create(_ context.Context, email, passwordHash, role string) (*models.User, error) {
	r.nextID++
	user := &models.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateEmail(_ context.Context, id int64, email string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Email = email
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	return nil
}

type fakeSessionRepo struct {
	byID map[string]*models.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, session *models.Session) error {
	session.CreatedAt = time.Now()
	r.byID[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*models.Session, error) {
	session, ok := r.byID[id]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	for id, session := range r.byID {
		if session.ExpiresAt.Before(time.Now()) {
			delete(r.byID, id)
		}
	}
	return nil
}
