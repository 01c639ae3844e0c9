package api

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"carconnect/pkg/models"
	"carconnect/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// In-memory storage so handler tests can drive the real service layer
// without Postgres.
type memStorage struct {
	cars      *memCarRepo
	inquiries *memInquiryRepo
	users     *memUserRepo
	sessions  *memSessionRepo
}

func newMemStorage() *memStorage {
	cars := &memCarRepo{byID: map[string]*models.Car{}}
	return &memStorage{
		cars:      cars,
		inquiries: &memInquiryRepo{cars: cars, byID: map[string]*models.Inquiry{}},
		users:     &memUserRepo{byID: map[int64]*models.User{}},
		sessions:  &memSessionRepo{byID: map[string]*models.Session{}},
	}
}

func (s *memStorage) Car() storage.ICarStorage         { return s.cars }
func (s *memStorage) Inquiry() storage.IInquiryStorage { return s.inquiries }
func (s *memStorage) User() storage.IUserStorage       { return s.users }
func (s *memStorage) Session() storage.ISessionStorage { return s.sessions }
func (s *memStorage) Close()                           {}
func (s *memStorage) GetPool() *pgxpool.Pool           { return nil }

type memCarRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.Car
	order []string
}

func (r *memCarRepo) Create(_ context.Context, car *models.Car) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	car.CreatedAt = time.Now()
	r.byID[car.ID] = car
	r.order = append(r.order, car.ID)
	return car, nil
}

func (r *memCarRepo) GetByID(_ context.Context, id string) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	car, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return car, nil
}

func (r *memCarRepo) GetAll(_ context.Context) ([]*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cars []*models.Car
	for _, id := range r.order {
		if car, ok := r.byID[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func (r *memCarRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	car, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	car.Status = status
	return nil
}

func (r *memCarRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type memInquiryRepo struct {
	mu    sync.Mutex
	cars  *memCarRepo
	byID  map[string]*models.Inquiry
	order []string
}

func (r *memInquiryRepo) Create(_ context.Context, inq *models.Inquiry) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq.CreatedAt = time.Now()
	r.byID[inq.ID] = inq
	r.order = append(r.order, inq.ID)
	return inq, nil
}

func (r *memInquiryRepo) GetAll(_ context.Context) ([]*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var inquiries []*models.Inquiry
	for _, id := range r.order {
		inq, ok := r.byID[id]
		if !ok {
			continue
		}
		inq.CarLabel = ""
		if inq.CarID != nil {
			if car, ok := r.cars.byID[*inq.CarID]; ok {
				inq.CarLabel = car.Make
			}
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

func (r *memInquiryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type memUserRepo struct {
	mu     sync.Mutex
	byID   map[int64]*models.User
	nextID int64
}

func (r *memUserRepo) Create(_ context.Context, email, passwordHash, role string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memUserRepo) UpdateEmail(_ context.Context, id int64, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Email = email
	return nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	return nil
}

type memSessionRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Session
}

func (r *memSessionRepo) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.CreatedAt = time.Now()
	r.byID[session.ID] = session
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.byID[id]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, pgx.ErrNoRows
	}
	return session, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context) error { return nil }

// memBlob records saves in order; failAfter>0 makes the nth save fail to
// exercise the mid-batch rollback.
type memBlob struct {
	mu        sync.Mutex
	saved     []string
	removed   []string
	failAfter int
}

func (b *memBlob) Save(_ context.Context, name string, r io.Reader) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAfter > 0 && len(b.saved) >= b.failAfter {
		return "", fmt.Errorf("blob store unavailable")
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	b.saved = append(b.saved, name)
	return "http://localhost:8080/uploads/" + name, nil
}

func (b *memBlob) Remove(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removed = append(b.removed, name)
	return nil
}
