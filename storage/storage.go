package storage

import (
	"context"
	"io"

	"carconnect/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IStorage interface {
	Car() ICarStorage
	Inquiry() IInquiryStorage
	User() IUserStorage
	Session() ISessionStorage
	Close()
	GetPool() *pgxpool.Pool
}

type ICarStorage interface {
	Create(ctx context.Context, car *models.Car) (*models.Car, error)
	GetByID(ctx context.Context, id string) (*models.Car, error)
	GetAll(ctx context.Context) ([]*models.Car, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type IInquiryStorage interface {
	Create(ctx context.Context, inq *models.Inquiry) (*models.Inquiry, error)
	GetAll(ctx context.Context) ([]*models.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type IUserStorage interface {
	Create(ctx context.Context, email, passwordHash, role string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

type ISessionStorage interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}

// IBlobStorage is the image store. Save consumes the reader and returns
// the publicly fetchable URL of the stored object.
type IBlobStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}
