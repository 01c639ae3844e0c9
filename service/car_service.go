package service

import (
	"context"
	"errors"
	"strings"

	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateCarInput struct {
	Make        string
	Model       string
	Year        int
	Price       float64
	Mileage     float64
	Description string
	Status      string
	ImageURLs   []string
}

type CarService interface {
	Create(ctx context.Context, in CreateCarInput) (*models.Car, error)
	GetAll(ctx context.Context) ([]*models.Car, error)
	GetByID(ctx context.Context, id string) (*models.Car, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type carService struct {
	stg storage.ICarStorage
	log logger.ILogger
}

func NewCarService(stg storage.IStorage, log logger.ILogger) CarService {
	return &carService{
		stg: stg.Car(),
		log: log,
	}
}

// Create writes the listing document. It is the second phase of the
// two-step listing flow: the image URLs must come from an already
// completed upload, so an empty list rejects the whole request.
func (s *carService) Create(ctx context.Context, in CreateCarInput) (*models.Car, error) {
	if strings.TrimSpace(in.Make) == "" || strings.TrimSpace(in.Model) == "" ||
		in.Year == 0 || in.Price == 0 {
		return nil, ErrMissingFields
	}
	if len(in.ImageURLs) == 0 {
		return nil, ErrNoImages
	}

	status := in.Status
	if status == "" {
		status = models.StatusAvailable
	}
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	car := &models.Car{
		ID:          uuid.NewString(),
		Make:        in.Make,
		Model:       in.Model,
		Year:        in.Year,
		Price:       in.Price,
		Mileage:     in.Mileage,
		Description: in.Description,
		Status:      status,
		ImageURLs:   in.ImageURLs,
	}

	created, err := s.stg.Create(ctx, car)
	if err != nil {
		return nil, err
	}

	s.log.Info("car listing created",
		logger.String("id", created.ID),
		logger.String("make", created.Make),
		logger.String("model", created.Model),
		logger.Int("images", len(created.ImageURLs)),
	)
	return created, nil
}

func (s *carService) GetAll(ctx context.Context) ([]*models.Car, error) {
	return s.stg.GetAll(ctx)
}

func (s *carService) GetByID(ctx context.Context, id string) (*models.Car, error) {
	car, err := s.stg.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return car, err
}

func (s *carService) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	err := s.stg.UpdateStatus(ctx, id, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *carService) Delete(ctx context.Context, id string) error {
	err := s.stg.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
