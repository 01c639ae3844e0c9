package service

import (
	"context"
	"errors"
	"strings"

	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/pkg/notifier"
	"carconnect/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	labelGeneralInquiry = "General Inquiry"
	labelCarNotFound    = "Car not found"
)

type CreateInquiryInput struct {
	CarID   string
	CarName string
	Name    string
	Phone   string
	Message string
}

type InquiryService interface {
	Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error)
	GetAll(ctx context.Context) ([]*models.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type inquiryService struct {
	stg    storage.IInquiryStorage
	notify notifier.LeadNotifier
	log    logger.ILogger
}

func NewInquiryService(stg storage.IStorage, notify notifier.LeadNotifier, log logger.ILogger) InquiryService {
	return &inquiryService{
		stg:    stg.Inquiry(),
		notify: notify,
		log:    log,
	}
}

func (s *inquiryService) Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return nil, ErrMissingFields
	}

	inq := &models.Inquiry{
		ID:      uuid.NewString(),
		CarName: in.CarName,
		Name:    in.Name,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if in.CarID != "" {
		carID := in.CarID
		inq.CarID = &carID
	}

	created, err := s.stg.Create(ctx, inq)
	if err != nil {
		return nil, err
	}

	s.log.Info("inquiry received", logger.String("id", created.ID), logger.String("name", created.Name))

	// Push to staff off the request path; intake never waits on Telegram.
	go s.notify.NewLead(created)

	return created, nil
}

// GetAll returns every inquiry with CarLabel resolved for display: the
// referenced car's make, or a fallback when the inquiry is general or the
// listing has since been deleted.
func (s *inquiryService) GetAll(ctx context.Context) ([]*models.Inquiry, error) {
	inquiries, err := s.stg.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, inq := range inquiries {
		if inq.CarID == nil || *inq.CarID == "" {
			inq.CarLabel = labelGeneralInquiry
		} else if inq.CarLabel == "" {
			inq.CarLabel = labelCarNotFound
		}
	}
	return inquiries, nil
}

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	err := s.stg.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
