package postgres

import (
	"context"

	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type inquiryRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewInquiryRepo(db *pgxpool.Pool, log logger.ILogger) storage.IInquiryStorage {
	return &inquiryRepo{db: db, log: log}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *models.Inquiry) (*models.Inquiry, error) {
	query := `
		INSERT INTO inquiries (id, car_id, car_name, name, phone, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		inq.ID,
		inq.CarID,
		inq.CarName,
		inq.Name,
		inq.Phone,
		inq.Message,
	).Scan(&inq.CreatedAt)

	if err != nil {
		r.log.Error("failed to create inquiry", logger.Error(err))
		return nil, err
	}

	return inq, nil
}

// GetAll joins each inquiry with its referenced car so the leads list can
// show the car's make without a second query. A missing reference leaves
// make NULL, which the service turns into its display fallback.
func (r *inquiryRepo) GetAll(ctx context.Context) ([]*models.Inquiry, error) {
	query := `
		SELECT i.id, i.car_id, i.car_name, i.name, i.phone, i.message, i.created_at,
		       c.make
		FROM inquiries i
		LEFT JOIN cars c ON i.car_id = c.id
		ORDER BY i.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to get inquiries", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		var inq models.Inquiry
		var carMake *string
		if err := rows.Scan(
			&inq.ID,
			&inq.CarID,
			&inq.CarName,
			&inq.Name,
			&inq.Phone,
			&inq.Message,
			&inq.CreatedAt,
			&carMake,
		); err != nil {
			return nil, err
		}
		if carMake != nil {
			inq.CarLabel = *carMake
		}
		inquiries = append(inquiries, &inq)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM inquiries WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete inquiry", logger.String("id", id), logger.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
