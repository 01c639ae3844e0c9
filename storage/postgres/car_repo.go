package postgres

import (
	"context"

	"carconnect/pkg/logger"
	"carconnect/pkg/models"
	"carconnect/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type carRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewCarRepo(db *pgxpool.Pool, log logger.ILogger) storage.ICarStorage {
	return &carRepo{db: db, log: log}
}

func (r *carRepo) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	query := `
		INSERT INTO cars (id, make, model, year, price, mileage, description, status, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		car.ID,
		car.Make,
		car.Model,
		car.Year,
		car.Price,
		car.Mileage,
		car.Description,
		car.Status,
		car.ImageURLs,
	).Scan(&car.CreatedAt)

	if err != nil {
		r.log.Error("failed to create car", logger.Error(err))
		return nil, err
	}

	return car, nil
}

func (r *carRepo) GetByID(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	query := `
		SELECT id, make, model, year, price, mileage, description, status, image_urls, created_at
		FROM cars
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.Price,
		&car.Mileage,
		&car.Description,
		&car.Status,
		&car.ImageURLs,
		&car.CreatedAt,
	)

	if err != nil {
		r.log.Error("failed to get car by id", logger.String("id", id), logger.Error(err))
		return nil, err
	}

	return &car, nil
}

func (r *carRepo) GetAll(ctx context.Context) ([]*models.Car, error) {
	query := `
		SELECT id, make, model, year, price, mileage, description, status, image_urls, created_at
		FROM cars
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to get cars", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cars []*models.Car
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(
			&car.ID,
			&car.Make,
			&car.Model,
			&car.Year,
			&car.Price,
			&car.Mileage,
			&car.Description,
			&car.Status,
			&car.ImageURLs,
			&car.CreatedAt,
		); err != nil {
			return nil, err
		}
		cars = append(cars, &car)
	}
	return cars, rows.Err()
}

func (r *carRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE cars SET status = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		r.log.Error("failed to update car status", logger.String("id", id), logger.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *carRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cars WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete car", logger.String("id", id), logger.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
