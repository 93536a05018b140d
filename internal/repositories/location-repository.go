package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type LocationRepositoryInterface interface {
	GetLocations(ctx context.Context, limit, offset uint64) ([]entities.Location, uint64, error)
	FindLocation(ctx context.Context, id uint64) (*entities.Location, error)
	CreateLocation(ctx context.Context, name string) (*entities.Location, error)
	UpdateLocation(ctx context.Context, id uint64, name string) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationRepository struct {
	storage *pgxpool.Pool
}

func NewLocationRepository(storage *pgxpool.Pool) LocationRepositoryInterface {
	return &LocationRepository{storage: storage}
}

func (r *LocationRepository) GetLocations(ctx context.Context, limit, offset uint64) ([]entities.Location, uint64, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM locations ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Location
	for rows.Next() {
		var l entities.Location
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&l.ID, &l.Name, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		l.CreatedAt = &createdAt
		l.UpdatedAt = &updatedAt
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *LocationRepository) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	var l entities.Location
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	l.CreatedAt = &createdAt
	l.UpdatedAt = &updatedAt
	return &l, nil
}

func (r *LocationRepository) CreateLocation(ctx context.Context, name string) (*entities.Location, error) {
	var l entities.Location
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`INSERT INTO locations (name) VALUES ($1) RETURNING id, name, created_at, updated_at`, name,
	).Scan(&l.ID, &l.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	l.CreatedAt = &createdAt
	l.UpdatedAt = &updatedAt
	return &l, nil
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, id uint64, name string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE locations SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
