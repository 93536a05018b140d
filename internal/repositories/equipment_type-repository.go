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

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context, limit, offset uint64) ([]entities.EquipmentType, uint64, error)
	FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error)
	CreateEquipmentType(ctx context.Context, name string) (*entities.EquipmentType, error)
	UpdateEquipmentType(ctx context.Context, id uint64, name string) error
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type EquipmentTypeRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{storage: storage}
}

func (r *EquipmentTypeRepository) GetEquipmentTypes(ctx context.Context, limit, offset uint64) ([]entities.EquipmentType, uint64, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM equipment_types ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.EquipmentType
	for rows.Next() {
		var t entities.EquipmentType
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&t.ID, &t.Name, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		t.CreatedAt = &createdAt
		t.UpdatedAt = &updatedAt
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipment_types`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *EquipmentTypeRepository) FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error) {
	var t entities.EquipmentType
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM equipment_types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	t.CreatedAt = &createdAt
	t.UpdatedAt = &updatedAt
	return &t, nil
}

func (r *EquipmentTypeRepository) CreateEquipmentType(ctx context.Context, name string) (*entities.EquipmentType, error) {
	var t entities.EquipmentType
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`INSERT INTO equipment_types (name) VALUES ($1) RETURNING id, name, created_at, updated_at`, name,
	).Scan(&t.ID, &t.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = &createdAt
	t.UpdatedAt = &updatedAt
	return &t, nil
}

func (r *EquipmentTypeRepository) UpdateEquipmentType(ctx context.Context, id uint64, name string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE equipment_types SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentTypeRepository) DeleteEquipmentType(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
