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

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, limit, offset uint64) ([]entities.Category, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
	CreateCategory(ctx context.Context, name string) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id uint64, name string) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) GetCategories(ctx context.Context, limit, offset uint64) ([]entities.Category, uint64, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Category
	for rows.Next() {
		var c entities.Category
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&c.ID, &c.Name, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		c.CreatedAt = &createdAt
		c.UpdatedAt = &updatedAt
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	var c entities.Category
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	c.CreatedAt = &createdAt
	c.UpdatedAt = &updatedAt
	return &c, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	var c entities.Category
	var createdAt, updatedAt time.Time
	err := r.storage.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at, updated_at`, name,
	).Scan(&c.ID, &c.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = &createdAt
	c.UpdatedAt = &updatedAt
	return &c, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint64, name string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE categories SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
