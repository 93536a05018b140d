package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, passwordHash *string, role *string) error
	DeleteUser(ctx context.Context, id uint64) error
	GetRolePermissions(ctx context.Context, role string) ([]string, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var createdAt, updatedAt time.Time
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = &createdAt
	u.UpdatedAt = &updatedAt
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, username, password_hash, role, created_at, updated_at
		 FROM users ORDER BY username ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at, updated_at FROM users WHERE id = $1`, id))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at, updated_at FROM users WHERE username = $1`, username))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id`,
		user.Username, user.PasswordHash, user.Role,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.NewInvalidInputError("Пользователь с таким именем уже существует")
		}
		return 0, err
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, passwordHash *string, role *string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE users
		 SET password_hash = COALESCE($1, password_hash),
		     role = COALESCE($2, role),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		passwordHash, role, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetRolePermissions(ctx context.Context, role string) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT permission FROM role_permissions WHERE role = $1`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}
