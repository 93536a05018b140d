package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const equipmentTable = "equipment"

const equipmentFields = `id, type, type_id, category, category_id, brand, model, serial_number,
	status, quantity, location, location_id, reference_image_id, description, created_at, updated_at`

var equipmentFilterColumns = []string{"status", "type_id", "category_id", "location_id", "type", "category", "location"}
var equipmentSearchColumns = []string{"brand", "model", "serial_number", "location", "type", "category"}
var equipmentSortColumns = []string{"id", "brand", "model", "status", "quantity", "location", "created_at", "updated_at"}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) (uint64, error)
	UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64, equipment *entities.Equipment) error
	DeleteEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.TypeID,
		&e.Category,
		&e.CategoryID,
		&e.Brand,
		&e.Model,
		&e.SerialNumber,
		&e.Status,
		&e.Quantity,
		&e.Location,
		&e.LocationID,
		&e.ReferenceImageID,
		&e.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	e.CreatedAt = &createdAt
	e.UpdatedAt = &updatedAt
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	params := ListParamsFromFilter(filter,
		equipmentFilterColumns, equipmentSearchColumns, equipmentSortColumns, "created_at DESC")

	builder := sq.Select(equipmentFields).From(equipmentTable).PlaceholderFormat(sq.Dollar)
	builder = applyConditions(builder, params)
	builder = applyOrder(builder, params)
	builder = applyPagination(builder, params)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := applyConditions(
		sq.Select("COUNT(*)").From(equipmentTable).PlaceholderFormat(sq.Dollar), params)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// findEquipmentBy выполняет точечный SELECT через пул или транзакцию.
func findEquipmentBy(ctx context.Context, q querier, id uint64, suffix string) (*entities.Equipment, error) {
	query := `SELECT ` + equipmentFields + ` FROM ` + equipmentTable + ` WHERE id = $1` + suffix
	return scanEquipment(q.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return findEquipmentBy(ctx, r.storage, id, "")
}

// FindEquipmentForUpdateInTx блокирует строку на время транзакции,
// чтобы derive -> update -> log шли по согласованному снимку.
func (r *EquipmentRepository) FindEquipmentForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return findEquipmentBy(ctx, tx, id, " FOR UPDATE")
}

func (r *EquipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, equipment *entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO ` + equipmentTable + `
			(type, type_id, category, category_id, brand, model, serial_number,
			 status, quantity, location, location_id, reference_image_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	var id uint64
	var createdAt, updatedAt time.Time
	err := tx.QueryRow(ctx, query,
		equipment.Type,
		equipment.TypeID,
		equipment.Category,
		equipment.CategoryID,
		equipment.Brand,
		equipment.Model,
		equipment.SerialNumber,
		equipment.Status,
		equipment.Quantity,
		equipment.Location,
		equipment.LocationID,
		equipment.ReferenceImageID,
		equipment.Description,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return 0, mapEquipmentWriteError(err)
	}

	equipment.ID = id
	equipment.CreatedAt = &createdAt
	equipment.UpdatedAt = &updatedAt
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64, equipment *entities.Equipment) error {
	query := `
		UPDATE ` + equipmentTable + `
		SET type = $1, type_id = $2, category = $3, category_id = $4, brand = $5, model = $6,
			serial_number = $7, status = $8, quantity = $9, location = $10, location_id = $11,
			reference_image_id = $12, description = $13, updated_at = CURRENT_TIMESTAMP
		WHERE id = $14`

	result, err := tx.Exec(ctx, query,
		equipment.Type,
		equipment.TypeID,
		equipment.Category,
		equipment.CategoryID,
		equipment.Brand,
		equipment.Model,
		equipment.SerialNumber,
		equipment.Status,
		equipment.Quantity,
		equipment.Location,
		equipment.LocationID,
		equipment.ReferenceImageID,
		equipment.Description,
		id,
	)
	if err != nil {
		return mapEquipmentWriteError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	result, err := tx.Exec(ctx, `DELETE FROM `+equipmentTable+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// mapEquipmentWriteError переводит нарушение уникальности серийного номера
// в понятную пользователю ошибку.
func mapEquipmentWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.NewInvalidInputError("Оборудование с таким серийным номером уже существует")
	}
	return err
}
