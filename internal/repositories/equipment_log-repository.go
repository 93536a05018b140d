package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	"inventory-system/pkg/types"
)

const equipmentLogTable = "equipment_logs"

// EquipmentLogItem - строка журнала, обогащенная данными актора и
// сводкой по оборудованию. Поля сводки nullable: запись журнала
// переживает удаление оборудования.
type EquipmentLogItem struct {
	entities.EquipmentLog
	Username        null.String `db:"username"`
	EquipmentBrand  null.String `db:"equipment_brand"`
	EquipmentModel  null.String `db:"equipment_model"`
	EquipmentSerial null.String `db:"equipment_serial"`
}

// Ключи фильтра из query string -> реальные колонки запроса.
var logFilterColumnMap = map[string]string{
	"action_type":  "l.action_type",
	"user_id":      "l.user_id",
	"equipment_id": "l.equipment_id",
	"type":         "e.type",
	"status":       "e.status",
	"location":     "e.location",
}

var logSearchColumns = []string{
	"e.brand", "e.model", "e.serial_number", "u.username",
	"l.details", "l.previous_location", "l.new_location",
}

var logSortColumns = []string{"l.id", "l.created_at", "l.action_type", "l.equipment_id"}

// Репозиторий append-only: у него осознанно нет Update/Delete.
type EquipmentLogRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, log *entities.EquipmentLog) error
	FindByEquipmentID(ctx context.Context, equipmentID uint64, limit, offset uint64) ([]EquipmentLogItem, uint64, error)
	GetLogs(ctx context.Context, filter types.Filter) ([]EquipmentLogItem, uint64, error)
}

type EquipmentLogRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentLogRepository(storage *pgxpool.Pool) EquipmentLogRepositoryInterface {
	return &EquipmentLogRepository{storage: storage}
}

func (r *EquipmentLogRepository) CreateInTx(ctx context.Context, tx pgx.Tx, log *entities.EquipmentLog) error {
	query := `
		INSERT INTO ` + equipmentLogTable + `
			(equipment_id, user_id, action_type, previous_status, new_status,
			 previous_location, new_location, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return tx.QueryRow(ctx, query,
		log.EquipmentID,
		log.UserID,
		log.ActionType,
		log.PreviousStatus,
		log.NewStatus,
		log.PreviousLocation,
		log.NewLocation,
		log.Details,
	).Scan(&log.ID, &log.CreatedAt)
}

const logJoinedFields = `
	l.id, l.equipment_id, l.user_id, l.action_type,
	l.previous_status, l.new_status, l.previous_location, l.new_location,
	l.details, l.created_at,
	u.username AS username,
	e.brand AS equipment_brand, e.model AS equipment_model, e.serial_number AS equipment_serial`

func (r *EquipmentLogRepository) scanItems(rows pgx.Rows) ([]EquipmentLogItem, error) {
	defer rows.Close()

	var items []EquipmentLogItem
	for rows.Next() {
		var item EquipmentLogItem
		if err := rows.Scan(
			&item.ID, &item.EquipmentID, &item.UserID, &item.ActionType,
			&item.PreviousStatus, &item.NewStatus, &item.PreviousLocation, &item.NewLocation,
			&item.Details, &item.CreatedAt,
			&item.Username,
			&item.EquipmentBrand, &item.EquipmentModel, &item.EquipmentSerial,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByEquipmentID возвращает страницу журнала одного оборудования,
// новые записи первыми, плюс общее количество.
func (r *EquipmentLogRepository) FindByEquipmentID(ctx context.Context, equipmentID uint64, limit, offset uint64) ([]EquipmentLogItem, uint64, error) {
	query := `
		SELECT ` + logJoinedFields + `
		FROM ` + equipmentLogTable + ` l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN equipment e ON e.id = l.equipment_id
		WHERE l.equipment_id = $1
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.storage.Query(ctx, query, equipmentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	items, err := r.scanItems(rows)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	err = r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+equipmentLogTable+` WHERE equipment_id = $1`, equipmentID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetLogs - глобальная выборка по журналу с поиском по оборудованию,
// актору и тексту изменений.
func (r *EquipmentLogRepository) GetLogs(ctx context.Context, filter types.Filter) ([]EquipmentLogItem, uint64, error) {
	translated := make(map[string]interface{}, len(filter.Filter))
	allowed := make([]string, 0, len(logFilterColumnMap))
	for key, val := range filter.Filter {
		if col, ok := logFilterColumnMap[key]; ok {
			translated[col] = val
		}
	}
	for _, col := range logFilterColumnMap {
		allowed = append(allowed, col)
	}

	sort := make(map[string]string, len(filter.Sort))
	for field, dir := range filter.Sort {
		if col, ok := map[string]string{
			"id": "l.id", "created_at": "l.created_at",
			"action_type": "l.action_type", "equipment_id": "l.equipment_id",
		}[field]; ok {
			sort[col] = dir
		}
	}

	params := ListParams{
		Filter:               translated,
		AllowedFilterColumns: allowed,
		Search:               filter.Search,
		SearchColumns:        logSearchColumns,
		Sort:                 sort,
		AllowedSortColumns:   logSortColumns,
		DefaultOrder:         "l.created_at DESC",
		Limit:                uint64(filter.Limit),
		Offset:               uint64(filter.Offset),
	}

	base := sq.Select(logJoinedFields).
		From(equipmentLogTable + " l").
		LeftJoin("users u ON u.id = l.user_id").
		LeftJoin("equipment e ON e.id = l.equipment_id").
		PlaceholderFormat(sq.Dollar)

	builder := applyPagination(applyOrder(applyConditions(base, params), params), params)
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	items, err := r.scanItems(rows)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := applyConditions(
		sq.Select("COUNT(*)").
			From(equipmentLogTable+" l").
			LeftJoin("users u ON u.id = l.user_id").
			LeftJoin("equipment e ON e.id = l.equipment_id").
			PlaceholderFormat(sq.Dollar),
		params)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
