package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

// EquipmentSnapshot - снимок полей оборудования до или после записи.
// nil-поле в "after" означает "это поле не трогали", а не "очистили".
type EquipmentSnapshot struct {
	Status       *string
	Location     *string
	Brand        *string
	Model        *string
	SerialNumber *string
	Type         *string
}

// SnapshotOf снимает полный снимок с сущности.
func SnapshotOf(e *entities.Equipment) EquipmentSnapshot {
	serial := e.SerialNumber.String
	return EquipmentSnapshot{
		Status:       &e.Status,
		Location:     &e.Location,
		Brand:        &e.Brand,
		Model:        &e.Model,
		SerialNumber: &serial,
		Type:         &e.Type,
	}
}

type EquipmentLogServiceInterface interface {
	RecordCreation(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, snapshot EquipmentSnapshot) error
	RecordUpdate(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, before, after EquipmentSnapshot) error
	RecordDeletion(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, snapshot EquipmentSnapshot) error
	RecordStatusChange(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, oldStatus, newStatus string) error
	RecordLocationChange(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, oldLocation, newLocation string) error

	GetLogsByEquipmentID(ctx context.Context, equipmentID uint64, filter types.Filter) ([]dto.EquipmentLogDTO, uint64, error)
	GetLogs(ctx context.Context, filter types.Filter) ([]dto.EquipmentLogDTO, uint64, error)
}

// EquipmentLogService пишет и читает журнал оборудования. Записи строго
// append-only; ошибка записи поднимается наверх - молчаливо потерянная
// строка журнала хуже упавшего запроса.
type EquipmentLogService struct {
	repo   repositories.EquipmentLogRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentLogService(repo repositories.EquipmentLogRepositoryInterface, logger *zap.Logger) EquipmentLogServiceInterface {
	return &EquipmentLogService{repo: repo, logger: logger}
}

func (s *EquipmentLogService) RecordCreation(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, snapshot EquipmentSnapshot) error {
	entry := &entities.EquipmentLog{
		EquipmentID: equipmentID,
		UserID:      userID,
		ActionType:  constants.ActionCreated,
		NewStatus:   null.StringFromPtr(snapshot.Status),
		NewLocation: null.StringFromPtr(snapshot.Location),
		Details:     fmt.Sprintf("Equipment created with serial number: %s", deref(snapshot.SerialNumber)),
	}
	return s.append(ctx, tx, entry)
}

// diffField описывает одно отслеживаемое поле для RecordUpdate.
type diffField struct {
	label  string
	before *string
	after  *string
}

func (s *EquipmentLogService) RecordUpdate(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, before, after EquipmentSnapshot) error {
	fields := []diffField{
		{"Status", before.Status, after.Status},
		{"Location", before.Location, after.Location},
		{"Brand", before.Brand, after.Brand},
		{"Model", before.Model, after.Model},
		{"Serial number", before.SerialNumber, after.SerialNumber},
		{"Type", before.Type, after.Type},
	}

	var clauses []string
	for _, f := range fields {
		// Поле считается измененным только если оно задано в after.
		if f.after == nil || deref(f.before) == *f.after {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s changed from %q to %q", f.label, deref(f.before), *f.after))
	}

	statusChanged := after.Status != nil && deref(before.Status) != *after.Status
	locationChanged := after.Location != nil && deref(before.Location) != *after.Location

	entry := &entities.EquipmentLog{
		EquipmentID: equipmentID,
		UserID:      userID,
		ActionType:  constants.ActionUpdated,
		Details:     strings.Join(clauses, "; "),
	}

	// Одна строка журнала несет один доминирующий actionType:
	// смена статуса приоритетнее смены локации, details при этом
	// все равно перечисляет каждое измененное поле.
	switch {
	case statusChanged:
		entry.ActionType = constants.ActionStatusChange
		entry.PreviousStatus = null.StringFromPtr(before.Status)
		entry.NewStatus = null.StringFromPtr(after.Status)
	case locationChanged:
		entry.ActionType = constants.ActionLocationChange
		entry.PreviousLocation = null.StringFromPtr(before.Location)
		entry.NewLocation = null.StringFromPtr(after.Location)
	}

	if entry.Details == "" {
		entry.Details = "Equipment updated"
	}

	return s.append(ctx, tx, entry)
}

func (s *EquipmentLogService) RecordDeletion(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, snapshot EquipmentSnapshot) error {
	entry := &entities.EquipmentLog{
		EquipmentID:      equipmentID,
		UserID:           userID,
		ActionType:       constants.ActionDeleted,
		PreviousStatus:   null.StringFromPtr(snapshot.Status),
		PreviousLocation: null.StringFromPtr(snapshot.Location),
		Details:          fmt.Sprintf("Equipment with serial number %q was deleted", deref(snapshot.SerialNumber)),
	}
	return s.append(ctx, tx, entry)
}

func (s *EquipmentLogService) RecordStatusChange(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, oldStatus, newStatus string) error {
	entry := &entities.EquipmentLog{
		EquipmentID:    equipmentID,
		UserID:         userID,
		ActionType:     constants.ActionStatusChange,
		PreviousStatus: null.StringFrom(oldStatus),
		NewStatus:      null.StringFrom(newStatus),
		Details:        fmt.Sprintf("Status changed from %q to %q", oldStatus, newStatus),
	}
	return s.append(ctx, tx, entry)
}

func (s *EquipmentLogService) RecordLocationChange(ctx context.Context, tx pgx.Tx, equipmentID, userID uint64, oldLocation, newLocation string) error {
	entry := &entities.EquipmentLog{
		EquipmentID:      equipmentID,
		UserID:           userID,
		ActionType:       constants.ActionLocationChange,
		PreviousLocation: null.StringFrom(oldLocation),
		NewLocation:      null.StringFrom(newLocation),
		Details:          fmt.Sprintf("Location changed from %q to %q", oldLocation, newLocation),
	}
	return s.append(ctx, tx, entry)
}

func (s *EquipmentLogService) append(ctx context.Context, tx pgx.Tx, entry *entities.EquipmentLog) error {
	if err := s.repo.CreateInTx(ctx, tx, entry); err != nil {
		s.logger.Error("не удалось записать строку журнала оборудования",
			zap.Uint64("equipmentId", entry.EquipmentID),
			zap.String("actionType", entry.ActionType),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *EquipmentLogService) GetLogsByEquipmentID(ctx context.Context, equipmentID uint64, filter types.Filter) ([]dto.EquipmentLogDTO, uint64, error) {
	items, total, err := s.repo.FindByEquipmentID(ctx, equipmentID, uint64(filter.Limit), uint64(filter.Offset))
	if err != nil {
		return nil, 0, err
	}
	return mapLogItems(items), total, nil
}

func (s *EquipmentLogService) GetLogs(ctx context.Context, filter types.Filter) ([]dto.EquipmentLogDTO, uint64, error) {
	items, total, err := s.repo.GetLogs(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapLogItems(items), total, nil
}

func mapLogItems(items []repositories.EquipmentLogItem) []dto.EquipmentLogDTO {
	result := make([]dto.EquipmentLogDTO, 0, len(items))
	for _, item := range items {
		d := dto.EquipmentLogDTO{
			ID:               item.ID,
			EquipmentID:      item.EquipmentID,
			UserID:           item.UserID,
			Username:         item.Username.Ptr(),
			ActionType:       item.ActionType,
			PreviousStatus:   item.PreviousStatus.Ptr(),
			NewStatus:        item.NewStatus.Ptr(),
			PreviousLocation: item.PreviousLocation.Ptr(),
			NewLocation:      item.NewLocation.Ptr(),
			Details:          item.Details,
			CreatedAt:        item.CreatedAt.Format(timestampLayout),
		}
		if item.EquipmentBrand.Valid || item.EquipmentModel.Valid {
			d.Equipment = &dto.ShortEquipmentDTO{
				ID:           item.EquipmentID,
				Brand:        item.EquipmentBrand.String,
				Model:        item.EquipmentModel.String,
				SerialNumber: item.EquipmentSerial.Ptr(),
			}
		}
		result = append(result, d)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
