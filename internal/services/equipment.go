package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipmentStatus(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.EquipmentDTO, error)
	UpdateEquipmentLocation(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentLocationDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, userID, id uint64) error
}

// EquipmentService - оркестратор записи оборудования: деривация состояния,
// сохранение строки и запись в журнал выполняются в одной транзакции.
type EquipmentService struct {
	txManager  repositories.TxManager
	repo       repositories.EquipmentRepositoryInterface
	engine     *StateDerivationEngine
	logService EquipmentLogServiceInterface
	logger     *zap.Logger
}

func NewEquipmentService(
	txManager repositories.TxManager,
	repo repositories.EquipmentRepositoryInterface,
	engine *StateDerivationEngine,
	logService EquipmentLogServiceInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		txManager:  txManager,
		repo:       repo,
		engine:     engine,
		logService: logService,
		logger:     logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.repo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.EquipmentDTO, 0, len(items))
	for i := range items {
		result = append(result, mapEquipment(&items[i]))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapEquipment(equipment)
	return &mapped, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, userID uint64, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if payload.Quantity.Present && payload.Quantity.Value < 0 {
		return nil, apperrors.NewInvalidInputError("количество не может быть отрицательным")
	}

	candidate := EquipmentCandidate{
		Status:     payload.Status,
		TypeID:     refChangeFrom(payload.TypeID),
		CategoryID: refChangeFrom(payload.CategoryID),
		LocationID: refChangeFrom(payload.LocationID),
	}
	if payload.Quantity.Present {
		candidate.Quantity = &payload.Quantity.Value
	}
	if payload.Type != "" {
		candidate.Type = &payload.Type
	}
	if payload.Category != "" {
		candidate.Category = &payload.Category
	}
	if payload.Location != "" {
		candidate.Location = &payload.Location
	}

	derived := s.engine.Derive(ctx, nil, candidate)

	equipment := &entities.Equipment{
		Brand:        payload.Brand,
		Model:        payload.Model,
		SerialNumber: null.StringFromPtr(payload.SerialNumber),
		Description:  payload.Description,
	}
	applyDerived(equipment, derived)

	err := s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		id, err := s.repo.CreateEquipmentInTx(ctx, tx, equipment)
		if err != nil {
			return err
		}
		equipment.ID = id
		return s.logService.RecordCreation(ctx, tx, id, userID, SnapshotOf(equipment))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("оборудование создано",
		zap.Uint64("equipmentId", equipment.ID),
		zap.Uint64("userId", userID),
		zap.String("status", equipment.Status))

	mapped := mapEquipment(equipment)
	return &mapped, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if payload.Quantity.Present && payload.Quantity.Value < 0 {
		return nil, apperrors.NewInvalidInputError("количество не может быть отрицательным")
	}

	candidate := EquipmentCandidate{
		Status:     payload.Status,
		Location:   payload.Location,
		Category:   payload.Category,
		Type:       payload.Type,
		TypeID:     refChangeFrom(payload.TypeID),
		CategoryID: refChangeFrom(payload.CategoryID),
		LocationID: refChangeFrom(payload.LocationID),
	}
	if payload.Quantity.Present {
		candidate.Quantity = &payload.Quantity.Value
	}

	var updated *entities.Equipment
	err := s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindEquipmentForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		before := SnapshotOf(current)

		derived := s.engine.Derive(ctx, current, candidate)

		next := *current
		applyDerived(&next, derived)
		if payload.Brand != nil {
			next.Brand = *payload.Brand
		}
		if payload.Model != nil {
			next.Model = *payload.Model
		}
		if payload.SerialNumber != nil {
			next.SerialNumber = null.StringFrom(*payload.SerialNumber)
		}
		if payload.Description != nil {
			next.Description = *payload.Description
		}
		if payload.ReferenceImageID.Present {
			next.ReferenceImageID = null.Uint64FromPtr(payload.ReferenceImageID.ID)
		}

		if err := s.repo.UpdateEquipmentInTx(ctx, tx, id, &next); err != nil {
			return err
		}

		updated = &next
		return s.logService.RecordUpdate(ctx, tx, id, userID, before, SnapshotOf(&next))
	})
	if err != nil {
		return nil, err
	}

	mapped := mapEquipment(updated)
	return &mapped, nil
}

// UpdateEquipmentStatus - узкая операция смены статуса. Проходит через
// ту же деривацию, что и полное обновление: запрошенный статус может быть
// переопределен количеством или локацией.
func (s *EquipmentService) UpdateEquipmentStatus(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentStatusDTO) (*dto.EquipmentDTO, error) {
	var updated *entities.Equipment
	err := s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindEquipmentForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		oldStatus := current.Status

		derived := s.engine.Derive(ctx, current, EquipmentCandidate{Status: &payload.Status})

		next := *current
		applyDerived(&next, derived)

		if err := s.repo.UpdateEquipmentInTx(ctx, tx, id, &next); err != nil {
			return err
		}
		updated = &next

		if oldStatus == next.Status {
			return nil
		}
		return s.logService.RecordStatusChange(ctx, tx, id, userID, oldStatus, next.Status)
	})
	if err != nil {
		return nil, err
	}

	mapped := mapEquipment(updated)
	return &mapped, nil
}

// UpdateEquipmentLocation - узкая операция перемещения. В журнал уходит
// строка location_change со старой и новой локацией, без полного диффа;
// если перемещение поменяло только производный статус - status_change.
func (s *EquipmentService) UpdateEquipmentLocation(ctx context.Context, userID, id uint64, payload dto.UpdateEquipmentLocationDTO) (*dto.EquipmentDTO, error) {
	var updated *entities.Equipment
	err := s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindEquipmentForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		oldStatus := current.Status
		oldLocation := current.Location

		candidate := EquipmentCandidate{
			Location:   payload.Location,
			LocationID: refChangeFrom(payload.LocationID),
		}
		derived := s.engine.Derive(ctx, current, candidate)

		next := *current
		applyDerived(&next, derived)

		if err := s.repo.UpdateEquipmentInTx(ctx, tx, id, &next); err != nil {
			return err
		}
		updated = &next

		if oldLocation != next.Location {
			return s.logService.RecordLocationChange(ctx, tx, id, userID, oldLocation, next.Location)
		}
		if oldStatus != next.Status {
			return s.logService.RecordStatusChange(ctx, tx, id, userID, oldStatus, next.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	mapped := mapEquipment(updated)
	return &mapped, nil
}

// DeleteEquipment удаляет строку оборудования, предварительно записав
// прощальную строку в журнал. Журнал переживает удаление: ссылка на
// оборудование в нем мягкая.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, userID, id uint64) error {
	return s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindEquipmentForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.logService.RecordDeletion(ctx, tx, id, userID, SnapshotOf(current)); err != nil {
			return err
		}
		return s.repo.DeleteEquipmentInTx(ctx, tx, id)
	})
}

func refChangeFrom(n dto.NullableID) RefChange {
	if !n.Present {
		return KeepRef()
	}
	if n.ID == nil {
		return ClearRef()
	}
	return SetRef(*n.ID)
}

// applyDerived переносит результат деривации в строку оборудования.
func applyDerived(e *entities.Equipment, d DerivedState) {
	e.Status = d.Status
	e.Quantity = d.Quantity
	e.Location = d.Location
	e.LocationID = null.Uint64FromPtr(d.LocationID)
	e.Category = d.Category
	e.CategoryID = null.Uint64FromPtr(d.CategoryID)
	e.Type = d.Type
	e.TypeID = null.Uint64FromPtr(d.TypeID)
}

func mapEquipment(e *entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:               e.ID,
		Type:             e.Type,
		TypeID:           e.TypeID.Ptr(),
		Category:         e.Category,
		CategoryID:       e.CategoryID.Ptr(),
		Brand:            e.Brand,
		Model:            e.Model,
		SerialNumber:     e.SerialNumber.Ptr(),
		Status:           e.Status,
		Quantity:         e.Quantity,
		Location:         e.Location,
		LocationID:       e.LocationID.Ptr(),
		ReferenceImageID: e.ReferenceImageID.Ptr(),
		Description:      e.Description,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

// timestampLayout - единый формат дат во всех DTO, отдаваемых наружу.
const timestampLayout = "2006-01-02, 15:04:05"

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}
