package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// fakeTxManager прогоняет fn без настоящей транзакции.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	items  map[uint64]entities.Equipment
	nextID uint64
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: map[uint64]entities.Equipment{}, nextID: 1}
}

func (f *fakeEquipmentRepo) GetEquipments(_ context.Context, _ types.Filter) ([]entities.Equipment, uint64, error) {
	result := make([]entities.Equipment, 0, len(f.items))
	for _, e := range f.items {
		result = append(result, e)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeEquipmentRepo) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEquipmentRepo) FindEquipmentForUpdateInTx(ctx context.Context, _ pgx.Tx, id uint64) (*entities.Equipment, error) {
	return f.FindEquipment(ctx, id)
}

func (f *fakeEquipmentRepo) CreateEquipmentInTx(_ context.Context, _ pgx.Tx, equipment *entities.Equipment) (uint64, error) {
	id := f.nextID
	f.nextID++
	now := time.Now()
	equipment.ID = id
	equipment.CreatedAt = &now
	equipment.UpdatedAt = &now
	f.items[id] = *equipment
	return id, nil
}

func (f *fakeEquipmentRepo) UpdateEquipmentInTx(_ context.Context, _ pgx.Tx, id uint64, equipment *entities.Equipment) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	equipment.ID = id
	f.items[id] = *equipment
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipmentInTx(_ context.Context, _ pgx.Tx, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func newEquipmentService() (*fakeEquipmentRepo, *fakeLogRepo, EquipmentServiceInterface) {
	repo := newFakeEquipmentRepo()
	logRepo := &fakeLogRepo{}
	nop := zap.NewNop()
	engine := newTestEngine()
	logSvc := NewEquipmentLogService(logRepo, nop)
	svc := NewEquipmentService(fakeTxManager{}, repo, engine, logSvc, nop)
	return repo, logRepo, svc
}

func setRefDTO(id uint64) dto.NullableID { return dto.NullableID{Present: true, ID: &id} }

func TestEquipmentLifecycle(t *testing.T) {
	_, logRepo, svc := newEquipmentService()
	ctx := context.Background()

	// Создание на складе: статус выводится в available.
	created, err := svc.CreateEquipment(ctx, 7, dto.CreateEquipmentDTO{
		Brand:      "Shure",
		Model:      "SM58",
		TypeID:     setRefDTO(10),
		LocationID: setRefDTO(5), // Lager
		Quantity:   dto.FlexInt{Present: true, Value: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusAvailable, created.Status)
	assert.Equal(t, "Lager", created.Location)
	assert.Equal(t, "Microphone", created.Type)

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, constants.ActionCreated, logRepo.entries[0].ActionType)

	// Выдача на площадку: статус становится in-use, в журнале status_change
	// с локацией в details.
	updated, err := svc.UpdateEquipment(ctx, 7, created.ID, dto.UpdateEquipmentDTO{
		LocationID: setRefDTO(7), // Stage A
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInUse, updated.Status)
	assert.Equal(t, "Stage A", updated.Location)

	require.Len(t, logRepo.entries, 2)
	entry := logRepo.entries[1]
	assert.Equal(t, constants.ActionStatusChange, entry.ActionType)
	assert.Equal(t, constants.StatusAvailable, entry.PreviousStatus.String)
	assert.Equal(t, constants.StatusInUse, entry.NewStatus.String)
	assert.Contains(t, entry.Details, `Location changed from "Lager" to "Stage A"`)

	// Обнуление количества: статус принудительно unavailable.
	updated, err = svc.UpdateEquipment(ctx, 7, created.ID, dto.UpdateEquipmentDTO{
		Quantity: dto.FlexInt{Present: true, Value: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusUnavailable, updated.Status)

	require.Len(t, logRepo.entries, 3)
	assert.Equal(t, constants.ActionStatusChange, logRepo.entries[2].ActionType)

	// Удаление: строка уходит, журнал остается.
	require.NoError(t, svc.DeleteEquipment(ctx, 7, created.ID))
	_, err = svc.FindEquipment(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.Len(t, logRepo.entries, 4)
	assert.Equal(t, constants.ActionDeleted, logRepo.entries[3].ActionType)
}

func TestCreateEquipment_NegativeQuantityRejected(t *testing.T) {
	_, logRepo, svc := newEquipmentService()

	_, err := svc.CreateEquipment(context.Background(), 7, dto.CreateEquipmentDTO{
		Brand:    "Shure",
		Model:    "SM58",
		Quantity: dto.FlexInt{Present: true, Value: -1},
	})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, logRepo.entries, "неудачное создание не должно оставлять следов в журнале")
}

func TestUpdateEquipmentStatus_Narrow(t *testing.T) {
	_, logRepo, svc := newEquipmentService()
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, 7, dto.CreateEquipmentDTO{
		Brand:    "ETC",
		Model:    "Source Four",
		Location: "Workshop",
	})
	require.NoError(t, err)
	require.Equal(t, constants.StatusInUse, created.Status)

	updated, err := svc.UpdateEquipmentStatus(ctx, 7, created.ID, dto.UpdateEquipmentStatusDTO{
		Status: constants.StatusMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusMaintenance, updated.Status)

	last := logRepo.entries[len(logRepo.entries)-1]
	assert.Equal(t, constants.ActionStatusChange, last.ActionType)
	assert.Equal(t, `Status changed from "in-use" to "maintenance"`, last.Details)

	// Повторная установка того же статуса не пишет лишнюю строку.
	before := len(logRepo.entries)
	_, err = svc.UpdateEquipmentStatus(ctx, 7, created.ID, dto.UpdateEquipmentStatusDTO{
		Status: constants.StatusMaintenance,
	})
	require.NoError(t, err)
	assert.Len(t, logRepo.entries, before)
}

func TestUpdateEquipmentLocation_Narrow(t *testing.T) {
	_, logRepo, svc := newEquipmentService()
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, 7, dto.CreateEquipmentDTO{
		Brand:      "Shure",
		Model:      "SM58",
		LocationID: setRefDTO(7), // Stage A
	})
	require.NoError(t, err)
	require.Equal(t, constants.StatusInUse, created.Status)

	// Перемещение между площадками: статус не меняется, location_change.
	updated, err := svc.UpdateEquipmentLocation(ctx, 7, created.ID, dto.UpdateEquipmentLocationDTO{
		LocationID: setRefDTO(9), // Workshop
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInUse, updated.Status)
	assert.Equal(t, "Workshop", updated.Location)

	last := logRepo.entries[len(logRepo.entries)-1]
	assert.Equal(t, constants.ActionLocationChange, last.ActionType)
	assert.Equal(t, "Stage A", last.PreviousLocation.String)
	assert.Equal(t, "Workshop", last.NewLocation.String)

	// Возврат на склад тоже логируется как location_change: узкий эндпоинт
	// пишет старую и новую локацию, даже если производный статус изменился.
	updated, err = svc.UpdateEquipmentLocation(ctx, 7, created.ID, dto.UpdateEquipmentLocationDTO{
		LocationID: setRefDTO(5), // Lager
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusAvailable, updated.Status)

	last = logRepo.entries[len(logRepo.entries)-1]
	assert.Equal(t, constants.ActionLocationChange, last.ActionType)
	assert.Equal(t, "Workshop", last.PreviousLocation.String)
	assert.Equal(t, "Lager", last.NewLocation.String)
}

func TestUpdateEquipmentLocation_MoveFromLagerLogsLocationChange(t *testing.T) {
	_, logRepo, svc := newEquipmentService()
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, 7, dto.CreateEquipmentDTO{
		Brand:      "Sennheiser",
		Model:      "EW 100",
		LocationID: setRefDTO(5), // Lager
	})
	require.NoError(t, err)
	require.Equal(t, constants.StatusAvailable, created.Status)

	updated, err := svc.UpdateEquipmentLocation(ctx, 7, created.ID, dto.UpdateEquipmentLocationDTO{
		LocationID: setRefDTO(7), // Stage A
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInUse, updated.Status)
	assert.Equal(t, "Stage A", updated.Location)

	last := logRepo.entries[len(logRepo.entries)-1]
	assert.Equal(t, constants.ActionLocationChange, last.ActionType)
	assert.Equal(t, "Lager", last.PreviousLocation.String)
	assert.Equal(t, "Stage A", last.NewLocation.String)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "", formatTime(nil))

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2026-03-14, 09:26:53", formatTime(&ts))
}
