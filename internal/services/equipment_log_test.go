package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

// fakeLogRepo копит записи в памяти. Update/Delete в интерфейсе нет,
// так что журнал по построению append-only.
type fakeLogRepo struct {
	entries []entities.EquipmentLog
}

func (f *fakeLogRepo) CreateInTx(_ context.Context, _ pgx.Tx, log *entities.EquipmentLog) error {
	log.ID = uint64(len(f.entries) + 1)
	log.CreatedAt = time.Now()
	f.entries = append(f.entries, *log)
	return nil
}

func (f *fakeLogRepo) FindByEquipmentID(_ context.Context, equipmentID uint64, _, _ uint64) ([]repositories.EquipmentLogItem, uint64, error) {
	var items []repositories.EquipmentLogItem
	for _, e := range f.entries {
		if e.EquipmentID == equipmentID {
			items = append(items, repositories.EquipmentLogItem{EquipmentLog: e})
		}
	}
	return items, uint64(len(items)), nil
}

func (f *fakeLogRepo) GetLogs(_ context.Context, _ types.Filter) ([]repositories.EquipmentLogItem, uint64, error) {
	items := make([]repositories.EquipmentLogItem, 0, len(f.entries))
	for _, e := range f.entries {
		items = append(items, repositories.EquipmentLogItem{EquipmentLog: e})
	}
	return items, uint64(len(items)), nil
}

func newLogService() (*fakeLogRepo, EquipmentLogServiceInterface) {
	repo := &fakeLogRepo{}
	return repo, NewEquipmentLogService(repo, zap.NewNop())
}

func snapshot(status, location, brand, model, serial, typ string) EquipmentSnapshot {
	return EquipmentSnapshot{
		Status:       &status,
		Location:     &location,
		Brand:        &brand,
		Model:        &model,
		SerialNumber: &serial,
		Type:         &typ,
	}
}

func TestRecordCreation(t *testing.T) {
	repo, svc := newLogService()

	err := svc.RecordCreation(context.Background(), nil, 42, 7,
		snapshot(constants.StatusAvailable, "Lager", "Shure", "SM58", "SN-001", "Microphone"))
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, constants.ActionCreated, entry.ActionType)
	assert.Equal(t, uint64(42), entry.EquipmentID)
	assert.Equal(t, uint64(7), entry.UserID)
	assert.Equal(t, constants.StatusAvailable, entry.NewStatus.String)
	assert.Equal(t, "Lager", entry.NewLocation.String)
	assert.Equal(t, "Equipment created with serial number: SN-001", entry.Details)
}

func TestRecordUpdate_DiffListsEveryChangedField(t *testing.T) {
	repo, svc := newLogService()

	before := snapshot(constants.StatusAvailable, "Lager", "Shure", "SM58", "SN-001", "Microphone")
	after := snapshot(constants.StatusInUse, "Stage A", "Sennheiser", "SM58", "SN-001", "Microphone")

	err := svc.RecordUpdate(context.Background(), nil, 42, 7, before, after)
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t,
		`Status changed from "available" to "in-use"; Location changed from "Lager" to "Stage A"; Brand changed from "Shure" to "Sennheiser"`,
		entry.Details)
}

func TestRecordUpdate_StatusChangeWinsOverLocationChange(t *testing.T) {
	repo, svc := newLogService()

	before := snapshot(constants.StatusAvailable, "Lager", "Shure", "SM58", "SN-001", "Microphone")
	after := snapshot(constants.StatusInUse, "Stage A", "Shure", "SM58", "SN-001", "Microphone")

	err := svc.RecordUpdate(context.Background(), nil, 42, 7, before, after)
	require.NoError(t, err)

	entry := repo.entries[0]
	assert.Equal(t, constants.ActionStatusChange, entry.ActionType)
	assert.Equal(t, constants.StatusAvailable, entry.PreviousStatus.String)
	assert.Equal(t, constants.StatusInUse, entry.NewStatus.String)
	// Локация при этом все равно попала в details.
	assert.Contains(t, entry.Details, `Location changed from "Lager" to "Stage A"`)
}

func TestRecordUpdate_LocationOnlyChange(t *testing.T) {
	repo, svc := newLogService()

	before := snapshot(constants.StatusInUse, "Stage A", "Shure", "SM58", "SN-001", "Microphone")
	after := snapshot(constants.StatusInUse, "Stage B", "Shure", "SM58", "SN-001", "Microphone")

	err := svc.RecordUpdate(context.Background(), nil, 42, 7, before, after)
	require.NoError(t, err)

	entry := repo.entries[0]
	assert.Equal(t, constants.ActionLocationChange, entry.ActionType)
	assert.Equal(t, "Stage A", entry.PreviousLocation.String)
	assert.Equal(t, "Stage B", entry.NewLocation.String)
	assert.Equal(t, `Location changed from "Stage A" to "Stage B"`, entry.Details)
}

func TestRecordUpdate_NoDiffStillWritesRow(t *testing.T) {
	repo, svc := newLogService()

	same := snapshot(constants.StatusInUse, "Stage A", "Shure", "SM58", "SN-001", "Microphone")

	err := svc.RecordUpdate(context.Background(), nil, 42, 7, same, same)
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, constants.ActionUpdated, entry.ActionType)
	assert.Equal(t, "Equipment updated", entry.Details)
}

func TestRecordDeletion(t *testing.T) {
	repo, svc := newLogService()

	err := svc.RecordDeletion(context.Background(), nil, 42, 7,
		snapshot(constants.StatusInUse, "Stage A", "Shure", "SM58", "SN-001", "Microphone"))
	require.NoError(t, err)

	entry := repo.entries[0]
	assert.Equal(t, constants.ActionDeleted, entry.ActionType)
	assert.Equal(t, constants.StatusInUse, entry.PreviousStatus.String)
	assert.Equal(t, "Stage A", entry.PreviousLocation.String)
	assert.Equal(t, `Equipment with serial number "SN-001" was deleted`, entry.Details)
}

func TestRecordNarrowChanges(t *testing.T) {
	repo, svc := newLogService()

	require.NoError(t, svc.RecordStatusChange(context.Background(), nil, 42, 7,
		constants.StatusAvailable, constants.StatusMaintenance))
	require.NoError(t, svc.RecordLocationChange(context.Background(), nil, 42, 7,
		"Lager", "Stage A"))

	require.Len(t, repo.entries, 2)
	assert.Equal(t, `Status changed from "available" to "maintenance"`, repo.entries[0].Details)
	assert.Equal(t, `Location changed from "Lager" to "Stage A"`, repo.entries[1].Details)
}
