package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

// Резолверы-заглушки на мапах. Отсутствующий ID дает ошибку, как
// репозиторий с pgx.ErrNoRows.

type fakeLocationResolver struct{ names map[uint64]string }

func (f *fakeLocationResolver) FindLocation(_ context.Context, id uint64) (*entities.Location, error) {
	name, ok := f.names[id]
	if !ok {
		return nil, fmt.Errorf("локация %d не найдена", id)
	}
	return &entities.Location{ID: id, Name: name}, nil
}

type fakeCategoryResolver struct{ names map[uint64]string }

func (f *fakeCategoryResolver) FindCategory(_ context.Context, id uint64) (*entities.Category, error) {
	name, ok := f.names[id]
	if !ok {
		return nil, fmt.Errorf("категория %d не найдена", id)
	}
	return &entities.Category{ID: id, Name: name}, nil
}

type fakeTypeResolver struct{ names map[uint64]string }

func (f *fakeTypeResolver) FindEquipmentType(_ context.Context, id uint64) (*entities.EquipmentType, error) {
	name, ok := f.names[id]
	if !ok {
		return nil, fmt.Errorf("тип %d не найден", id)
	}
	return &entities.EquipmentType{ID: id, Name: name}, nil
}

func newTestEngine() *StateDerivationEngine {
	lookups := DerivationLookups{
		Locations:  &fakeLocationResolver{names: map[uint64]string{5: "Lager", 7: "Stage A", 9: "Workshop"}},
		Categories: &fakeCategoryResolver{names: map[uint64]string{1: "Audio", 2: "Lighting"}},
		Types:      &fakeTypeResolver{names: map[uint64]string{10: "Microphone", 11: "Dimmer"}},
	}
	return NewStateDerivationEngine(lookups, zap.NewNop())
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestDerive_CreationDefaults(t *testing.T) {
	engine := newTestEngine()

	// Ни локации, ни статуса: новое оборудование доступно, количество 1.
	got := engine.Derive(context.Background(), nil, EquipmentCandidate{})
	assert.Equal(t, constants.StatusAvailable, got.Status)
	assert.Equal(t, 1, got.Quantity)
	assert.Empty(t, got.Location)
}

func TestDerive_QuantityZeroDominatesEverything(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name      string
		candidate EquipmentCandidate
	}{
		{
			name:      "ноль при создании",
			candidate: EquipmentCandidate{Quantity: intPtr(0)},
		},
		{
			name: "ноль сильнее склада",
			candidate: EquipmentCandidate{
				Quantity:   intPtr(0),
				LocationID: SetRef(5), // Lager
			},
		},
		{
			name: "ноль сильнее ручного maintenance",
			candidate: EquipmentCandidate{
				Quantity: intPtr(0),
				Status:   strPtr(constants.StatusMaintenance),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Derive(context.Background(), nil, tc.candidate)
			assert.Equal(t, constants.StatusUnavailable, got.Status)
		})
	}
}

func TestDerive_LagerIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine()

	for _, spelling := range []string{"Lager", "lager", "LAGER", "LaGeR", "  lager  "} {
		t.Run(spelling, func(t *testing.T) {
			got := engine.Derive(context.Background(), nil, EquipmentCandidate{
				Location: strPtr(spelling),
				Status:   strPtr(constants.StatusMaintenance),
			})
			// Склад перебивает даже вручную выставленный maintenance.
			assert.Equal(t, constants.StatusAvailable, got.Status)
		})
	}
}

func TestDerive_OtherLocationMeansInUse(t *testing.T) {
	engine := newTestEngine()

	got := engine.Derive(context.Background(), nil, EquipmentCandidate{
		Location: strPtr("Stage A"),
	})
	assert.Equal(t, constants.StatusInUse, got.Status)
}

func TestDerive_MaintenanceSurvivesLocationButNotLager(t *testing.T) {
	engine := newTestEngine()

	got := engine.Derive(context.Background(), nil, EquipmentCandidate{
		Location: strPtr("Workshop"),
		Status:   strPtr(constants.StatusMaintenance),
	})
	assert.Equal(t, constants.StatusMaintenance, got.Status,
		"maintenance должен пережить обычную локацию")

	got = engine.Derive(context.Background(), nil, EquipmentCandidate{
		LocationID: SetRef(5), // Lager
		Status:     strPtr(constants.StatusMaintenance),
	})
	assert.Equal(t, constants.StatusAvailable, got.Status,
		"возврат на склад закрывает maintenance")
}

func TestDerive_ReferenceWinsOverFreeText(t *testing.T) {
	engine := newTestEngine()

	got := engine.Derive(context.Background(), nil, EquipmentCandidate{
		Location:   strPtr("что-то рукописное"),
		LocationID: SetRef(7),
		Category:   strPtr("своя категория"),
		CategoryID: SetRef(2),
		Type:       strPtr("свой тип"),
		TypeID:     SetRef(10),
	})

	assert.Equal(t, "Stage A", got.Location)
	assert.Equal(t, "Lighting", got.Category)
	assert.Equal(t, "Microphone", got.Type)
	require.NotNil(t, got.LocationID)
	assert.Equal(t, uint64(7), *got.LocationID)
}

func TestDerive_LookupFailureDegradesSilently(t *testing.T) {
	engine := newTestEngine()

	current := &entities.Equipment{
		Status:   constants.StatusInUse,
		Quantity: 2,
		Location: "Stage A",
	}

	// Ссылка на несуществующую локацию: имя остается прежним,
	// сама ссылка сохраняется, запись не падает.
	got := engine.Derive(context.Background(), current, EquipmentCandidate{
		LocationID: SetRef(999),
	})

	assert.Equal(t, "Stage A", got.Location)
	require.NotNil(t, got.LocationID)
	assert.Equal(t, uint64(999), *got.LocationID)
	assert.Equal(t, constants.StatusInUse, got.Status)
}

func TestDerive_ClearReferenceKeepsFreeText(t *testing.T) {
	engine := newTestEngine()

	current := &entities.Equipment{
		Status:     constants.StatusInUse,
		Quantity:   1,
		Location:   "Stage A",
		LocationID: null.Uint64From(7),
	}

	got := engine.Derive(context.Background(), current, EquipmentCandidate{
		LocationID: ClearRef(),
	})

	assert.Nil(t, got.LocationID)
	assert.Equal(t, "Stage A", got.Location)
	assert.Equal(t, constants.StatusInUse, got.Status)
}

func TestDerive_MoveBackToLagerRestoresAvailability(t *testing.T) {
	engine := newTestEngine()

	current := &entities.Equipment{
		Status:     constants.StatusInUse,
		Quantity:   1,
		Location:   "Stage A",
		LocationID: null.Uint64From(7),
	}

	got := engine.Derive(context.Background(), current, EquipmentCandidate{
		LocationID: SetRef(5),
	})

	assert.Equal(t, constants.StatusAvailable, got.Status)
	assert.Equal(t, "Lager", got.Location)
}

func TestDerive_RestockFromZeroRecomputesFromLocation(t *testing.T) {
	engine := newTestEngine()

	current := &entities.Equipment{
		Status:     constants.StatusUnavailable,
		Quantity:   0,
		Location:   "Stage A",
		LocationID: null.Uint64From(7),
	}

	got := engine.Derive(context.Background(), current, EquipmentCandidate{
		Quantity: intPtr(3),
	})

	assert.Equal(t, constants.StatusInUse, got.Status)
	assert.Equal(t, 3, got.Quantity)
}

func TestDerive_UntouchedFieldsStayPut(t *testing.T) {
	engine := newTestEngine()

	current := &entities.Equipment{
		Status:     constants.StatusMaintenance,
		Quantity:   4,
		Location:   "Workshop",
		Category:   "Audio",
		CategoryID: null.Uint64From(1),
		Type:       "Microphone",
		TypeID:     null.Uint64From(10),
	}

	got := engine.Derive(context.Background(), current, EquipmentCandidate{})

	assert.Equal(t, constants.StatusMaintenance, got.Status)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, "Workshop", got.Location)
	assert.Equal(t, "Audio", got.Category)
	assert.Equal(t, "Microphone", got.Type)
}
