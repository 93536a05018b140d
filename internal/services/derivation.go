package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

// Резолверы справочников. Движок получает их через конструктор,
// а не тянет репозитории напрямую: каждая точка записи видит,
// какие lookup-вызовы она оплачивает.
type LocationResolver interface {
	FindLocation(ctx context.Context, id uint64) (*entities.Location, error)
}

type CategoryResolver interface {
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
}

type TypeResolver interface {
	FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error)
}

// DerivationLookups - инъецируемые справочные функции движка.
type DerivationLookups struct {
	Locations  LocationResolver
	Categories CategoryResolver
	Types      TypeResolver
}

// RefChange - изменение ссылки в кандидате. Present=false значит
// "поле не трогали", Present=true и ID=nil - "ссылку очистили".
type RefChange struct {
	Present bool
	ID      *uint64
}

func SetRef(id uint64) RefChange { return RefChange{Present: true, ID: &id} }
func ClearRef() RefChange        { return RefChange{Present: true} }
func KeepRef() RefChange         { return RefChange{} }

// EquipmentCandidate - поля, которые вызывающая сторона хочет применить.
// nil-указатель означает "не менять".
type EquipmentCandidate struct {
	Quantity   *int
	Status     *string
	Location   *string
	LocationID RefChange
	Category   *string
	CategoryID RefChange
	Type       *string
	TypeID     RefChange
}

// DerivedState - итоговая тройка статус/локация/категория (плюс тип),
// подлежащая записи в строку equipment.
type DerivedState struct {
	Status     string
	Quantity   int
	Location   string
	LocationID *uint64
	Category   string
	CategoryID *uint64
	Type       string
	TypeID     *uint64
}

// StateDerivationEngine вычисляет канонические значения status/location/
// category перед записью. Чистая функция от (текущее состояние, кандидат,
// результаты lookup-ов); единственный побочный эффект - сами lookup-вызовы.
type StateDerivationEngine struct {
	lookups DerivationLookups
	logger  *zap.Logger
}

func NewStateDerivationEngine(lookups DerivationLookups, logger *zap.Logger) *StateDerivationEngine {
	return &StateDerivationEngine{lookups: lookups, logger: logger}
}

// Derive применяет правила деривации в строгом порядке:
//  1. слияние кандидата с текущим состоянием (ссылки: Present-семантика);
//  2. разрешение отображаемых имен - установленная ссылка всегда
//     побеждает свободный текст, неудачный lookup деградирует до
//     уже известного значения;
//  3. quantity == 0 принудительно дает "unavailable" и закрывает вопрос;
//  4. локация "Lager" (без учета регистра) дает "available"; любая другая
//     локация дает "in-use", кроме вручную выставленного "maintenance";
//     без локации статус остается как есть ("available" при создании).
//
// Явный статус из кандидата - лишь отправная точка: автоматика сильнее,
// за исключением maintenance при ненулевом количестве.
func (e *StateDerivationEngine) Derive(ctx context.Context, current *entities.Equipment, candidate EquipmentCandidate) DerivedState {
	merged := e.mergeState(current, candidate)

	merged.Location, merged.LocationID = e.resolveLocation(ctx, merged.Location, merged.LocationID)
	merged.Category, merged.CategoryID = e.resolveCategory(ctx, merged.Category, merged.CategoryID)
	merged.Type, merged.TypeID = e.resolveType(ctx, merged.Type, merged.TypeID)

	// Правило количества сильнее всех остальных.
	if merged.Quantity == 0 {
		merged.Status = constants.StatusUnavailable
		return merged
	}

	isLager := strings.EqualFold(strings.TrimSpace(merged.Location), constants.LagerLocationName)
	switch {
	case isLager:
		merged.Status = constants.StatusAvailable
	case merged.Location != "" && merged.Status != constants.StatusMaintenance:
		merged.Status = constants.StatusInUse
	case merged.Status == "":
		// Создание без локации и без явного статуса.
		merged.Status = constants.StatusAvailable
	}

	return merged
}

// mergeState накладывает кандидата на текущее состояние. Для создания
// current == nil: количество по умолчанию 1.
func (e *StateDerivationEngine) mergeState(current *entities.Equipment, candidate EquipmentCandidate) DerivedState {
	merged := DerivedState{Quantity: 1}

	if current != nil {
		merged.Quantity = current.Quantity
		merged.Status = current.Status
		merged.Location = current.Location
		merged.LocationID = current.LocationID.Ptr()
		merged.Category = current.Category
		merged.CategoryID = current.CategoryID.Ptr()
		merged.Type = current.Type
		merged.TypeID = current.TypeID.Ptr()
	}

	if candidate.Quantity != nil {
		merged.Quantity = *candidate.Quantity
	}
	if candidate.Status != nil {
		merged.Status = *candidate.Status
	}
	if candidate.Location != nil {
		merged.Location = *candidate.Location
	}
	if candidate.LocationID.Present {
		merged.LocationID = candidate.LocationID.ID
	}
	if candidate.Category != nil {
		merged.Category = *candidate.Category
	}
	if candidate.CategoryID.Present {
		merged.CategoryID = candidate.CategoryID.ID
	}
	if candidate.Type != nil {
		merged.Type = *candidate.Type
	}
	if candidate.TypeID.Present {
		merged.TypeID = candidate.TypeID.ID
	}

	return merged
}

// resolveLocation разрешает отображаемое имя локации. Ссылка побеждает
// свободный текст; ошибка lookup-а не фатальна - остаемся на уже
// известном значении, чтобы битая ссылка из формы не блокировала запись.
func (e *StateDerivationEngine) resolveLocation(ctx context.Context, freeText string, id *uint64) (string, *uint64) {
	if id == nil {
		return freeText, nil
	}
	loc, err := e.lookups.Locations.FindLocation(ctx, *id)
	if err != nil {
		e.logger.Warn("деривация: локация не разрешилась, используем известное значение",
			zap.Uint64("locationId", *id), zap.Error(err))
		return freeText, id
	}
	return loc.Name, id
}

func (e *StateDerivationEngine) resolveCategory(ctx context.Context, freeText string, id *uint64) (string, *uint64) {
	if id == nil {
		return freeText, nil
	}
	cat, err := e.lookups.Categories.FindCategory(ctx, *id)
	if err != nil {
		e.logger.Warn("деривация: категория не разрешилась, используем известное значение",
			zap.Uint64("categoryId", *id), zap.Error(err))
		return freeText, id
	}
	return cat.Name, id
}

func (e *StateDerivationEngine) resolveType(ctx context.Context, freeText string, id *uint64) (string, *uint64) {
	if id == nil {
		return freeText, nil
	}
	t, err := e.lookups.Types.FindEquipmentType(ctx, *id)
	if err != nil {
		e.logger.Warn("деривация: тип оборудования не разрешился, используем известное значение",
			zap.Uint64("typeId", *id), zap.Error(err))
		return freeText, id
	}
	return t.Name, id
}
