package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
)

// Справочники (локации, категории, типы оборудования) устроены одинаково,
// но остаются отдельными сервисами: у каждого своя таблица и свои FK.

type LocationServiceInterface interface {
	GetLocations(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error)
	FindLocation(ctx context.Context, id uint64) (*dto.DictionaryDTO, error)
	CreateLocation(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error)
	UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationService struct {
	repo   repositories.LocationRepositoryInterface
	logger *zap.Logger
}

func NewLocationService(repo repositories.LocationRepositoryInterface, logger *zap.Logger) LocationServiceInterface {
	return &LocationService{repo: repo, logger: logger}
}

func (s *LocationService) GetLocations(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error) {
	items, total, err := s.repo.GetLocations(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.DictionaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt))
	}
	return result, total, nil
}

func (s *LocationService) FindLocation(ctx context.Context, id uint64) (*dto.DictionaryDTO, error) {
	item, err := s.repo.FindLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *LocationService) CreateLocation(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error) {
	item, err := s.repo.CreateLocation(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("локация создана", zap.Uint64("id", item.ID), zap.String("name", item.Name))
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error {
	return s.repo.UpdateLocation(ctx, id, payload.Name)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uint64) error {
	return s.repo.DeleteLocation(ctx, id)
}

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*dto.DictionaryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryService struct {
	repo   repositories.CategoryRepositoryInterface
	logger *zap.Logger
}

func NewCategoryService(repo repositories.CategoryRepositoryInterface, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error) {
	items, total, err := s.repo.GetCategories(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.DictionaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt))
	}
	return result, total, nil
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*dto.DictionaryDTO, error) {
	item, err := s.repo.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error) {
	item, err := s.repo.CreateCategory(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("категория создана", zap.Uint64("id", item.ID), zap.String("name", item.Name))
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error {
	return s.repo.UpdateCategory(ctx, id, payload.Name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.repo.DeleteCategory(ctx, id)
}

type EquipmentTypeServiceInterface interface {
	GetEquipmentTypes(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error)
	FindEquipmentType(ctx context.Context, id uint64) (*dto.DictionaryDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error)
	UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type EquipmentTypeService struct {
	repo   repositories.EquipmentTypeRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentTypeService(repo repositories.EquipmentTypeRepositoryInterface, logger *zap.Logger) EquipmentTypeServiceInterface {
	return &EquipmentTypeService{repo: repo, logger: logger}
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context, limit, offset uint64) ([]dto.DictionaryDTO, uint64, error) {
	items, total, err := s.repo.GetEquipmentTypes(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.DictionaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt))
	}
	return result, total, nil
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, id uint64) (*dto.DictionaryDTO, error) {
	item, err := s.repo.FindEquipmentType(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateDictionaryDTO) (*dto.DictionaryDTO, error) {
	item, err := s.repo.CreateEquipmentType(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("тип оборудования создан", zap.Uint64("id", item.ID), zap.String("name", item.Name))
	d := dictionaryDTO(item.ID, item.Name, item.CreatedAt, item.UpdatedAt)
	return &d, nil
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateDictionaryDTO) error {
	return s.repo.UpdateEquipmentType(ctx, id, payload.Name)
}

func (s *EquipmentTypeService) DeleteEquipmentType(ctx context.Context, id uint64) error {
	return s.repo.DeleteEquipmentType(ctx, id)
}

func dictionaryDTO(id uint64, name string, createdAt, updatedAt *time.Time) dto.DictionaryDTO {
	return dto.DictionaryDTO{
		ID:        id,
		Name:      name,
		CreatedAt: formatTime(createdAt),
		UpdatedAt: formatTime(updatedAt),
	}
}
