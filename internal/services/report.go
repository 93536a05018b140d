package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
}

// ReportService отдает плоский срез оборудования для экспорта.
// Фильтры те же, что у списочного эндпоинта, XLSX собирает контроллер.
type ReportService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewReportService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) GetEquipmentReport(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	items, total, err := s.repo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	s.logger.Debug("сформирован срез для отчета",
		zap.Int("rows", len(items)), zap.Uint64("total", total))
	return items, total, nil
}
