package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEquipmentReport отдает срез оборудования. format=xlsx выгружает
// файл, иначе обычный JSON-список с теми же фильтрами.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		// Выгружаем все для экспорта
		filter.Offset = 0
		filter.Limit = 100000
	}

	data, total, err := c.reportService.GetEquipmentReport(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEquipmentReport: ошибка формирования отчета", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK, total)
}

var equipmentReportHeaders = []string{
	"№", "Тип", "Категория", "Бренд", "Модель", "Серийный номер",
	"Статус", "Количество", "Локация", "Описание", "Дата создания",
}

func equipmentRowToSlice(n int, item entities.Equipment) []interface{} {
	var createdAt string
	if item.CreatedAt != nil {
		createdAt = item.CreatedAt.Format("02.01.2006 15:04")
	}
	return []interface{}{
		n, item.Type, item.Category, item.Brand, item.Model, item.SerialNumber.String,
		item.Status, item.Quantity, item.Location, item.Description, createdAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.Equipment) error {
	f := excelize.NewFile()
	sheet := "Оборудование"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := equipmentRowToSlice(i+1, item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "F", 20)
	f.SetColWidth(sheet, "I", "I", 25)
	f.SetColWidth(sheet, "J", "J", 40)

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
