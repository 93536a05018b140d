package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EquipmentLogController - только чтение: журнал пишется сервисами
// оборудования, HTTP-ручек записи у него нет.
type EquipmentLogController struct {
	logService services.EquipmentLogServiceInterface
	logger     *zap.Logger
}

func NewEquipmentLogController(logService services.EquipmentLogServiceInterface, logger *zap.Logger) *EquipmentLogController {
	return &EquipmentLogController{logService: logService, logger: logger}
}

func (c *EquipmentLogController) GetLogs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.logService.GetLogs(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetLogs: ошибка при получении журнала", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал успешно получен", http.StatusOK, total)
}

func (c *EquipmentLogController) GetLogsByEquipmentID(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Неверный формат ID оборудования",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.logService.GetLogsByEquipmentID(ctx.Request().Context(), id, filter)
	if err != nil {
		c.logger.Error("GetLogsByEquipmentID: ошибка при получении журнала",
			zap.Uint64("equipmentId", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал оборудования успешно получен", http.StatusOK, total)
}
