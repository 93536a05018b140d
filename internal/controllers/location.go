package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LocationController struct {
	locationService services.LocationServiceInterface
	logger          *zap.Logger
}

func NewLocationController(service services.LocationServiceInterface, logger *zap.Logger) *LocationController {
	return &LocationController{locationService: service, logger: logger}
}

func (c *LocationController) GetLocations(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.locationService.GetLocations(ctx.Request().Context(), uint64(filter.Limit), uint64(filter.Offset))
	if err != nil {
		c.logger.Error("GetLocations: ошибка получения списка локаций", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список локаций успешно получен", http.StatusOK, total)
}

func (c *LocationController) FindLocation(ctx echo.Context) error {
	id, err := parseDictionaryID(ctx, "ID локации")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.locationService.FindLocation(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindLocation: ошибка поиска локации", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Локация успешно найдена", http.StatusOK)
}

func (c *LocationController) CreateLocation(ctx echo.Context) error {
	var payload dto.CreateDictionaryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.locationService.CreateLocation(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateLocation: ошибка создания локации", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Локация успешно создана", http.StatusCreated)
}

func (c *LocationController) UpdateLocation(ctx echo.Context) error {
	id, err := parseDictionaryID(ctx, "ID локации")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateDictionaryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.locationService.UpdateLocation(ctx.Request().Context(), id, payload); err != nil {
		c.logger.Error("UpdateLocation: ошибка обновления локации", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Локация успешно обновлена", http.StatusOK)
}

func (c *LocationController) DeleteLocation(ctx echo.Context) error {
	id, err := parseDictionaryID(ctx, "ID локации")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.locationService.DeleteLocation(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteLocation: ошибка удаления локации", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Локация успешно удалена", http.StatusOK)
}

func parseDictionaryID(ctx echo.Context, what string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Неверный формат "+what,
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
