package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UploadController struct {
	attachmentService services.AttachmentServiceInterface
	logger            *zap.Logger
}

func NewUploadController(attachmentService services.AttachmentServiceInterface, logger *zap.Logger) *UploadController {
	return &UploadController{attachmentService: attachmentService, logger: logger}
}

// Upload принимает multipart-форму с полем "file" и сохраняет эталонное
// фото оборудования. Ответ содержит ID вложения для reference_image_id.
func (c *UploadController) Upload(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Файл не найден в запросе", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.logger.Error("Upload: не удалось открыть загруженный файл", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.attachmentService.Upload(
		ctx.Request().Context(),
		userID,
		src,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		constants.UploadContextReferenceImage,
	)
	if err != nil {
		c.logger.Error("Upload: ошибка сохранения файла",
			zap.String("fileName", fileHeader.Filename), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Файл успешно загружен", http.StatusCreated)
}

func (c *UploadController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Неверный формат ID вложения",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	if err := c.attachmentService.Delete(ctx.Request().Context(), id); err != nil {
		c.logger.Error("Delete: ошибка удаления вложения", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Вложение успешно удалено", http.StatusOK)
}
