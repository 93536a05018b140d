package services

import (
	"context"
	"io"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/filestorage"
)

// maxUploadSizeBytes - потолок для эталонных фото оборудования.
const maxUploadSizeBytes = 10 << 20

var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type AttachmentServiceInterface interface {
	Upload(ctx context.Context, userID uint64, file io.Reader, fileName, mimeType string, sizeBytes int64, uploadCtx constants.UploadContext) (*dto.AttachmentDTO, error)
	Find(ctx context.Context, id uint64) (*dto.AttachmentDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type AttachmentService struct {
	repo    repositories.AttachmentRepositoryInterface
	storage filestorage.FileStorageInterface
	logger  *zap.Logger
}

func NewAttachmentService(repo repositories.AttachmentRepositoryInterface, storage filestorage.FileStorageInterface, logger *zap.Logger) AttachmentServiceInterface {
	return &AttachmentService{repo: repo, storage: storage, logger: logger}
}

func (s *AttachmentService) Upload(ctx context.Context, userID uint64, file io.Reader, fileName, mimeType string, sizeBytes int64, uploadCtx constants.UploadContext) (*dto.AttachmentDTO, error) {
	if sizeBytes > maxUploadSizeBytes {
		return nil, apperrors.NewInvalidInputError("файл слишком большой: максимум %d МБ", maxUploadSizeBytes>>20)
	}
	if !allowedImageMimeTypes[mimeType] {
		return nil, apperrors.NewInvalidInputError("недопустимый тип файла: %s", mimeType)
	}

	filePath, err := s.storage.Save(file, fileName, uploadCtx.String())
	if err != nil {
		return nil, err
	}

	attachment := &entities.Attachment{
		FileName:   fileName,
		FilePath:   filePath,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		UploadedBy: null.Uint64From(userID),
	}
	id, err := s.repo.CreateAttachment(ctx, attachment)
	if err != nil {
		// Строка не записалась - файл на диске осиротел, подчищаем.
		if delErr := s.storage.Delete(filePath); delErr != nil {
			s.logger.Error("не удалось удалить осиротевший файл",
				zap.String("path", filePath), zap.Error(delErr))
		}
		return nil, err
	}
	attachment.ID = id

	s.logger.Info("файл загружен",
		zap.Uint64("attachmentId", id),
		zap.Uint64("userId", userID),
		zap.String("path", filePath))

	mapped := mapAttachment(attachment)
	return &mapped, nil
}

func (s *AttachmentService) Find(ctx context.Context, id uint64) (*dto.AttachmentDTO, error) {
	attachment, err := s.repo.FindAttachment(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapAttachment(attachment)
	return &mapped, nil
}

// Delete удаляет запись и файл. FK в equipment выставлен в SET NULL,
// так что ссылки на эталонное фото чистятся базой.
func (s *AttachmentService) Delete(ctx context.Context, id uint64) error {
	attachment, err := s.repo.FindAttachment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteAttachment(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(attachment.FilePath); err != nil {
		s.logger.Error("запись удалена, но файл остался на диске",
			zap.String("path", attachment.FilePath), zap.Error(err))
	}
	return nil
}

func mapAttachment(a *entities.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		ID:        a.ID,
		FileName:  a.FileName,
		URL:       a.FilePath,
		MimeType:  a.MimeType,
		SizeBytes: a.SizeBytes,
		CreatedAt: a.CreatedAt.Format(timestampLayout),
	}
}
