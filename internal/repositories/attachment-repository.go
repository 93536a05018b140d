package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type AttachmentRepositoryInterface interface {
	FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error)
	CreateAttachment(ctx context.Context, attachment *entities.Attachment) (uint64, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}

type AttachmentRepository struct {
	storage *pgxpool.Pool
}

func NewAttachmentRepository(storage *pgxpool.Pool) AttachmentRepositoryInterface {
	return &AttachmentRepository{storage: storage}
}

func (r *AttachmentRepository) FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error) {
	var a entities.Attachment
	var createdAt time.Time
	err := r.storage.QueryRow(ctx,
		`SELECT id, file_name, file_path, mime_type, size_bytes, uploaded_by, created_at
		 FROM attachments WHERE id = $1`, id,
	).Scan(&a.ID, &a.FileName, &a.FilePath, &a.MimeType, &a.SizeBytes, &a.UploadedBy, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	a.CreatedAt = createdAt
	return &a, nil
}

func (r *AttachmentRepository) CreateAttachment(ctx context.Context, attachment *entities.Attachment) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO attachments (file_name, file_path, mime_type, size_bytes, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		attachment.FileName, attachment.FilePath, attachment.MimeType,
		attachment.SizeBytes, attachment.UploadedBy,
	).Scan(&id, &attachment.CreatedAt)
	if err != nil {
		return 0, err
	}
	attachment.ID = id
	return id, nil
}

// DeleteAttachment удаляет запись о файле; reference_image_id у оборудования
// обнуляется внешним ключом ON DELETE SET NULL.
func (r *AttachmentRepository) DeleteAttachment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
