package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Attachment struct {
	ID         uint64      `json:"id" db:"id"`
	FileName   string      `json:"file_name" db:"file_name"`
	FilePath   string      `json:"file_path" db:"file_path"`
	MimeType   string      `json:"mime_type" db:"mime_type"`
	SizeBytes  int64       `json:"size_bytes" db:"size_bytes"`
	UploadedBy null.Uint64 `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}
