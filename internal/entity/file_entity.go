package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord describes an uploaded file. StoragePath is a logical pointer
// only; no blob storage backs it.
type FileRecord struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Filename     string
	OriginalName string
	MimeType     string
	SizeBytes    int64
	StoragePath  string
	CreatedAt    time.Time
}
