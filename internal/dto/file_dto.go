package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadFileRequest struct {
	Filename     string `json:"filename" validate:"required"`
	MimeType     string `json:"mimeType" validate:"required"`
	Content      string `json:"content" validate:"required"`
	OriginalName string `json:"originalName"`
}

type FileResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"userId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	StoragePath  string    `json:"storagePath"`
	CreatedAt    time.Time `json:"createdAt"`
}

type FileEnvelope struct {
	File FileResponse `json:"file"`
}

type FileListResponse struct {
	Files []FileResponse `json:"files"`
}
