package service

import (
	"context"
	"encoding/base64"
	"testing"

	"ai-helper-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFileUpload(t *testing.T) {
	svc := NewFileService(newTestFactory(t), nil)
	ctx := context.Background()
	owner := uuid.New()

	content := base64.StdEncoding.EncodeToString([]byte("hello world"))
	file, err := svc.Upload(ctx, owner, &dto.UploadFileRequest{
		Filename: "notes.txt",
		MimeType: "text/plain",
		Content:  content,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), file.SizeBytes, "size comes from the decoded payload")
	assert.Equal(t, "notes.txt", file.OriginalName, "original name falls back to the filename")
	assert.Equal(t, "memory://notes.txt", file.StoragePath)

	got, err := svc.Get(ctx, owner, file.Id)
	assert.NoError(t, err)
	assert.Equal(t, file.Id, got.Id)
}

func TestFileUploadKeepsOriginalName(t *testing.T) {
	svc := NewFileService(newTestFactory(t), nil)

	file, err := svc.Upload(context.Background(), uuid.New(), &dto.UploadFileRequest{
		Filename:     "a1b2c3.pdf",
		MimeType:     "application/pdf",
		Content:      base64.StdEncoding.EncodeToString([]byte("%PDF")),
		OriginalName: "Отчет за май.pdf",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Отчет за май.pdf", file.OriginalName)
}

func TestFileUploadRejectsBadBase64(t *testing.T) {
	svc := NewFileService(newTestFactory(t), nil)

	_, err := svc.Upload(context.Background(), uuid.New(), &dto.UploadFileRequest{
		Filename: "x.bin",
		MimeType: "application/octet-stream",
		Content:  "not base64 at all!!!",
	})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestFileOwnerIsolation(t *testing.T) {
	svc := NewFileService(newTestFactory(t), nil)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	file, err := svc.Upload(ctx, owner, &dto.UploadFileRequest{
		Filename: "secret.txt",
		MimeType: "text/plain",
		Content:  base64.StdEncoding.EncodeToString([]byte("secret")),
	})
	assert.NoError(t, err)

	_, err = svc.Get(ctx, stranger, file.Id)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, stranger, file.Id), ErrFileNotFound)

	list, err := svc.List(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, svc.Delete(ctx, owner, file.Id))
	_, err = svc.Get(ctx, owner, file.Id)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
