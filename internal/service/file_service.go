package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidContent = errors.New("content must be valid base64")
)

type IFileService interface {
	Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadFileRequest) (*dto.FileResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.FileResponse, error)
	Get(ctx context.Context, userId, fileId uuid.UUID) (*dto.FileResponse, error)
	Delete(ctx context.Context, userId, fileId uuid.UUID) error
}

type fileService struct {
	uowFactory  unitofwork.RepositoryFactory
	activityPub IPublisherService
}

func NewFileService(uowFactory unitofwork.RepositoryFactory, activityPub IPublisherService) IFileService {
	return &fileService{
		uowFactory:  uowFactory,
		activityPub: activityPub,
	}
}

func toFileResponse(file *entity.FileRecord) *dto.FileResponse {
	return &dto.FileResponse{
		Id:           file.Id,
		UserId:       file.UserId,
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		SizeBytes:    file.SizeBytes,
		StoragePath:  file.StoragePath,
		CreatedAt:    file.CreatedAt,
	}
}

func (s *fileService) Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadFileRequest) (*dto.FileResponse, error) {
	// The decoded content is only measured, never stored: the record keeps a
	// logical storage path and the byte size.
	decoded, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return nil, ErrInvalidContent
	}

	originalName := req.OriginalName
	if originalName == "" {
		originalName = req.Filename
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	file := &entity.FileRecord{
		Id:           uuid.New(),
		UserId:       userId,
		Filename:     req.Filename,
		OriginalName: originalName,
		MimeType:     req.MimeType,
		SizeBytes:    int64(len(decoded)),
		StoragePath:  fmt.Sprintf("memory://%s", req.Filename),
		CreatedAt:    time.Now(),
	}
	if err := uow.FileRepository().Create(ctx, file); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activityPub, userId, "FILE_UPLOADED", map[string]interface{}{
		"file_id":    file.Id.String(),
		"size_bytes": file.SizeBytes,
	})

	return toFileResponse(file), nil
}

func (s *fileService) List(ctx context.Context, userId uuid.UUID) ([]dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	files, err := uow.FileRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.FileResponse, 0, len(files))
	for _, file := range files {
		res = append(res, *toFileResponse(file))
	}
	return res, nil
}

func (s *fileService) Get(ctx context.Context, userId, fileId uuid.UUID) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.FileRepository().FindOne(ctx,
		specification.ByID{ID: fileId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	return toFileResponse(file), nil
}

func (s *fileService) Delete(ctx context.Context, userId, fileId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.FileRepository().FindOne(ctx,
		specification.ByID{ID: fileId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if file == nil {
		return ErrFileNotFound
	}

	return uow.FileRepository().Delete(ctx, file.Id)
}
