package mapper

import (
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.FileRecord) *entity.FileRecord {
	if f == nil {
		return nil
	}
	return &entity.FileRecord{
		Id:           f.Id,
		UserId:       f.UserId,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		SizeBytes:    f.SizeBytes,
		StoragePath:  f.StoragePath,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.FileRecord) *model.FileRecord {
	if f == nil {
		return nil
	}
	return &model.FileRecord{
		Id:           f.Id,
		UserId:       f.UserId,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		SizeBytes:    f.SizeBytes,
		StoragePath:  f.StoragePath,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *FileMapper) ToEntities(files []*model.FileRecord) []*entity.FileRecord {
	entities := make([]*entity.FileRecord, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
