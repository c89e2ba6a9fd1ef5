package implementation

import (
	"context"
	"errors"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/mapper"
	"ai-helper-be/internal/model"
	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FileMapper
}

func NewFileRepository(db *gorm.DB) contract.FileRepository {
	return &FileRepositoryImpl{
		db:     db,
		mapper: mapper.NewFileMapper(),
	}
}

func (r *FileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *entity.FileRecord) error {
	modelFile := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(modelFile).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(modelFile)
	return nil
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FileRecord{}).Error
}

func (r *FileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FileRecord, error) {
	var modelFile model.FileRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelFile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelFile), nil
}

func (r *FileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileRecord, error) {
	var modelFiles []*model.FileRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelFiles).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelFiles), nil
}
