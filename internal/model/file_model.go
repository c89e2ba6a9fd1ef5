package model

import (
	"time"

	"github.com/google/uuid"
)

type FileRecord struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	MimeType     string    `gorm:"type:varchar(100);not null"`
	SizeBytes    int64     `gorm:"default:0"`
	StoragePath  string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (FileRecord) TableName() string {
	return "files"
}
