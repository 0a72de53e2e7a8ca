package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every table. gorm fills the unix-second
// timestamps through the autoCreateTime/autoUpdateTime tags.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
