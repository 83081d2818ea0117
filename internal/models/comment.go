package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a directed relationship record: at most one row may exist
// per ordered (author, target) pair, enforced by the unique index.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comentarios_par"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comentarios_par"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
	Target User `gorm:"foreignKey:TargetID"`
}

func (Comment) TableName() string { return "comentarios" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
