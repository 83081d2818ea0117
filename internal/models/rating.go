package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating follows the same one-row-per-ordered-pair rule as Comment.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_puntuacion_par"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_puntuacion_par"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
	Target User `gorm:"foreignKey:TargetID"`
}

func (Rating) TableName() string { return "puntuacion" }

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
