package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActivityTypeSport     = "Sport"
	ActivityTypeVideogame = "Videogame"
)

type Activity struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"uniqueIndex;not null"`
	Type     string    `gorm:"not null;check:type IN ('Sport','Videogame')"`
	ImageURL string
}

func (Activity) TableName() string { return "actividades" }

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
