package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Zones a publication can take place in. Only meaningful for Sport
// activities; online (Videogame) publications carry no zone.
var Zones = []string{
	"Chapinero",
	"Usaquén",
	"Suba",
	"Teusaquillo",
	"Kennedy",
	"Engativá",
	"Fontibón",
}

func ValidZone(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}

type Publication struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"not null"`
	Address    *string
	Zone       *string
	Slots      int       `gorm:"not null;check:slots >= 0"`
	EventDate  time.Time `gorm:"not null"`
	EventTime  string    `gorm:"not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User     User     `gorm:"foreignKey:UserID"`
	Activity Activity `gorm:"foreignKey:ActivityID"`
}

func (Publication) TableName() string { return "publicaciones" }

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
