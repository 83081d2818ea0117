package database

import (
	"gorm.io/gorm/clause"

	"github.com/teamly-app/teamly-backend/internal/models"
)

func (d *Database) CreatePublication(p *models.Publication) error {
	return d.withRetry(func() error {
		return translate(d.db.Create(p).Error)
	})
}

func (d *Database) GetPublication(id string) (*models.Publication, error) {
	var p models.Publication
	err := d.withRetry(func() error {
		return d.db.Preload("User").Preload("Activity").First(&p, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ListPublications returns upcoming-first publications, optionally filtered
// by activity and zone.
func (d *Database) ListPublications(activityID, zone string) ([]models.Publication, error) {
	var publications []models.Publication
	err := d.withRetry(func() error {
		query := d.db.Preload("User").Preload("Activity")
		if activityID != "" {
			query = query.Where("activity_id = ?", activityID)
		}
		if zone != "" {
			query = query.Where("zone = ?", zone)
		}
		return query.Order("event_date ASC, event_time ASC").Find(&publications).Error
	})
	return publications, translate(err)
}

func (d *Database) UpdatePublication(p *models.Publication) error {
	return d.withRetry(func() error {
		return translate(d.db.Omit(clause.Associations).Save(p).Error)
	})
}

func (d *Database) DeletePublication(id string) error {
	return d.withRetry(func() error {
		return translate(d.db.Delete(&models.Publication{}, "id = ?", id).Error)
	})
}
