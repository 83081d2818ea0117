package database

import (
	"gorm.io/gorm/clause"

	"github.com/teamly-app/teamly-backend/internal/models"
)

var defaultActivities = []models.Activity{
	{Name: "Soccer", Type: models.ActivityTypeSport},
	{Name: "Basketball", Type: models.ActivityTypeSport},
	{Name: "Tennis", Type: models.ActivityTypeSport},
	{Name: "Volleyball", Type: models.ActivityTypeSport},
	{Name: "League of Legends", Type: models.ActivityTypeVideogame},
	{Name: "Valorant", Type: models.ActivityTypeVideogame},
	{Name: "FIFA", Type: models.ActivityTypeVideogame},
}

// SeedActivities inserts the default catalog, skipping names that already exist.
func (d *Database) SeedActivities() error {
	return d.withRetry(func() error {
		for i := range defaultActivities {
			a := defaultActivities[i]
			err := d.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&a).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Database) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	err := d.withRetry(func() error {
		return d.db.Order("name ASC").Find(&activities).Error
	})
	return activities, translate(err)
}

func (d *Database) GetActivity(id string) (*models.Activity, error) {
	var activity models.Activity
	err := d.withRetry(func() error {
		return d.db.First(&activity, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &activity, nil
}
