package database

import (
	"github.com/teamly-app/teamly-backend/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	return d.withRetry(func() error {
		return translate(d.db.Create(user).Error)
	})
}

func (d *Database) UpdateUser(user *models.User) error {
	return d.withRetry(func() error {
		return translate(d.db.Save(user).Error)
	})
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	err := d.withRetry(func() error {
		return d.db.First(&user, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	err := d.withRetry(func() error {
		return d.db.Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *Database) UpdatePassword(id string, passwordHash string) error {
	return d.withRetry(func() error {
		return translate(d.db.Model(&models.User{}).
			Where("id = ?", id).
			Update("password_hash", passwordHash).Error)
	})
}
