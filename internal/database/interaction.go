package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamly-app/teamly-backend/internal/models"
)

// pairConflict targets the unique (author_id, target_id) index so two
// concurrent writers for the same new pair still leave a single row.
func pairConflict(updates []string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "author_id"}, {Name: "target_id"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}
}

// FindComment resolves the relationship key: zero or one comment for the
// ordered (author, target) pair. Direction matters.
func (d *Database) FindComment(authorID, targetID uuid.UUID) (*models.Comment, error) {
	var c models.Comment
	err := d.withRetry(func() error {
		return d.db.Where("author_id = ? AND target_id = ?", authorID, targetID).First(&c).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (d *Database) GetComment(id string) (*models.Comment, error) {
	var c models.Comment
	err := d.withRetry(func() error {
		return d.db.First(&c, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetCommentsForUser lists comments received by a user, newest first.
func (d *Database) GetCommentsForUser(targetID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.withRetry(func() error {
		return d.db.Where("target_id = ?", targetID).
			Order("updated_at DESC").
			Preload("Author").
			Find(&comments).Error
	})
	return comments, translate(err)
}

func upsertCommentTx(tx *gorm.DB, c *models.Comment) (bool, error) {
	var existing models.Comment
	err := tx.Where("author_id = ? AND target_id = ?", c.AuthorID, c.TargetID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Clauses(pairConflict([]string{"content", "updated_at"})).Create(c).Error; err != nil {
			return false, err
		}
		// under a race the conflict clause fired and kept the other row's id
		return true, tx.Where("author_id = ? AND target_id = ?", c.AuthorID, c.TargetID).First(c).Error
	case err != nil:
		return false, err
	}

	existing.Content = c.Content
	if err := tx.Save(&existing).Error; err != nil {
		return false, err
	}
	*c = existing
	return false, nil
}

func upsertRatingTx(tx *gorm.DB, r *models.Rating) (bool, error) {
	var existing models.Rating
	err := tx.Where("author_id = ? AND target_id = ?", r.AuthorID, r.TargetID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Clauses(pairConflict([]string{"score", "updated_at"})).Create(r).Error; err != nil {
			return false, err
		}
		return true, tx.Where("author_id = ? AND target_id = ?", r.AuthorID, r.TargetID).First(r).Error
	case err != nil:
		return false, err
	}

	existing.Score = r.Score
	if err := tx.Save(&existing).Error; err != nil {
		return false, err
	}
	*r = existing
	return false, nil
}

// UpsertComment creates the comment for its (author, target) pair or
// overwrites the existing one in place. Returns true when a row was created.
func (d *Database) UpsertComment(c *models.Comment) (bool, error) {
	var created bool
	err := d.withRetry(func() error {
		return d.db.Transaction(func(tx *gorm.DB) error {
			var err error
			created, err = upsertCommentTx(tx, c)
			return err
		})
	})
	return created, translate(err)
}

// UpsertRating is the rating counterpart of UpsertComment.
func (d *Database) UpsertRating(r *models.Rating) (bool, error) {
	var created bool
	err := d.withRetry(func() error {
		return d.db.Transaction(func(tx *gorm.DB) error {
			var err error
			created, err = upsertRatingTx(tx, r)
			return err
		})
	})
	return created, translate(err)
}

// LeaveFeedback upserts a comment and its paired rating in one transaction,
// so a crash can never leave one without the other.
func (d *Database) LeaveFeedback(c *models.Comment, r *models.Rating) (bool, error) {
	var created bool
	err := d.withRetry(func() error {
		return d.db.Transaction(func(tx *gorm.DB) error {
			var err error
			created, err = upsertCommentTx(tx, c)
			if err != nil {
				return err
			}
			_, err = upsertRatingTx(tx, r)
			return err
		})
	})
	return created, translate(err)
}

func (d *Database) UpdateComment(c *models.Comment) error {
	return d.withRetry(func() error {
		return translate(d.db.Save(c).Error)
	})
}

// DeleteComment removes a comment and the paired rating for the same
// ordered pair in one transaction.
func (d *Database) DeleteComment(id string) error {
	return d.withRetry(func() error {
		return translate(d.db.Transaction(func(tx *gorm.DB) error {
			var c models.Comment
			if err := tx.First(&c, "id = ?", id).Error; err != nil {
				return err
			}
			if err := tx.Delete(&c).Error; err != nil {
				return err
			}
			return tx.Where("author_id = ? AND target_id = ?", c.AuthorID, c.TargetID).
				Delete(&models.Rating{}).Error
		}))
	})
}

type RatingSummary struct {
	Promedio          *float64 `json:"promedio"`
	TotalPuntuaciones int64    `json:"total_puntuaciones"`
}

// AverageRating aggregates the scores received by a target user. Promedio
// is nil when the user has no ratings yet.
func (d *Database) AverageRating(targetID uuid.UUID) (*RatingSummary, error) {
	var s RatingSummary
	err := d.withRetry(func() error {
		return d.db.Model(&models.Rating{}).
			Where("target_id = ?", targetID).
			Select("AVG(score) AS promedio, COUNT(*) AS total_puntuaciones").
			Scan(&s).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}
