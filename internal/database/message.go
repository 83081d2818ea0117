package database

import (
	"github.com/google/uuid"

	"github.com/teamly-app/teamly-backend/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.withRetry(func() error {
		return translate(d.db.Create(message).Error)
	})
}

// GetConversation assembles the full bidirectional history between two
// users, oldest first. The pair is unordered: (u1,u2) and (u2,u1) return
// the same thread.
func (d *Database) GetConversation(u1, u2 uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := d.withRetry(func() error {
		return d.db.
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				u1, u2, u2, u1).
			Order("sent_at ASC").
			Preload("Sender").
			Find(&messages).Error
	})
	return messages, translate(err)
}

// GetUserMessages lists every message a user sent or received, newest
// first. Deliberately the opposite ordering of GetConversation.
func (d *Database) GetUserMessages(userID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := d.withRetry(func() error {
		return d.db.
			Where("sender_id = ? OR receiver_id = ?", userID, userID).
			Order("sent_at DESC").
			Preload("Sender").
			Preload("Receiver").
			Find(&messages).Error
	})
	return messages, translate(err)
}
