package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers/dto"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	"github.com/teamly-app/teamly-backend/internal/models"
	ws "github.com/teamly-app/teamly-backend/internal/websocket"
)

type MessageHandler struct {
	db  *database.Database
	hub *ws.Hub
}

func NewMessageHandler(db *database.Database, hub *ws.Hub) *MessageHandler {
	return &MessageHandler{db: db, hub: hub}
}

// formatMessage tags each record with sent_by_me relative to the
// requesting user.
func formatMessage(message *models.Message, requesterID uuid.UUID) gin.H {
	response := gin.H{
		"id":         message.ID,
		"idEmisor":   message.SenderID,
		"idReceptor": message.ReceiverID,
		"contenido":  message.Content,
		"sent_at":    message.SentAt,
		"sent_by_me": message.SenderID == requesterID,
	}
	if message.Sender.ID != uuid.Nil {
		response["emisor"] = formatPublicUser(&message.Sender)
	}
	return response
}

// SendMessage appends a message and pushes it to the receiver's live
// connections, if any.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	senderID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid receiver id")
		return
	}
	if receiverID == senderID {
		respondError(c, http.StatusBadRequest, "cannot message yourself")
		return
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}

	if err := h.db.SaveMessage(message); err != nil {
		respondDBError(c, err, "message not found")
		return
	}

	if h.hub != nil {
		h.hub.SendToUser(receiverID, ws.TypeMessage, formatMessage(message, receiverID))
	}

	respondData(c, http.StatusCreated, formatMessage(message, senderID))
}

// GetConversation returns the full thread between two users, oldest first.
// Only a participant may read it.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	requesterID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	u1, err := uuid.Parse(c.Param("u1"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	u2, err := uuid.Parse(c.Param("u2"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if requesterID != u1 && requesterID != u2 {
		respondError(c, http.StatusForbidden, "you are not part of this conversation")
		return
	}

	messages, err := h.db.GetConversation(u1, u2)
	if err != nil {
		respondDBError(c, err, "conversation not found")
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = formatMessage(&messages[i], requesterID)
	}
	respondList(c, result, len(result))
}

// GetUserMessages lists everything a user sent or received, newest first.
func (h *MessageHandler) GetUserMessages(c *gin.Context) {
	requesterID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if userID != requesterID {
		respondError(c, http.StatusForbidden, "you can only read your own messages")
		return
	}

	messages, err := h.db.GetUserMessages(userID)
	if err != nil {
		respondDBError(c, err, "messages not found")
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = formatMessage(&messages[i], requesterID)
	}
	respondList(c, result, len(result))
}
