package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers/dto"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	"github.com/teamly-app/teamly-backend/internal/models"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

func formatUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"photo_url":  user.PhotoURL,
		"created_at": user.CreatedAt,
	}
}

// formatPublicUser omits the email for profiles other users can see.
func formatPublicUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"photo_url":  user.PhotoURL,
		"created_at": user.CreatedAt,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		respondDBError(c, err, "user not found")
		return
	}

	respondData(c, http.StatusOK, formatUser(user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		respondDBError(c, err, "user not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhotoURL != "" {
		user.PhotoURL = req.PhotoURL
	}

	if err := h.db.UpdateUser(user); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update user")
		return
	}

	respondData(c, http.StatusOK, formatUser(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "user not found")
		return
	}

	respondData(c, http.StatusOK, formatPublicUser(user))
}
