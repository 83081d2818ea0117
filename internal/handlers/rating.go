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

type RatingHandler struct {
	db *database.Database
}

func NewRatingHandler(db *database.Database) *RatingHandler {
	return &RatingHandler{db: db}
}

func formatRating(rating *models.Rating) gin.H {
	return gin.H{
		"id":                 rating.ID,
		"idUsuario":          rating.AuthorID,
		"idUsuarioComentado": rating.TargetID,
		"puntuacion":         rating.Score,
		"created_at":         rating.CreatedAt,
		"updated_at":         rating.UpdatedAt,
	}
}

// CreateOrUpdate upserts the caller's rating of the target: the score is
// overwritten in place whenever a row for the pair already exists.
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	authorID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid target user id")
		return
	}
	if targetID == authorID {
		respondError(c, http.StatusBadRequest, "cannot rate yourself")
		return
	}

	rating := &models.Rating{
		AuthorID: authorID,
		TargetID: targetID,
		Score:    req.Score,
	}

	created, err := h.db.UpsertRating(rating)
	if err != nil {
		respondDBError(c, err, "rating not found")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondData(c, status, formatRating(rating))
}

// GetAverage aggregates the scores a user has received. Promedio is null
// when the user was never rated.
func (h *RatingHandler) GetAverage(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	summary, err := h.db.AverageRating(targetID)
	if err != nil {
		respondDBError(c, err, "ratings not found")
		return
	}

	respondData(c, http.StatusOK, summary)
}
