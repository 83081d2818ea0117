package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/models"
)

type ActivityHandler struct {
	db *database.Database
}

func NewActivityHandler(db *database.Database) *ActivityHandler {
	return &ActivityHandler{db: db}
}

func formatActivity(a *models.Activity) gin.H {
	return gin.H{
		"id":        a.ID,
		"name":      a.Name,
		"type":      a.Type,
		"image_url": a.ImageURL,
	}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.db.ListActivities()
	if err != nil {
		respondDBError(c, err, "activities not found")
		return
	}

	result := make([]gin.H, len(activities))
	for i := range activities {
		result[i] = formatActivity(&activities[i])
	}
	respondList(c, result, len(result))
}
