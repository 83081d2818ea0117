package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers/dto"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	"github.com/teamly-app/teamly-backend/internal/models"
)

type PublicationHandler struct {
	db *database.Database
}

func NewPublicationHandler(db *database.Database) *PublicationHandler {
	return &PublicationHandler{db: db}
}

func formatPublication(p *models.Publication) gin.H {
	response := gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"address":    p.Address,
		"zone":       p.Zone,
		"slots":      p.Slots,
		"event_date": p.EventDate.Format("2006-01-02"),
		"event_time": p.EventTime,
		"user_id":    p.UserID,
		"created_at": p.CreatedAt,
	}
	if p.User.ID != uuid.Nil {
		response["user"] = formatPublicUser(&p.User)
	}
	if p.Activity.ID != uuid.Nil {
		response["activity"] = formatActivity(&p.Activity)
	}
	return response
}

// checkZone enforces the invariant that a zone is only meaningful for
// in-person (Sport) activities and must come from the known set.
func checkZone(zone *string, activity *models.Activity) (int, string) {
	if zone == nil {
		return 0, ""
	}
	if activity.Type != models.ActivityTypeSport {
		return http.StatusBadRequest, "online activities cannot have a zone"
	}
	if !models.ValidZone(*zone) {
		return http.StatusBadRequest, "unknown zone"
	}
	return 0, ""
}

func (h *PublicationHandler) CreatePublication(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := h.db.GetActivity(req.ActivityID)
	if err != nil {
		respondDBError(c, err, "activity not found")
		return
	}

	if status, msg := checkZone(req.Zone, activity); status != 0 {
		respondError(c, status, msg)
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid event date")
		return
	}

	publication := &models.Publication{
		Title:      req.Title,
		Address:    req.Address,
		Zone:       req.Zone,
		Slots:      req.Slots,
		EventDate:  eventDate,
		EventTime:  req.EventTime,
		UserID:     userID,
		ActivityID: activity.ID,
	}

	if err := h.db.CreatePublication(publication); err != nil {
		respondDBError(c, err, "publication not found")
		return
	}

	full, err := h.db.GetPublication(publication.ID.String())
	if err != nil {
		respondDBError(c, err, "publication not found")
		return
	}

	respondData(c, http.StatusCreated, formatPublication(full))
}

func (h *PublicationHandler) ListPublications(c *gin.Context) {
	publications, err := h.db.ListPublications(c.Query("activity_id"), c.Query("zone"))
	if err != nil {
		respondDBError(c, err, "publications not found")
		return
	}

	result := make([]gin.H, len(publications))
	for i := range publications {
		result[i] = formatPublication(&publications[i])
	}
	respondList(c, result, len(result))
}

func (h *PublicationHandler) GetPublication(c *gin.Context) {
	publication, err := h.db.GetPublication(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "publication not found")
		return
	}
	respondData(c, http.StatusOK, formatPublication(publication))
}

func (h *PublicationHandler) UpdatePublication(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	publication, err := h.db.GetPublication(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "publication not found")
		return
	}

	if publication.UserID != userID {
		respondError(c, http.StatusForbidden, "you can only edit your own publications")
		return
	}

	var req dto.PublicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Zone != nil {
		if status, msg := checkZone(req.Zone, &publication.Activity); status != 0 {
			respondError(c, status, msg)
			return
		}
		publication.Zone = req.Zone
	}
	if req.Title != "" {
		publication.Title = req.Title
	}
	if req.Address != nil {
		publication.Address = req.Address
	}
	if req.Slots > 0 {
		publication.Slots = req.Slots
	}
	if req.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid event date")
			return
		}
		publication.EventDate = eventDate
	}
	if req.EventTime != "" {
		publication.EventTime = req.EventTime
	}

	if err := h.db.UpdatePublication(publication); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update publication")
		return
	}

	respondData(c, http.StatusOK, formatPublication(publication))
}

func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	publication, err := h.db.GetPublication(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "publication not found")
		return
	}

	if publication.UserID != userID {
		respondError(c, http.StatusForbidden, "you can only delete your own publications")
		return
	}

	if err := h.db.DeletePublication(publication.ID.String()); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete publication")
		return
	}

	respondMessage(c, http.StatusOK, "publication deleted")
}
