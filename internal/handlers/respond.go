package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamly-app/teamly-backend/internal/database"
)

// Every response, success or failure, keeps the same envelope shape:
// {success, data?, message?, count?}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": true, "message": msg})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// respondDBError maps the data layer's typed errors onto statuses without
// ever leaking driver text.
func respondDBError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, database.ErrDuplicate):
		respondError(c, http.StatusConflict, "record already exists")
	case errors.Is(err, database.ErrForeignKey):
		respondError(c, http.StatusUnprocessableEntity, "referenced user does not exist")
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
