package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers/dto"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	"github.com/teamly-app/teamly-backend/internal/models"
)

type CommentHandler struct {
	db *database.Database
}

func NewCommentHandler(db *database.Database) *CommentHandler {
	return &CommentHandler{db: db}
}

func formatComment(comment *models.Comment) gin.H {
	response := gin.H{
		"id":                 comment.ID,
		"idUsuario":          comment.AuthorID,
		"idUsuarioComentado": comment.TargetID,
		"contenido":          comment.Content,
		"created_at":         comment.CreatedAt,
		"updated_at":         comment.UpdatedAt,
	}
	if comment.Author.ID != uuid.Nil {
		response["autor"] = formatPublicUser(&comment.Author)
	}
	return response
}

// VerifyComment resolves whether a comment already exists for the ordered
// (author, target) pair. Direction matters: (A,B) and (B,A) are distinct.
func (h *CommentHandler) VerifyComment(c *gin.Context) {
	authorID, err := uuid.Parse(c.Query("idUsuario"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "idUsuario is required")
		return
	}
	targetID, err := uuid.Parse(c.Query("idUsuarioComentado"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "idUsuarioComentado is required")
		return
	}

	comment, err := h.db.FindComment(authorID, targetID)
	if errors.Is(err, database.ErrNotFound) {
		respondData(c, http.StatusOK, gin.H{"existe": false})
		return
	}
	if err != nil {
		respondDBError(c, err, "comment not found")
		return
	}

	respondData(c, http.StatusOK, gin.H{"existe": true, "comentario": formatComment(comment)})
}

// CreateComment upserts the caller's comment on the target user. When the
// request carries a score, comment and rating are written in a single
// transaction. 201 means a new row, 200 an overwrite.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	authorID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CommentRequest
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
		respondError(c, http.StatusBadRequest, "cannot comment on yourself")
		return
	}

	comment := &models.Comment{
		AuthorID: authorID,
		TargetID: targetID,
		Content:  req.Content,
	}

	var created bool
	data := gin.H{}
	if req.Score != nil {
		rating := &models.Rating{AuthorID: authorID, TargetID: targetID, Score: *req.Score}
		created, err = h.db.LeaveFeedback(comment, rating)
		if err == nil {
			data["puntuacion"] = formatRating(rating)
		}
	} else {
		created, err = h.db.UpsertComment(comment)
	}
	if err != nil {
		respondDBError(c, err, "comment not found")
		return
	}
	data["comentario"] = formatComment(comment)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondData(c, status, data)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	authorID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	comment, err := h.db.GetComment(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "comment not found")
		return
	}

	if comment.AuthorID != authorID {
		respondError(c, http.StatusForbidden, "you can only edit your own comments")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment.Content = req.Content
	if err := h.db.UpdateComment(comment); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update comment")
		return
	}

	respondData(c, http.StatusOK, formatComment(comment))
}

// DeleteComment removes the comment and its paired rating in one
// transaction; feedback is one logical unit.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	authorID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	comment, err := h.db.GetComment(c.Param("id"))
	if err != nil {
		respondDBError(c, err, "comment not found")
		return
	}

	if comment.AuthorID != authorID {
		respondError(c, http.StatusForbidden, "you can only delete your own comments")
		return
	}

	if err := h.db.DeleteComment(comment.ID.String()); err != nil {
		respondDBError(c, err, "comment not found")
		return
	}

	respondMessage(c, http.StatusOK, "comment deleted")
}

// GetUserComments lists comments received by a user, newest first.
func (h *CommentHandler) GetUserComments(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	comments, err := h.db.GetCommentsForUser(targetID)
	if err != nil {
		respondDBError(c, err, "comments not found")
		return
	}

	result := make([]gin.H, len(comments))
	for i := range comments {
		result[i] = formatComment(&comments[i])
	}
	respondList(c, result, len(result))
}
