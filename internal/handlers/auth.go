package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers/dto"
	"github.com/teamly-app/teamly-backend/internal/models"
	"github.com/teamly-app/teamly-backend/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, redis: rdb}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot hash password")
		return
	}
	answerHash, err := bcrypt.GenerateFromPassword([]byte(req.SecurityAnswer), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot hash security answer")
		return
	}

	user := &models.User{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(passwordHash),
		SecurityQuestion:   req.SecurityQuestion,
		SecurityAnswerHash: string(answerHash),
		PhotoURL:           req.PhotoURL,
	}

	if err := h.db.SaveUser(user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(c, http.StatusConflict, "email is already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	respondData(c, http.StatusCreated, formatUser(user))
}

// Login keeps a single failure message regardless of which credential was
// wrong, so emails cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token, "user": formatUser(user)})
}

// Logout blacklists the presented token in Redis until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid token")
		return
	}

	if h.redis != nil {
		h.redis.Set(context.Background(), "blacklist:"+rawToken, 1, time.Until(exp))
	}

	respondMessage(c, http.StatusOK, "logged out")
}

// Recover returns the security question registered for an email.
func (h *AuthHandler) Recover(c *gin.Context) {
	var req dto.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		respondDBError(c, err, "user not found")
		return
	}

	respondData(c, http.StatusOK, gin.H{"security_question": user.SecurityQuestion})
}

// ResetPassword verifies the security answer and replaces the password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		respondDBError(c, err, "user not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SecurityAnswerHash), []byte(req.SecurityAnswer)); err != nil {
		respondError(c, http.StatusUnauthorized, "incorrect security answer")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot hash password")
		return
	}

	if err := h.db.UpdatePassword(user.ID.String(), string(newHash)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update password")
		return
	}

	respondMessage(c, http.StatusOK, "password updated")
}
