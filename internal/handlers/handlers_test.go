package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	ws "github.com/teamly-app/teamly-backend/internal/websocket"
	"github.com/teamly-app/teamly-backend/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	d := database.NewDatabase(db)

	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)
	hub := ws.NewHub()

	authH := NewAuthHandler(d, jwtMgr, nil)
	userH := NewUserHandler(d)
	activityH := NewActivityHandler(d)
	publicationH := NewPublicationHandler(d)
	commentH := NewCommentHandler(d)
	ratingH := NewRatingHandler(d)
	messageH := NewMessageHandler(d, hub)

	authMW := middleware.AuthMiddleware(jwtMgr, nil)

	r := gin.New()
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/recuperar", authH.Recover)
	r.POST("/auth/restablecer", authH.ResetPassword)

	r.GET("/actividades", activityH.ListActivities)
	r.GET("/comentarios/verificar", commentH.VerifyComment)
	r.GET("/comentarios/usuario/:id", commentH.GetUserComments)
	r.GET("/puntuaciones/usuario/:id/promedio", ratingH.GetAverage)
	r.GET("/usuarios/:id", userH.GetUser)

	r.POST("/publicaciones", authMW, publicationH.CreatePublication)
	r.POST("/comentarios", authMW, commentH.CreateComment)
	r.DELETE("/comentarios/:id", authMW, commentH.DeleteComment)
	r.POST("/puntuaciones/create-or-update", authMW, ratingH.CreateOrUpdate)
	r.POST("/mensajes", authMW, messageH.SendMessage)
	r.GET("/mensajes/conversacion/:u1/:u2", authMW, messageH.GetConversation)

	return r, d
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser creates an account and returns its id.
func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":              "user " + email,
		"email":             email,
		"password":          "supersecret1",
		"security_question": "favorite team?",
		"security_answer":   "millonarios",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: code %d body %s", email, w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "supersecret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: code %d body %s", email, w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]interface{})
	return data["token"].(string)
}
