package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/teamly-app/teamly-backend/internal/database"
	"github.com/teamly-app/teamly-backend/internal/handlers"
	"github.com/teamly-app/teamly-backend/internal/middleware"
	ws "github.com/teamly-app/teamly-backend/internal/websocket"
	"github.com/teamly-app/teamly-backend/pkg/auth"
)

func APIEndpoints(r *gin.Engine, db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client, hub *ws.Hub) {
	authH := handlers.NewAuthHandler(db, jwtMgr, rdb)
	userH := handlers.NewUserHandler(db)
	activityH := handlers.NewActivityHandler(db)
	publicationH := handlers.NewPublicationHandler(db)
	commentH := handlers.NewCommentHandler(db)
	ratingH := handlers.NewRatingHandler(db)
	messageH := handlers.NewMessageHandler(db, hub)
	wsH := handlers.NewWebSocketHandler(hub)

	authMW := middleware.AuthMiddleware(jwtMgr, rdb)

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/recuperar", authH.Recover)
		authGroup.POST("/restablecer", authH.ResetPassword)
		authGroup.POST("/logout", authMW, authH.Logout)
	}

	// Public reads
	r.GET("/actividades", activityH.ListActivities)
	r.GET("/publicaciones", publicationH.ListPublications)
	r.GET("/publicaciones/:id", publicationH.GetPublication)
	r.GET("/comentarios/verificar", commentH.VerifyComment)
	r.GET("/comentarios/usuario/:id", commentH.GetUserComments)
	r.GET("/puntuaciones/usuario/:id/promedio", ratingH.GetAverage)
	r.GET("/usuarios/:id", userH.GetUser)

	// Authenticated surface
	authed := r.Group("/", authMW)
	{
		authed.GET("/perfil", userH.GetMe)
		authed.PUT("/perfil", userH.UpdateMe)

		authed.POST("/publicaciones", publicationH.CreatePublication)
		authed.PUT("/publicaciones/:id", publicationH.UpdatePublication)
		authed.DELETE("/publicaciones/:id", publicationH.DeletePublication)

		authed.POST("/comentarios", commentH.CreateComment)
		authed.PUT("/comentarios/:id", commentH.UpdateComment)
		authed.DELETE("/comentarios/:id", commentH.DeleteComment)

		authed.POST("/puntuaciones/create-or-update", ratingH.CreateOrUpdate)

		authed.POST("/mensajes", messageH.SendMessage)
		authed.GET("/mensajes/conversacion/:u1/:u2", messageH.GetConversation)
		authed.GET("/mensajes/usuario/:id", messageH.GetUserMessages)
	}

	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}
