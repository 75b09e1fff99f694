// Package router assembles the gin engine and the API route table.
package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todolist_backend/internal/feature/auth/transport/handler"
	authmw "todolist_backend/internal/feature/auth/transport/middleware"
	todohandler "todolist_backend/internal/feature/todos/transport/handler"
	"todolist_backend/internal/platform/http/handler"
	"todolist_backend/internal/shared/ratelimiter"
)

// NewRouter builds the gin engine with CORS, the health endpoint, and
// the /api route groups. Authenticated routes accept either the session
// cookie or a legacy bearer token via the shared middleware.
func NewRouter(authHandler *authhandler.AuthHandler, todoHandler *todohandler.TodoHandler,
	sessions authmw.SessionResolver, tokens authmw.TokenParser) *gin.Engine {
	r := gin.Default()

	// Credentialed requests are only allowed from localhost-origin
	// clients in this deployment profile.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// Credential endpoints: no auth, but rate limited per client IP.
	credLimit := ratelimiter.ByClientIP(ratelimiter.CredentialLimit)
	auth := api.Group("/auth")
	auth.POST("/register", credLimit, authHandler.Register)
	auth.POST("/login", credLimit, authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Authenticated auth routes.
	authRequired := authmw.AuthRequired(sessions, tokens)
	auth.GET("/me", authRequired, authHandler.Me)
	auth.PUT("/profile", authRequired, authHandler.UpdateProfile)

	// Todo routes: everything requires authentication.
	todos := api.Group("/todos")
	todos.Use(authRequired)
	{
		todos.GET("", todoHandler.List)
		todos.GET("/:id", todoHandler.GetByID)
		todos.POST("", todoHandler.Create)
		todos.PUT("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
		todos.PATCH("/:id/toggle", todoHandler.Toggle)
	}

	return r
}
