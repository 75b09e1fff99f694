package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"todolist_backend/internal/app/di"
	"todolist_backend/internal/app/router"
	authadapters "todolist_backend/internal/feature/auth/adapters"
	authhandler "todolist_backend/internal/feature/auth/transport/handler"
	authusecase "todolist_backend/internal/feature/auth/usecase"
	todoadapters "todolist_backend/internal/feature/todos/adapters"
	todohandler "todolist_backend/internal/feature/todos/transport/handler"
	todousecase "todolist_backend/internal/feature/todos/usecase"
	"todolist_backend/internal/platform/config"
	infradb "todolist_backend/internal/platform/db"
	jwtx "todolist_backend/internal/platform/jwt"
	infraredis "todolist_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Println("[WARN] auth.jwt_secret is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis: sessions fall back to MySQL when unavailable
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions stored in MySQL.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	todoRepo := todoadapters.NewTodoMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	// Legacy bearer tokens share the same 24h lifetime as sessions.
	tokenParser := jwtx.NewParser(cfg.Auth.JWTSecret)

	r := router.NewRouter(authH, todoH, authUC, tokenParser)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
