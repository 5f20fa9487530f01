package http

import (
	"todo_backend/internal/config"
	"todo_backend/internal/http/handlers"
	"todo_backend/internal/http/middleware"
	"todo_backend/internal/repository"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	users := repository.NewUserRepository(db)
	todos := repository.NewTodoRepository(db)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(users, hasher, tokens)

	h := handlers.NewHandler(auth, todos)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Registration and login
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/", h.Register)
		authGroup.POST("/token", h.Login)
	}

	// Todo CRUD, bearer token required
	todoGroup := r.Group("/todo")
	todoGroup.Use(middleware.Auth(tokens))
	{
		todoGroup.GET("/", h.ListTodos)
		todoGroup.GET("/:id", h.GetTodo)
		todoGroup.POST("/", h.CreateTodo)
		todoGroup.PUT("/:id", h.UpdateTodo)
		todoGroup.DELETE("/:id", h.DeleteTodo)
	}
}
