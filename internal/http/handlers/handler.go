package handlers

import (
	"context"
	"net/http"

	"todo_backend/internal/domain"
	"todo_backend/internal/http/middleware"
	"todo_backend/internal/logger"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoStore is the slice of the todo repository the handlers need.
type TodoStore interface {
	List(ctx context.Context) ([]*domain.Todo, error)
	Get(ctx context.Context, id int64) (*domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) error
	Update(ctx context.Context, t *domain.Todo) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Auth  *service.AuthService
	Todos TodoStore
}

func NewHandler(auth *service.AuthService, todos TodoStore) *Handler {
	return &Handler{Auth: auth, Todos: todos}
}

// identityFrom reads the identity the auth middleware resolved for this
// request.
func identityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(middleware.IdentityKey)
	if !ok {
		return domain.Identity{}, false
	}
	ident, ok := v.(domain.Identity)
	return ident, ok
}

// respondError translates a typed outcome to its status code. Anything
// outside the closed set is a store fault: logged, returned as a plain 500.
func respondError(c *gin.Context, err error) {
	status := domain.GetStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": domain.GetMessage(err)})
}
