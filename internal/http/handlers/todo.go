package handlers

import (
	"net/http"
	"strconv"

	"todo_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TodoRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3,max=100"`
	Priority    int    `json:"priority" binding:"required,gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

// ListTodos returns every todo. The resolved identity is available but
// todos are not scoped by owner; any authenticated caller sees them all.
func (h *Handler) ListTodos(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	todos, err := h.Todos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	id, err := todoID(c)
	if err != nil {
		respondError(c, domain.ErrTodoNotFound)
		return
	}

	todo, err := h.Todos.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo := &domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}
	if err := h.Todos.Create(c.Request.Context(), todo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo replaces all four mutable fields.
func (h *Handler) UpdateTodo(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	id, err := todoID(c)
	if err != nil {
		respondError(c, domain.ErrTodoNotFound)
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo := &domain.Todo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}
	if err := h.Todos.Update(c.Request.Context(), todo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	if _, ok := identityFrom(c); !ok {
		respondError(c, domain.ErrNotAuthenticated)
		return
	}

	id, err := todoID(c)
	if err != nil {
		respondError(c, domain.ErrTodoNotFound)
		return
	}

	if err := h.Todos.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func todoID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTodoNotFound
	}
	return id, nil
}
