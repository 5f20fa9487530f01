package handlers

import (
	"context"
	"sort"
	"time"

	"todo_backend/internal/domain"
	"todo_backend/internal/http/middleware"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeTodoStore struct {
	todos       map[int64]*domain.Todo
	nextID      int64
	createCalls int
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[int64]*domain.Todo), nextID: 1}
}

func (f *fakeTodoStore) List(_ context.Context) ([]*domain.Todo, error) {
	var res []*domain.Todo
	for _, t := range f.todos {
		cp := *t
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeTodoStore) Get(_ context.Context, id int64) (*domain.Todo, error) {
	t, ok := f.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTodoStore) Create(_ context.Context, t *domain.Todo) error {
	f.createCalls++
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.todos[t.ID] = &cp
	return nil
}

func (f *fakeTodoStore) Update(_ context.Context, t *domain.Todo) error {
	if _, ok := f.todos[t.ID]; !ok {
		return domain.ErrTodoNotFound
	}
	cp := *t
	f.todos[t.ID] = &cp
	return nil
}

func (f *fakeTodoStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.todos[id]; !ok {
		return domain.ErrTodoNotFound
	}
	delete(f.todos, id)
	return nil
}

// newTestRouter wires the real services and handlers over in-memory stores,
// mirroring RegisterRoutes.
func newTestRouter() (*gin.Engine, *fakeTodoStore) {
	gin.SetMode(gin.TestMode)

	users := newFakeUserStore()
	todos := newFakeTodoStore()
	tokens := service.NewTokenService("test-secret", 20*time.Minute)
	auth := service.NewAuthService(users, service.NewPasswordHasher(), tokens)
	h := NewHandler(auth, todos)

	r := gin.New()

	authGroup := r.Group("/auth")
	authGroup.POST("/", h.Register)
	authGroup.POST("/token", h.Login)

	todoGroup := r.Group("/todo")
	todoGroup.Use(middleware.Auth(tokens))
	todoGroup.GET("/", h.ListTodos)
	todoGroup.GET("/:id", h.GetTodo)
	todoGroup.POST("/", h.CreateTodo)
	todoGroup.PUT("/:id", h.UpdateTodo)
	todoGroup.DELETE("/:id", h.DeleteTodo)

	return r, todos
}
