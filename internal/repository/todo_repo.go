package repository

import (
	"context"
	"errors"

	"todo_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, priority, complete FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TodoRepository) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, priority, complete FROM todos WHERE id = $1`, id)

	var t domain.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO todos (title, description, priority, complete)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Title, t.Description, t.Priority, t.Complete,
	).Scan(&t.ID)
}

// Update replaces all mutable fields of the todo.
func (r *TodoRepository) Update(ctx context.Context, t *domain.Todo) error {
	res, err := r.db.Exec(ctx,
		`UPDATE todos SET title = $1, description = $2, priority = $3, complete = $4 WHERE id = $5`,
		t.Title, t.Description, t.Priority, t.Complete, t.ID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
