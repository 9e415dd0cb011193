package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
)

const listActiveSchoolTasksQuery = `
SELECT * FROM tasks
WHERE type = 'school'
  AND status NOT IN ('completed', 'incinerated', 'in_dock')
ORDER BY deadline IS NULL, deadline;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID         uint64       `db:"id"`
	Title      string       `db:"title"`
	Type       string       `db:"type"`
	Status     string       `db:"status"`
	Difficulty int          `db:"difficulty"`
	XPValue    int          `db:"xp_value"`
	Deadline   sql.NullTime `db:"deadline"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (title, type, status, difficulty, xp_value, deadline)
VALUES (?, ?, ?, ?, ?, ?)`,
		input.Title,
		string(input.Type),
		string(domain.TaskStatusDraft),
		input.Difficulty,
		input.XPValue,
		deadlineParam(input.Deadline),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *TaskRepository) Get(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM tasks ORDER BY id`); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListActiveSchoolTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listActiveSchoolTasksQuery); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, string(*input.Type))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Difficulty != nil {
		sets = append(sets, "difficulty = ?")
		args = append(args, *input.Difficulty)
	}
	if input.XPValue != nil {
		sets = append(sets, "xp_value = ?")
		args = append(args, *input.XPValue)
	}
	if input.DeadlineSet {
		sets = append(sets, "deadline = ?")
		args = append(args, deadlineParam(input.Deadline))
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Task{}, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		// Distinguish no-op updates from missing rows.
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return domain.Task{}, getErr
		}
	}

	return r.Get(ctx, id)
}

func deadlineParam(deadline *time.Time) any {
	if deadline == nil {
		return nil
	}
	return deadline.UTC()
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		Type:       domain.TaskType(row.Type),
		Status:     domain.TaskStatus(row.Status),
		Difficulty: row.Difficulty,
		XPValue:    row.XPValue,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Deadline.Valid {
		value := row.Deadline.Time.UTC()
		task.Deadline = &value
	}

	return task
}
