package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
)

// CompletionStore commits task rewards atomically. Task and user rows are
// locked for the duration of the transaction and the status flip is
// guarded, so two racing commits on the same task can reward at most once.
type CompletionStore struct {
	db *sqlx.DB
}

var _ ports.CompletionStore = (*CompletionStore)(nil)

func NewCompletionStore(db *sqlx.DB) *CompletionStore {
	return &CompletionStore{db: db}
}

func (s *CompletionStore) CompleteTask(
	ctx context.Context,
	taskID uint64,
	userID uint64,
	apply func(task domain.Task, user domain.User) (domain.User, domain.RewardResult, error),
) (domain.Task, domain.RewardResult, error) {
	var (
		completed domain.Task
		reward    domain.RewardResult
	)

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var tRow taskRow
		err := tx.GetContext(ctx, &tRow, `SELECT * FROM tasks WHERE id = ? FOR UPDATE`, taskID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		if err != nil {
			return err
		}
		task := mapTaskRow(tRow)

		var uRow userRow
		err = tx.GetContext(ctx, &uRow, `SELECT * FROM users WHERE id = ? FOR UPDATE`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		user := mapUserRow(uRow)

		updatedUser, r, err := apply(task, user)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE tasks SET status = ? WHERE id = ? AND status <> ?`,
			string(domain.TaskStatusCompleted), taskID, string(domain.TaskStatusCompleted),
		)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTaskAlreadyCompleted
		}

		_, err = tx.ExecContext(ctx, `
UPDATE users
SET level = ?, current_xp = ?, blackhole_days = ?, last_login = ?
WHERE id = ?`,
			updatedUser.Level,
			updatedUser.CurrentXP,
			updatedUser.BlackholeDays,
			updatedUser.LastLogin.UTC(),
			updatedUser.ID,
		)
		if err != nil {
			return err
		}

		task.Status = domain.TaskStatusCompleted
		completed = task
		reward = r
		return nil
	})
	if err != nil {
		return domain.Task{}, domain.RewardResult{}, err
	}

	return completed, reward, nil
}
