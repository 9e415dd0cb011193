package ports

import (
	"context"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	// ListActiveSchoolTasks returns school tasks that still weigh on the
	// integrity score: neither completed, incinerated nor in dock.
	ListActiveSchoolTasks(ctx context.Context) ([]domain.Task, error)
}

// CompletionStore runs a task completion atomically: it loads the task and
// user under row locks, invokes apply to compute the reward, flips the
// task status with a completed-guard, and persists both records in one
// transaction. apply must be free of side effects.
type CompletionStore interface {
	CompleteTask(
		ctx context.Context,
		taskID uint64,
		userID uint64,
		apply func(task domain.Task, user domain.User) (domain.User, domain.RewardResult, error),
	) (domain.Task, domain.RewardResult, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	CompleteTask(ctx context.Context, id uint64) (domain.Task, domain.RewardResult, error)
}
