package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
)

type TaskService struct {
	tasks       ports.TaskRepository
	completions ports.CompletionStore
	game        ports.GameService
	userID      uint64
	clock       func() time.Time
}

func NewTaskService(
	tasks ports.TaskRepository,
	completions ports.CompletionStore,
	game ports.GameService,
	userID uint64,
	clock func() time.Time,
) *TaskService {
	if clock == nil {
		clock = time.Now
	}
	return &TaskService{
		tasks:       tasks,
		completions: completions,
		game:        game,
		userID:      userID,
		clock:       clock,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || !input.Type.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}
	if input.Difficulty < 1 || input.Difficulty > 10 || input.XPValue < 0 {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}
	return s.tasks.Create(ctx, input)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, err := s.tasks.Get(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	// Terminal tasks are frozen; completion has its own endpoint.
	if current.Status.Terminal() {
		return domain.Task{}, domain.ErrTaskClosed
	}
	if input.Status != nil && *input.Status == domain.TaskStatusCompleted {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}

	return s.tasks.Update(ctx, id, input)
}

// CompleteTask recomputes the strategic state at the instant of commit so
// the reward reflects current integrity, then applies the type-specific
// reward and flips the task status atomically. The store's status guard
// makes the reward at-most-once even under concurrent commits.
func (s *TaskService) CompleteTask(ctx context.Context, id uint64) (domain.Task, domain.RewardResult, error) {
	snapshot, err := s.game.CalculateState(ctx)
	if err != nil {
		return domain.Task{}, domain.RewardResult{}, err
	}

	now := s.clock().UTC()
	task, reward, err := s.completions.CompleteTask(ctx, id, s.userID,
		func(task domain.Task, user domain.User) (domain.User, domain.RewardResult, error) {
			if task.Status == domain.TaskStatusCompleted {
				return user, domain.RewardResult{}, domain.ErrTaskAlreadyCompleted
			}
			return applyReward(task, user, snapshot.Multiplier, snapshot.Status, now)
		},
	)
	if err != nil {
		return domain.Task{}, domain.RewardResult{}, err
	}

	zap.L().Info("task completed",
		zap.Uint64("task_id", task.ID),
		zap.String("type", string(task.Type)),
		zap.Int("xp_gained", reward.XPGained),
		zap.Float64("multiplier", reward.Multiplier),
	)
	return task, reward, nil
}
