package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

type completionStoreMock struct {
	mock.Mock

	task domain.Task
	user domain.User
}

func (m *completionStoreMock) CompleteTask(
	ctx context.Context,
	taskID uint64,
	userID uint64,
	apply func(task domain.Task, user domain.User) (domain.User, domain.RewardResult, error),
) (domain.Task, domain.RewardResult, error) {
	args := m.Called(ctx, taskID, userID)
	if err := args.Error(0); err != nil {
		return domain.Task{}, domain.RewardResult{}, err
	}

	updatedUser, reward, err := apply(m.task, m.user)
	if err != nil {
		return domain.Task{}, domain.RewardResult{}, err
	}
	m.user = updatedUser

	completed := m.task
	completed.Status = domain.TaskStatusCompleted
	m.task = completed
	return completed, reward, nil
}

type gameServiceMock struct {
	mock.Mock
}

func (m *gameServiceMock) CalculateState(ctx context.Context) (domain.StateSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StateSnapshot), args.Error(1)
}

func TestTaskService_CreateTask_RejectsInvalidInput(t *testing.T) {
	tasks := new(taskRepositoryMock)
	svc := NewTaskService(tasks, nil, nil, 1, frozenClock(testNow))

	cases := []domain.CreateTaskInput{
		{Title: "   ", Type: domain.TaskTypeMisc, Difficulty: 1},
		{Title: "no type", Type: domain.TaskType("nope"), Difficulty: 1},
		{Title: "difficulty low", Type: domain.TaskTypeSchool, Difficulty: 0},
		{Title: "difficulty high", Type: domain.TaskTypeSchool, Difficulty: 11},
		{Title: "negative xp", Type: domain.TaskTypeSkill, Difficulty: 1, XPValue: -5},
	}
	for _, input := range cases {
		_, err := svc.CreateTask(context.Background(), input)
		require.ErrorIs(t, err, domain.ErrInvalidTaskInput, "input=%+v", input)
	}

	tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_CreateTask_TrimsTitle(t *testing.T) {
	tasks := new(taskRepositoryMock)
	input := domain.CreateTaskInput{Title: "Write report", Type: domain.TaskTypeSchool, Difficulty: 4}
	created := domain.Task{ID: 10, Title: "Write report", Type: domain.TaskTypeSchool, Status: domain.TaskStatusDraft}
	tasks.On("Create", mock.Anything, input).Return(created, nil).Once()

	svc := NewTaskService(tasks, nil, nil, 1, frozenClock(testNow))
	task, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		Title:      "  Write report  ",
		Type:       domain.TaskTypeSchool,
		Difficulty: 4,
	})
	require.NoError(t, err)
	require.Equal(t, created, task)
	tasks.AssertExpectations(t)
}

func TestTaskService_UpdateTask_ClosedTaskIsFrozen(t *testing.T) {
	for _, status := range []domain.TaskStatus{domain.TaskStatusCompleted, domain.TaskStatusIncinerated} {
		tasks := new(taskRepositoryMock)
		tasks.On("Get", mock.Anything, uint64(7)).
			Return(domain.Task{ID: 7, Status: status}, nil).Once()

		svc := NewTaskService(tasks, nil, nil, 1, frozenClock(testNow))
		title := "resurrected"
		_, err := svc.UpdateTask(context.Background(), 7, domain.UpdateTaskInput{Title: &title})
		require.ErrorIs(t, err, domain.ErrTaskClosed)
		tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestTaskService_UpdateTask_CompletionViaPatchRejected(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("Get", mock.Anything, uint64(7)).
		Return(domain.Task{ID: 7, Status: domain.TaskStatusStaged}, nil).Once()

	svc := NewTaskService(tasks, nil, nil, 1, frozenClock(testNow))
	status := domain.TaskStatusCompleted
	_, err := svc.UpdateTask(context.Background(), 7, domain.UpdateTaskInput{Status: &status})
	require.ErrorIs(t, err, domain.ErrInvalidTaskInput)
}

func TestTaskService_CompleteTask_UsesFreshMultiplier(t *testing.T) {
	game := new(gameServiceMock)
	game.On("CalculateState", mock.Anything).Return(domain.StateSnapshot{
		Multiplier: flowMultiplier,
		Status:     domain.EfficiencyFlow,
	}, nil).Once()

	store := &completionStoreMock{
		task: domain.Task{ID: 3, Title: "Learn Docker", Type: domain.TaskTypeSkill, Status: domain.TaskStatusStaged, XPValue: 200},
		user: domain.NewUser(1, testNow),
	}
	store.On("CompleteTask", mock.Anything, uint64(3), uint64(1)).Return(nil).Once()

	svc := NewTaskService(nil, store, game, 1, frozenClock(testNow))
	task, reward, err := svc.CompleteTask(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, task.Status)
	require.Equal(t, 240, reward.XPGained)
	require.Equal(t, 3.0, reward.BlackholeRestored)
	require.Equal(t, flowMultiplier, reward.Multiplier)
	require.Equal(t, 240, store.user.CurrentXP)
	require.InDelta(t, domain.InitialBlackholeDays+3.0, store.user.BlackholeDays, 1e-9)

	game.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestTaskService_CompleteTask_AlreadyCompleted(t *testing.T) {
	game := new(gameServiceMock)
	game.On("CalculateState", mock.Anything).Return(domain.StateSnapshot{
		Multiplier: normalMultiplier,
		Status:     domain.EfficiencyNormal,
	}, nil).Once()

	store := &completionStoreMock{
		task: domain.Task{ID: 3, Type: domain.TaskTypeMisc, Status: domain.TaskStatusCompleted},
		user: domain.NewUser(1, testNow),
	}
	store.On("CompleteTask", mock.Anything, uint64(3), uint64(1)).Return(nil).Once()

	svc := NewTaskService(nil, store, game, 1, frozenClock(testNow))
	_, _, err := svc.CompleteTask(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrTaskAlreadyCompleted)

	// Rejected commits must leave the user untouched.
	require.Equal(t, 0, store.user.CurrentXP)
	require.Equal(t, domain.InitialBlackholeDays, store.user.BlackholeDays)
}

func TestTaskService_CompleteTask_StateFailureAborts(t *testing.T) {
	game := new(gameServiceMock)
	game.On("CalculateState", mock.Anything).
		Return(domain.StateSnapshot{}, errors.New("db is down")).Once()

	store := &completionStoreMock{}
	svc := NewTaskService(nil, store, game, 1, frozenClock(testNow))
	_, _, err := svc.CompleteTask(context.Background(), 3)
	require.Error(t, err)
	store.AssertNotCalled(t, "CompleteTask", mock.Anything, mock.Anything, mock.Anything)
}
