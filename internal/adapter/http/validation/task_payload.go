package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/YC815/entropy-backend/internal/adapter/http/dto"
	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/pkg/timeutil"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput applies defaults and normalizes the deadline to
// UTC minute precision relative to the configured zone.
func BuildCreateTaskInput(req dto.CreateTaskRequest, loc *time.Location) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	taskType := domain.TaskType(req.Type)
	if !taskType.Valid() {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	difficulty := 1
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}

	xpValue := 0
	if req.XPValue != nil {
		xpValue = *req.XPValue
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := timeutil.ParseDeadline(*req.Deadline, loc)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		deadline = parsed
	}

	return domain.CreateTaskInput{
		Title:      title,
		Type:       taskType,
		Difficulty: difficulty,
		XPValue:    xpValue,
		Deadline:   deadline,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, loc *time.Location) (domain.UpdateTaskInput, error) {
	if req.Title == nil && req.Type == nil && req.Status == nil &&
		req.Difficulty == nil && req.XPValue == nil && req.Deadline == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var taskType *domain.TaskType
	if req.Type != nil {
		value := domain.TaskType(*req.Type)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		taskType = &value
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	input := domain.UpdateTaskInput{
		Title:      title,
		Type:       taskType,
		Status:     status,
		Difficulty: req.Difficulty,
		XPValue:    req.XPValue,
	}

	if req.Deadline != nil {
		input.DeadlineSet = true
		if strings.TrimSpace(*req.Deadline) != "" {
			parsed, err := timeutil.ParseDeadline(*req.Deadline, loc)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.Deadline = parsed
		}
	}

	return input, nil
}
