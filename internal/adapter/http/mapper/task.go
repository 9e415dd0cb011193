package mapper

import (
	"time"

	"github.com/YC815/entropy-backend/internal/adapter/http/dto"
	"github.com/YC815/entropy-backend/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		Title:      task.Title,
		Type:       string(task.Type),
		Status:     string(task.Status),
		Difficulty: task.Difficulty,
		XPValue:    task.XPValue,
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Deadline != nil {
		value := task.Deadline.UTC().Format(time.RFC3339)
		item.Deadline = &value
	}

	return item
}

func ToRewardResult(reward domain.RewardResult) dto.RewardResult {
	return dto.RewardResult{
		XPGained:          reward.XPGained,
		BlackholeRestored: reward.BlackholeRestored,
		Multiplier:        reward.Multiplier,
		Status:            string(reward.Status),
	}
}
