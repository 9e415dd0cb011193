package domain

import "time"

type TaskType string

const (
	TaskTypeSchool TaskType = "school"
	TaskTypeSkill  TaskType = "skill"
	TaskTypeMisc   TaskType = "misc"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeSchool, TaskTypeSkill, TaskTypeMisc:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusDraft       TaskStatus = "draft"
	TaskStatusStaged      TaskStatus = "staged"
	TaskStatusInDock      TaskStatus = "in_dock"
	TaskStatusCompleted   TaskStatus = "completed"
	TaskStatusIncinerated TaskStatus = "incinerated"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusDraft, TaskStatusStaged, TaskStatusInDock, TaskStatusCompleted, TaskStatusIncinerated:
		return true
	}
	return false
}

// Terminal statuses are one-way: a completed or incinerated task never
// transitions back to an open status.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusIncinerated
}

type Task struct {
	ID         uint64
	Title      string
	Type       TaskType
	Status     TaskStatus
	Difficulty int
	XPValue    int
	Deadline   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateTaskInput struct {
	Title      string
	Type       TaskType
	Difficulty int
	XPValue    int
	Deadline   *time.Time
}

type UpdateTaskInput struct {
	Title       *string
	Type        *TaskType
	Status      *TaskStatus
	Difficulty  *int
	XPValue     *int
	Deadline    *time.Time
	DeadlineSet bool
}
