package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrTaskClosed           = errors.New("task is closed")
	ErrInvalidTaskInput     = errors.New("invalid task input")
	ErrEmptyTranscript      = errors.New("transcript contains no speech")
)
