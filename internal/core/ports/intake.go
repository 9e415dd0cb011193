package ports

import (
	"context"
	"io"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

// TaskExtractor turns a voice recording into candidate task inputs.
type TaskExtractor interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (string, error)
	ExtractTasks(ctx context.Context, transcript string) ([]domain.CreateTaskInput, error)
}

// IntakeResult is the outcome of one audio instruction: the cleaned
// transcript plus the tasks persisted from it.
type IntakeResult struct {
	BatchID    string
	Transcript string
	Tasks      []domain.Task
}

type IntakeService interface {
	ProcessAudio(ctx context.Context, audio io.Reader, filename, mimeType string) (IntakeResult, error)
}
