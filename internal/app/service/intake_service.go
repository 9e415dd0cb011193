package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/core/ports"
)

type IntakeService struct {
	extractor ports.TaskExtractor
	tasks     ports.TaskService
}

func NewIntakeService(extractor ports.TaskExtractor, tasks ports.TaskService) *IntakeService {
	return &IntakeService{extractor: extractor, tasks: tasks}
}

var _ ports.IntakeService = (*IntakeService)(nil)

// ProcessAudio runs the voice instruction pipeline: transcribe the
// recording, extract atomic tasks from the transcript, and persist each
// as a draft. Extraction failures abort before anything is written; a
// partial create failure returns what was stored so far.
func (s *IntakeService) ProcessAudio(ctx context.Context, audio io.Reader, filename, mimeType string) (ports.IntakeResult, error) {
	batchID := uuid.NewString()

	transcript, err := s.extractor.Transcribe(ctx, audio, filename, mimeType)
	if err != nil {
		return ports.IntakeResult{}, err
	}

	inputs, err := s.extractor.ExtractTasks(ctx, transcript)
	if err != nil {
		return ports.IntakeResult{}, err
	}

	result := ports.IntakeResult{BatchID: batchID, Transcript: transcript}
	for _, input := range inputs {
		task, err := s.tasks.CreateTask(ctx, input)
		if err != nil {
			zap.L().Error("failed to store extracted task",
				zap.String("batch_id", batchID),
				zap.String("title", input.Title),
				zap.Error(err),
			)
			return result, err
		}
		result.Tasks = append(result.Tasks, task)
	}

	zap.L().Info("audio instruction processed",
		zap.String("batch_id", batchID),
		zap.Int("tasks", len(result.Tasks)),
		zap.Int("transcript_len", len(transcript)),
	)
	return result, nil
}
