// Package ai implements the voice intake pipeline against an
// OpenAI-compatible provider: Whisper transcription followed by a
// JSON-mode chat completion that turns the transcript into atomic tasks.
package ai

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
	"github.com/YC815/entropy-backend/pkg/timeutil"
)

const maxExtractAttempts = 3

// timestamp-only lines sometimes leak out of the ASR output.
var timecodePattern = regexp.MustCompile(`^\d{1,2}:\d{2}(?::\d{2})?(?::\d{2})?$`)

type Extractor struct {
	client          openai.Client
	transcribeModel string
	extractModel    string
	location        *time.Location
	clock           func() time.Time
}

type ExtractorConfig struct {
	BaseURL         string
	APIKey          string
	TranscribeModel string
	ExtractModel    string
	Location        *time.Location
	Clock           func() time.Time
}

var _ ports.TaskExtractor = (*Extractor)(nil)

func NewExtractor(cfg ExtractorConfig) *Extractor {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Extractor{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
		),
		transcribeModel: cfg.TranscribeModel,
		extractModel:    cfg.ExtractModel,
		location:        loc,
		clock:           clock,
	}
}

func (e *Extractor) Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (string, error) {
	resp, err := e.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(audio, filename, mimeType),
		Model: openai.AudioModel(e.transcribeModel),
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}

	transcript := cleanTranscript(resp.Text)
	if transcript == "" {
		return "", domain.ErrEmptyTranscript
	}
	return transcript, nil
}

func (e *Extractor) ExtractTasks(ctx context.Context, transcript string) ([]domain.CreateTaskInput, error) {
	prompt := e.buildPrompt()
	var lastErr error

	for attempt := 1; attempt <= maxExtractAttempts; attempt++ {
		userText := transcript
		if lastErr != nil {
			userText = fmt.Sprintf("%s\nPrevious error: %v", transcript, lastErr)
		}

		resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(e.extractModel),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(prompt),
				openai.UserMessage(userText),
			},
			Temperature: openai.Float(0),
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
		})
		if err != nil {
			lastErr = err
			zap.L().Warn("task extraction call failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("extraction returned no choices")
			continue
		}

		inputs, err := e.parseTasks(resp.Choices[0].Message.Content)
		if err != nil {
			lastErr = err
			zap.L().Warn("task extraction output invalid", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		return inputs, nil
	}

	return nil, fmt.Errorf("task extraction failed after %d attempts: %w", maxExtractAttempts, lastErr)
}

func (e *Extractor) parseTasks(raw string) ([]domain.CreateTaskInput, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: model output is not valid JSON", domain.ErrInvalidTaskInput)
	}

	items := gjson.Get(raw, "tasks")
	if !items.IsArray() || len(items.Array()) == 0 {
		return nil, fmt.Errorf("%w: model output is empty or missing task list", domain.ErrInvalidTaskInput)
	}

	inputs := make([]domain.CreateTaskInput, 0, len(items.Array()))
	for _, item := range items.Array() {
		title := strings.TrimSpace(item.Get("title").String())
		taskType := domain.TaskType(item.Get("type").String())
		if title == "" || !taskType.Valid() {
			return nil, fmt.Errorf("%w: task entry missing title or has invalid type %q",
				domain.ErrInvalidTaskInput, item.Get("type").String())
		}

		difficulty := int(item.Get("difficulty").Int())
		if difficulty < 1 {
			difficulty = 1
		}
		if difficulty > 10 {
			difficulty = 10
		}

		xpValue := int(item.Get("xp_value").Int())
		if xpValue < 0 {
			xpValue = 0
		}

		var deadline *time.Time
		if raw := item.Get("deadline"); raw.Exists() && raw.Type == gjson.String {
			parsed, err := timeutil.ParseDeadline(raw.String(), e.location)
			if err != nil {
				return nil, fmt.Errorf("%w: task %q: %v", domain.ErrInvalidTaskInput, title, err)
			}
			deadline = parsed
		}

		inputs = append(inputs, domain.CreateTaskInput{
			Title:      title,
			Type:       taskType,
			Difficulty: difficulty,
			XPValue:    xpValue,
			Deadline:   deadline,
		})
	}

	return inputs, nil
}

func (e *Extractor) buildPrompt() string {
	now := e.clock().In(e.location)
	return fmt.Sprintf(`You are the logistics officer of a strategic console.
Current time: %s (%s).

Listen to the user's instruction and convert it into atomic tasks.

Time rules:
- Treat all times as the %s zone; output ISO-8601 with offset.
- Date without time defaults to 23:59 local; no date at all means deadline null.
- Resolve relative dates (tomorrow = +1 day, next <weekday> = the next such weekday).
- Vague times of day: morning 09:00, noon 12:00, afternoon 15:00, evening 20:00, late night 01:00.

Field rules, by type:
1. type="school" (maintenance): xp_value 0; difficulty 1-3 chores, 4-7 regular assignments, 8-10 finals or major projects.
2. type="skill" (growth): difficulty 1; xp_value = estimated focus hours * 100.
3. type="misc": difficulty 1; xp_value 10.

Output strictly one JSON object, no markdown, of the form:
{"tasks": [{"title": "...", "type": "school", "difficulty": 9, "xp_value": 0, "deadline": "2025-12-30T23:59:00+08:00"}]}
Only emit tasks actually present in the transcript.`,
		now.Format("2006-01-02 Monday 15:04"), e.location.String(), e.location.String())
}

func cleanTranscript(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		allTimecodes := true
		for _, tok := range tokens {
			if !timecodePattern.MatchString(tok) {
				allTimecodes = false
				break
			}
		}
		if allTimecodes {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
