package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(ExtractorConfig{
		BaseURL:         "http://localhost:0",
		APIKey:          "test",
		TranscribeModel: "whisper-large-v3-turbo",
		ExtractModel:    "llama-3.3-70b-versatile",
		Location:        time.UTC,
		Clock:           func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func TestParseTasks_ValidPayload(t *testing.T) {
	e := newTestExtractor(t)

	inputs, err := e.parseTasks(`{"tasks":[
		{"title":"Study chapter 4","type":"school","difficulty":6,"xp_value":0,"deadline":"2026-03-05T20:00:00Z"},
		{"title":"Buy batteries","type":"misc","difficulty":1,"xp_value":10}
	]}`)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Study chapter 4", inputs[0].Title)
	assert.Equal(t, domain.TaskTypeSchool, inputs[0].Type)
	assert.Equal(t, 6, inputs[0].Difficulty)
	require.NotNil(t, inputs[0].Deadline)
	assert.Equal(t, time.Date(2026, 3, 5, 20, 0, 0, 0, time.UTC), *inputs[0].Deadline)

	assert.Equal(t, domain.TaskTypeMisc, inputs[1].Type)
	assert.Equal(t, 10, inputs[1].XPValue)
	assert.Nil(t, inputs[1].Deadline)
}

func TestParseTasks_ClampsDifficultyAndXP(t *testing.T) {
	e := newTestExtractor(t)

	inputs, err := e.parseTasks(`{"tasks":[{"title":"x","type":"school","difficulty":42,"xp_value":-5}]}`)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, 10, inputs[0].Difficulty)
	assert.Equal(t, 0, inputs[0].XPValue)
}

func TestParseTasks_RejectsBadOutput(t *testing.T) {
	e := newTestExtractor(t)

	cases := map[string]string{
		"not json":      `tasks: []`,
		"no task list":  `{"ok":true}`,
		"empty list":    `{"tasks":[]}`,
		"missing title": `{"tasks":[{"type":"misc"}]}`,
		"bad type":      `{"tasks":[{"title":"x","type":"hobby"}]}`,
		"bad deadline":  `{"tasks":[{"title":"x","type":"misc","deadline":"whenever"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.parseTasks(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidTaskInput)
		})
	}
}

func TestCleanTranscript_StripsTimecodeLines(t *testing.T) {
	raw := "00:01\nRemember the physics homework\n00:05 00:09\ndue next Friday\n"
	assert.Equal(t, "Remember the physics homework due next Friday", cleanTranscript(raw))
}

func TestCleanTranscript_EmptyAfterCleanup(t *testing.T) {
	assert.Equal(t, "", cleanTranscript("00:01\n  \n1:02:03\n"))
}
