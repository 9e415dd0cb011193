package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/adapter/http/dto"
	"github.com/YC815/entropy-backend/internal/adapter/http/mapper"
	"github.com/YC815/entropy-backend/internal/adapter/http/middleware"
	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
	"github.com/YC815/entropy-backend/pkg/apierrors"
)

const (
	// Uploads below this size are recording failures, not speech.
	minAudioBytes = 500
	maxAudioBytes = 25 << 20
)

type IntakeHandler struct {
	intakeService ports.IntakeService
}

func NewIntakeHandler(intakeService ports.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// ProcessAudio accepts a multipart voice recording, extracts tasks from
// it and stores them as drafts.
func (h *IntakeHandler) ProcessAudio(c *gin.Context) {
	lang := middleware.GetLang(c)

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Size < minAudioBytes || fileHeader.Size > maxAudioBytes {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAudio, lang),
		)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Error("failed to open audio upload", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailIntake, lang),
		)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	result, err := h.intakeService.ProcessAudio(c.Request.Context(), file, fileHeader.Filename, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyTranscript):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAudio, lang),
			)
		case errors.Is(err, domain.ErrInvalidTaskInput):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFailIntake, lang),
			)
		default:
			zap.L().Error("audio intake failed", zap.Error(err))
			c.JSON(
				http.StatusBadGateway,
				apierrors.CreateError(http.StatusBadGateway, apierrors.MsgFailIntake, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.IntakeResponse{
		BatchID:    result.BatchID,
		Transcript: result.Transcript,
		Tasks:      mapper.ToTaskItems(result.Tasks),
	})
}
