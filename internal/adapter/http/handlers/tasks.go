package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/adapter/http/dto"
	"github.com/YC815/entropy-backend/internal/adapter/http/mapper"
	"github.com/YC815/entropy-backend/internal/adapter/http/middleware"
	"github.com/YC815/entropy-backend/internal/adapter/http/validation"
	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
	"github.com/YC815/entropy-backend/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	location    *time.Location
}

func NewTaskHandler(taskService ports.TaskService, location *time.Location) *TaskHandler {
	if location == nil {
		location = time.UTC
	}
	return &TaskHandler{taskService: taskService, location: location}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, h.location)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTaskInput) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, h.location)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrTaskClosed):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgTaskClosed, lang),
			)
		case errors.Is(err, domain.ErrInvalidTaskInput):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, reward, err := h.taskService.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrTaskAlreadyCompleted):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgTaskAlreadyDone, lang),
			)
		default:
			zap.L().Error("failed to complete task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCompleteTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CompleteTaskResponse{
		Task:   mapper.ToTaskItem(task),
		Reward: mapper.ToRewardResult(reward),
	})
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
