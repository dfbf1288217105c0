package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

type getTaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func newGetTaskListResponse(tasks []*models.Task) gin.H {
	data := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		data[i] = newGetTaskResponse(task)
	}
	return gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	}
}

// parseTaskID reports false for anything that can't name a stored task.
func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createTaskRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Status      string  `json:"status" form:"status"`
	Priority    string  `json:"priority" form:"priority"`
	DueDate     *string `json:"due_date" form:"due_date"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	if req.Title == "" {
		h.logger.Warn().Msg("no title provided")
		abort(c, newBadRequestError(errTitleRequired.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, h.newInternalError("failed to create task", err))
		return
	}

	h.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "task created successfully",
		"data":    newGetTaskResponse(task),
	})
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.GetTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, h.newInternalError("failed to get tasks", err))
		return
	}

	h.logger.Info().Msg("fetched tasks")
	c.JSON(http.StatusOK, newGetTaskListResponse(tasks))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		h.logger.Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		return
	}

	task, err := h.tasks.GetTaskByID(c, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to get task")
		abort(c, h.newInternalError("failed to get task", err))
		return
	}

	h.logger.Info().
		Int64("task_id", taskID).
		Msg("fetched task")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    newGetTaskResponse(task),
	})
}

type taskStatusURI struct {
	Status string `uri:"status" binding:"required,oneof=pending in-progress completed"`
}

func (h *handlerImpl) HandleGetTasksByStatus(c *gin.Context) {
	var uri taskStatusURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("status", c.Param("status")).
			Msg("invalid status")
		abort(c, newBadRequestError(fmt.Sprintf(
			"invalid status, allowed values: %s",
			strings.Join(models.Statuses, ", "),
		)))
		return
	}

	tasks, err := h.tasks.GetTasksByStatus(c, uri.Status)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("status", uri.Status).
			Msg("failed to get tasks by status")
		abort(c, h.newInternalError("failed to get tasks by status", err))
		return
	}

	h.logger.Info().
		Str("status", uri.Status).
		Msg("fetched tasks by status")
	c.JSON(http.StatusOK, newGetTaskListResponse(tasks))
}

type updateTaskRequest struct {
	Title       *string               `json:"title"`
	Description models.OptionalString `json:"description"`
	Status      *string               `json:"status"`
	Priority    *string               `json:"priority"`
	DueDate     models.OptionalString `json:"due_date"`
}

// updateTaskForm is the urlencoded variant, which has no null.
type updateTaskForm struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Status      *string `form:"status"`
	Priority    *string `form:"priority"`
	DueDate     *string `form:"due_date"`
}

func optionalFromForm(v *string) models.OptionalString {
	if v == nil {
		return models.OptionalString{}
	}
	return models.SomeString(*v)
}

func bindTaskPatch(c *gin.Context) (models.TaskPatch, error) {
	if c.ContentType() == binding.MIMEPOSTForm {
		var form updateTaskForm
		err := c.ShouldBindWith(&form, binding.Form)
		if err != nil {
			return models.TaskPatch{}, err
		}
		return models.TaskPatch{
			Title:       form.Title,
			Description: optionalFromForm(form.Description),
			Status:      form.Status,
			Priority:    form.Priority,
			DueDate:     optionalFromForm(form.DueDate),
		}, nil
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return models.TaskPatch{}, err
	}
	return models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}, nil
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		h.logger.Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		return
	}

	_, err := h.tasks.GetTaskByID(c, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to get task")
		abort(c, h.newInternalError("failed to get task", err))
		return
	}

	patch, err := bindTaskPatch(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	if patch.IsEmpty() {
		h.logger.Warn().
			Int64("task_id", taskID).
			Msg("no fields to update")
	}

	task, err := h.tasks.UpdateTask(c, taskID, patch)
	if err != nil {
		// The task may have been deleted since the lookup.
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		abort(c, h.newInternalError("failed to update task", err))
		return
	}

	h.logger.Info().
		Int64("task_id", taskID).
		Msg("updated task")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "task updated successfully",
		"data":    newGetTaskResponse(task),
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		h.logger.Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		return
	}

	_, err := h.tasks.GetTaskByID(c, taskID)
	if err == nil {
		err = h.tasks.DeleteTask(c, taskID)
	}
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		abort(c, h.newInternalError("failed to delete task", err))
		return
	}

	h.logger.Info().
		Int64("task_id", taskID).
		Msg("deleted task")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "task deleted successfully",
	})
}
