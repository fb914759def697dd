package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// MaxTodoBodyBytes caps the size of create and update request bodies.
const MaxTodoBodyBytes = 64 << 10

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	owner := middleware.GetOwner(c)

	tasks, err := h.todoService.ListTodos(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailListTodos, "failed to list todos")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(tasks))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	task, err := h.todoService.GetTodo(c.Request.Context(), middleware.GetOwner(c), id)
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailGetTodo, "failed to get todo", zap.Uint64("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTodoInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	task, err := h.todoService.CreateTodo(c.Request.Context(), middleware.GetOwner(c), input)
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailCreateTodo, "failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(task))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	patch, err := validation.BuildUpdateTodoPatch(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	task, err := h.todoService.UpdateTodo(c.Request.Context(), middleware.GetOwner(c), id, patch)
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailUpdateTodo, "failed to update todo", zap.Uint64("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

func (h *TodoHandler) ToggleTodoCompletion(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	task, err := h.todoService.ToggleTodoCompletion(c.Request.Context(), middleware.GetOwner(c), id)
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailToggleTodo, "failed to toggle todo", zap.Uint64("todo_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(task))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), middleware.GetOwner(c), id); err != nil {
		h.respondError(c, err, apierrors.MsgFailDeleteTodo, "failed to delete todo", zap.Uint64("todo_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) GetStatistics(c *gin.Context) {
	stats, err := h.todoService.GetStatistics(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		h.respondError(c, err, apierrors.MsgFailGetStatistics, "failed to get statistics")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatisticsItem(stats))
}

// respondError maps domain errors to their client status. Anything else is
// logged and reported with fallbackKey.
func (h *TodoHandler) respondError(c *gin.Context, err error, fallbackKey, logMessage string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	status, msgKey := domainErrorStatus(err)
	if status == 0 {
		fields = append(fields, zap.String("owner", middleware.GetOwner(c)), zap.Error(err))
		zap.L().Error(logMessage, fields...)
		status, msgKey = http.StatusInternalServerError, fallbackKey
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func domainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		return http.StatusNotFound, apierrors.MsgTodoNotFound
	case errors.Is(err, domain.ErrTitleTooLong):
		return http.StatusBadRequest, apierrors.MsgTitleTooLong
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return http.StatusBadRequest, apierrors.MsgDescriptionTooLong
	case errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusBadRequest, apierrors.MsgInvalidPriority
	case errors.Is(err, domain.ErrTodoListFull):
		return http.StatusConflict, apierrors.MsgTodoListFull
	default:
		return 0, ""
	}
}

func parseTodoID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into req and also returns the raw top-level
// fields, so validation can tell an omitted field from an explicit null.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxTodoBodyBytes)

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, middleware.GetLang(c)),
		)
		return nil, false
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, middleware.GetLang(c)),
		)
		return nil, false
	}
	return raw, true
}
