package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

func BuildCreateTodoInput(req dto.CreateTodoRequest, raw map[string]json.RawMessage) (domain.CreateTodoInput, error) {
	if req.Title == nil || req.Priority == nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}
	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	priority, err := domain.ParsePriority(*req.Priority)
	if err != nil {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	return domain.CreateTodoInput{
		Title:       *req.Title,
		Description: description,
		Priority:    priority,
	}, nil
}

// BuildUpdateTodoPatch rejects empty patches and explicit nulls: a field is
// either omitted (left unchanged) or set.
func BuildUpdateTodoPatch(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.TodoPatch, error) {
	if !hasTodoUpdateFields(raw) {
		return domain.TodoPatch{}, ErrInvalidTodoPayload
	}

	for _, field := range []string{"title", "description", "priority"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TodoPatch{}, ErrInvalidTodoPayload
		}
	}

	patch := domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.TodoPatch{}, ErrInvalidTodoPayload
		}
		patch.Priority = &priority
	}

	return patch, nil
}

func hasTodoUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
