package domain

import "errors"

var (
	ErrTitleTooLong       = errors.New("title too long")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrTodoListFull       = errors.New("todo list full")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrInvalidPriority    = errors.New("invalid priority")
)
