package model

import "errors"

var (
	ErrIndexOutOfRange = errors.New("task index out of range")
	ErrTaskNotFound    = errors.New("task not found in list")
)
