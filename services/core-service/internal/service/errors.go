package service

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrMissingField = errors.New("missing required field")
)
