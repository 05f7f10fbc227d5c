package repository

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
	// ErrDanglingReference is returned when a foreign key points at a missing row.
	ErrDanglingReference = errors.New("referenced record does not exist")
)
