package core

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
)
