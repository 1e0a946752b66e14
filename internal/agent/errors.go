package agent

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid agent category")
	ErrNameRequired    = errors.New("agent name is required")
)
