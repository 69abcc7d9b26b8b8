package reminder

import "errors"

var (
	ErrEmptyField = errors.New("plant name, task and time are all required")
)
