package memory

import "errors"

var (
	// ErrStoreClosed is returned when recording into a finished run.
	ErrStoreClosed = errors.New("memory store is closed")
	// ErrMissingOutput is returned when a task's output is requested before it ran.
	ErrMissingOutput = errors.New("task output not recorded")
	// ErrDuplicateOutput is returned when a task is recorded twice in one run.
	ErrDuplicateOutput = errors.New("task output already recorded")
)
