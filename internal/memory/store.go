package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"Crewflow/pkg/types"
)

// Store is the append-only log of task outputs for one workflow run.
// Downstream tasks read their context from it.
type Store struct {
	mu      sync.RWMutex
	outputs []types.TaskOutput
	byTask  map[types.TaskRef]int
	closed  bool
}

func NewStore() *Store {
	return &Store{byTask: make(map[types.TaskRef]int)}
}

// Add records the output of a completed task. The timestamp is filled in
// when zero.
func (s *Store) Add(out types.TaskOutput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, dup := s.byTask[out.Task]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, out.Name)
	}
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now()
	}
	s.byTask[out.Task] = len(s.outputs)
	s.outputs = append(s.outputs, out)
	return nil
}

// Get returns the recorded output of a task.
func (s *Store) Get(ref types.TaskRef) (types.TaskOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byTask[ref]
	if !ok {
		return types.TaskOutput{}, fmt.Errorf("%w: task %d", ErrMissingOutput, ref)
	}
	return s.outputs[i], nil
}

// Context renders the outputs of deps, in the order given, as the context
// block for a downstream task. Every dependency must already be recorded.
func (s *Store) Context(deps []types.TaskRef) (string, error) {
	if len(deps) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for i, ref := range deps {
		out, err := s.Get(ref)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "## Output of %s (%s)\n\n%s", out.Name, out.Agent, strings.TrimSpace(out.Content))
	}
	return sb.String(), nil
}

// History returns a copy of every recorded output in completion order.
func (s *Store) History() []types.TaskOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]types.TaskOutput, len(s.outputs))
	copy(history, s.outputs)
	return history
}

// Last returns the most recent output, if any.
func (s *Store) Last() (types.TaskOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.outputs) == 0 {
		return types.TaskOutput{}, false
	}
	return s.outputs[len(s.outputs)-1], true
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outputs)
}

// Close freezes the store; later Add calls fail.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
