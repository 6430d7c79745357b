// Package stack implements the recent-action buffer: a transient LIFO of
// opaque action records. It is advisory undo scaffolding, never a source
// of truth, and is cleared on process restart.
package stack

import (
	"sync"
	"time"
)

// Action kinds pushed by the companion features.
const (
	KindMood        = "mood"
	KindAffirmation = "affirmation"
)

// Action is one recorded recent action.
type Action struct {
	Kind string         `json:"kind"`
	At   time.Time      `json:"at"`
	Data map[string]any `json:"data,omitempty"`
}

// Stack is an unbounded LIFO of actions. Pop and Peek on an empty stack
// return ok == false rather than an error.
type Stack struct {
	mu    sync.Mutex
	items []Action
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends an action.
func (s *Stack) Push(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, a)
}

// Pop removes and returns the most recent action.
func (s *Stack) Pop() (Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return Action{}, false
	}
	a := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return a, true
}

// Peek returns the most recent action without removing it.
func (s *Stack) Peek() (Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return Action{}, false
	}
	return s.items[len(s.items)-1], true
}

// All returns the stack contents in LIFO order (most recent first).
func (s *Stack) All() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Action, len(s.items))
	for i, a := range s.items {
		out[len(s.items)-1-i] = a
	}
	return out
}

// Len returns the number of buffered actions.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
