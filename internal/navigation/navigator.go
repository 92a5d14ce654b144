// Package navigation models the screen stack. Screens receive simple param
// flags at mount time (for example "openAddModal") and never depend on
// navigation internals beyond that.
package navigation

import "sync"

// Params is the bag of values passed to a screen on navigation.
type Params map[string]any

// Bool reads a flag param, treating a missing or mistyped value as false.
func (p Params) Bool(key string) bool {
	v, ok := p[key].(bool)
	return ok && v
}

// String reads a string param, empty when missing.
func (p Params) String(key string) string {
	v, _ := p[key].(string)
	return v
}

// Navigator moves between screens.
type Navigator interface {
	Navigate(screen string, params Params)
	GoBack()
}

// Frame is one entry on the stack.
type Frame struct {
	Screen string
	Params Params
}

// Stack is a plain push/pop Navigator rooted at a home screen.
type Stack struct {
	mu     sync.Mutex
	frames []Frame
}

func NewStack(root string) *Stack {
	return &Stack{frames: []Frame{{Screen: root}}}
}

func (s *Stack) Navigate(screen string, params Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, Frame{Screen: screen, Params: params})
}

// GoBack pops the current screen. Popping the root is a no-op.
func (s *Stack) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Current returns the top frame.
func (s *Stack) Current() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames[len(s.frames)-1]
}

// Depth reports the stack size.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}
