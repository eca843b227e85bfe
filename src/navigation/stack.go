// Package navigation holds the view stack the root model renders from.
package navigation

import "hexchat/src/types"

// Stack is a simple last-in-first-out stack of view states. The bottom entry
// is the chat screen and is never popped.
type Stack struct {
	views []types.ViewState
}

// NewStack builds a stack with the given root view.
func NewStack(root types.ViewState) *Stack {
	return &Stack{views: []types.ViewState{root}}
}

// Push puts a view on top.
func (s *Stack) Push(v types.ViewState) {
	s.views = append(s.views, v)
}

// Pop removes the top view. The root view stays put.
func (s *Stack) Pop() {
	if len(s.views) > 1 {
		s.views = s.views[:len(s.views)-1]
	}
}

// Top returns the currently visible view.
func (s *Stack) Top() types.ViewState {
	return s.views[len(s.views)-1]
}

// ReplaceTop swaps the top view for the state returned by its Update.
func (s *Stack) ReplaceTop(v types.ViewState) {
	if v == nil {
		s.Pop()
		return
	}
	s.views[len(s.views)-1] = v
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.views)
}
