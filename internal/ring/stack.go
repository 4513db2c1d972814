package ring

// Stack is a fixed-capacity LIFO backed by a contiguous slice.
type Stack[T any] struct {
	items []T
	top   int
}

// NewStack returns a stack that holds at most capacity elements.
// A non-positive capacity yields a stack that rejects every Push.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, capacity)}
}

// Push places value on top of the stack. It reports false, leaving the
// stack untouched, when the stack is full.
func (s *Stack[T]) Push(value T) bool {
	if s.IsFull() {
		return false
	}
	s.items[s.top] = value
	s.top++
	return true
}

// Pop removes and returns the top element. The second return is false
// when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	s.top--
	value := s.items[s.top]
	s.items[s.top] = zero
	return value, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	return s.items[s.top-1], true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return s.top
}

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.top == 0
}

// IsFull reports whether the stack is at capacity.
func (s *Stack[T]) IsFull() bool {
	return s.top == len(s.items)
}
