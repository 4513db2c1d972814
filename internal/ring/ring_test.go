package ring

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[int](4)
	for i := 1; i <= 3; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("enqueue %d rejected below capacity", i)
		}
	}
	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("dequeue = %d, %v; want %d, true", got, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("dequeue on empty queue succeeded")
	}
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q := NewQueue[string](2)
	q.Enqueue("a")
	q.Enqueue("b")
	if q.Enqueue("c") {
		t.Fatalf("enqueue succeeded on full queue")
	}
	if q.Len() != 2 {
		t.Fatalf("len = %d after rejected enqueue, want 2", q.Len())
	}
	head, _ := q.Peek()
	if head != "a" {
		t.Fatalf("rejected enqueue disturbed head, got %q", head)
	}
}

func TestQueueWrapsAround(t *testing.T) {
	q := NewQueue[int](3)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	q.Enqueue(3)
	q.Enqueue(4)
	want := []int{2, 3, 4}
	for _, w := range want {
		got, ok := q.Dequeue()
		if !ok || got != w {
			t.Fatalf("wrap-around dequeue = %d, %v; want %d, true", got, ok, w)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("queue not empty after draining")
	}
}

func TestStackLIFOOrder(t *testing.T) {
	s := NewStack[int](3)
	for i := 1; i <= 3; i++ {
		if !s.Push(i) {
			t.Fatalf("push %d rejected below capacity", i)
		}
	}
	if s.Push(4) {
		t.Fatalf("push succeeded on full stack")
	}
	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("pop = %d, %v; want %d, true", got, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("pop on empty stack succeeded")
	}
}

func TestStackPeek(t *testing.T) {
	s := NewStack[string](2)
	if _, ok := s.Peek(); ok {
		t.Fatalf("peek on empty stack succeeded")
	}
	s.Push("x")
	s.Push("y")
	top, ok := s.Peek()
	if !ok || top != "y" {
		t.Fatalf("peek = %q, %v; want %q, true", top, ok, "y")
	}
	if s.Len() != 2 {
		t.Fatalf("peek consumed an element, len = %d", s.Len())
	}
}

func TestZeroCapacityContainers(t *testing.T) {
	q := NewQueue[int](0)
	if q.Enqueue(1) {
		t.Fatalf("zero-capacity queue accepted an element")
	}
	s := NewStack[int](0)
	if s.Push(1) {
		t.Fatalf("zero-capacity stack accepted an element")
	}
}
