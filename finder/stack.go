package finder

type stack[T comparable] struct {
	v []T
}

func (s *stack[T]) push(t T) {
	s.v = append(s.v, t)
}

func (s *stack[T]) pop() (T, bool) {
	var empty T

	n := len(s.v)
	if n == 0 {
		return empty, false
	}

	t := s.v[n-1]
	s.v = s.v[:n-1]
	return t, true
}

// containsFunc reports whether any element satisfies f.
func (s *stack[T]) containsFunc(f func(T) bool) bool {
	for _, t := range s.v {
		if f(t) {
			return true
		}
	}
	return false
}

// reset empties the stack keeping the allocated memory.
func (s *stack[T]) reset() {
	s.v = s.v[:0]
}

// queue is a simple FIFO container.
type queue[T comparable] struct {
	v []T
}

func (q *queue[T]) enqueue(t T) {
	q.v = append(q.v, t)
}

func (q *queue[T]) peek() (T, bool) {
	if len(q.v) > 0 {
		return q.v[0], true
	}

	var empty T
	return empty, false
}

func (q *queue[T]) dequeue() (T, bool) {
	t, ok := q.peek()
	if ok {
		q.v = q.v[1:]
	}
	return t, ok
}

func (q *queue[T]) reset() {
	q.v = q.v[:0]
}
