package ds

// Stack is a plain LIFO over a slice. Pop and Peek on an empty stack
// panic the way an out-of-range slice index does.
type Stack[T any] struct {
	slice []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{slice: make([]T, 0)}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

func (r *Stack[T]) Pop() T {
	last := r.Peek()
	r.slice = r.slice[:len(r.slice)-1]
	return last
}

func (r *Stack[T]) Peek() T {
	return r.slice[len(r.slice)-1]
}
