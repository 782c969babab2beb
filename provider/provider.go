// Package provider hands out values on demand.
package provider

type Provider[T any] interface {
	Get() T
}

var (
	_ Provider[int] = (*Simple[int])(nil)
	_ Provider[int] = Func[int](nil)
)

// Simple provides the value it was created with
type Simple[T any] struct {
	value T
}

func New[T any](value T) *Simple[T] {
	return &Simple[T]{value: value}
}

func (p *Simple[T]) Get() T {
	return p.value
}

// Func adapts an ordinary function to a Provider
type Func[T any] func() T

func (f Func[T]) Get() T {
	return f()
}
