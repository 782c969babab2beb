package set

type (
	config struct {
		capacity int
	}

	Option func(c *config)
)

// WithCapacity pre-sizes the set for n items
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}
