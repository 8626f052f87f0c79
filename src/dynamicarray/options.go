package dynamicarray

// Option configures a DynamicArray built by New.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-reserves n slots. Negative values are treated as 0.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}
