package store

type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity sets the fixed bucket count. Values below 1 keep the default.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.capacity = n
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
