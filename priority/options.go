package priority

// options defines the configuration shared by Queue and SyncQueue.
type options struct {
	capacity int      // initial capacity of the sequence and index
	observer Observer // receives SyncQueue events
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity preallocates room for n entries. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// WithObserver sets the observer notified of SyncQueue operations. It has
// no effect on a Queue created with New. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
		observer: nopObserver{},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
