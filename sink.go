package universe

// Sink receives rendered images, for display or persistence.
// Put may block; errors are returned to the caller of RenderBatch unchanged.
type Sink interface {
	Put(r *Rendered) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r *Rendered) error

// Put calls f(r).
func (f SinkFunc) Put(r *Rendered) error {
	return f(r)
}
