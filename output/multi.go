package output

import "github.com/flavioheleno/universe"

// Multi hands each image to every sink in order, stopping at the first error.
type Multi []universe.Sink

// Put implements universe.Sink.
func (m Multi) Put(r *universe.Rendered) error {
	for _, s := range m {
		if err := s.Put(r); err != nil {
			return err
		}
	}
	return nil
}
