package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes everything to each of its writers, e.g. the log file and stdout.
// A failing writer does not stop the others; all failures are returned together.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return len(p), err
}
