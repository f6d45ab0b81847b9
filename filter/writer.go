package filter

import (
	"io"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// Writer sends filtered fragments downstream. doxygen reads the
// filter's stdout as UTF-8, so fragments that are not valid UTF-8 are
// dropped with a warning instead of corrupting the stream. Write
// failures are likewise warnings: losing a fragment degrades the
// generated documentation, it does not invalidate the run.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w, usually os.Stdout.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString writes one fragment, skipping it when it is not valid
// UTF-8.
func (w *Writer) WriteString(s string) {
	if !utf8.ValidString(s) {
		log.Warn("dropping output fragment that is not valid UTF-8")
		return
	}
	if _, err := io.WriteString(w.w, s); err != nil {
		log.Warnf("writing output fragment: %v", err)
	}
}
