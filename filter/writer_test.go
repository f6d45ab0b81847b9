package filter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_DropsInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString("good ")
	w.WriteString("\xff\xfe")
	w.WriteString("tail")
	assert.Equal(t, "good tail", buf.String())
}

func TestWriter_PassesValidUTF8(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString("degrees: 90°\n")
	assert.Equal(t, "degrees: 90°\n", buf.String())
}
