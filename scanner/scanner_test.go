package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine_PlainCode(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine("local x = 1;\n")
	require.Len(t, spans, 1)
	assert.False(t, unterminated)
	assert.Equal(t, Span{Text: "local x = 1;\n", Kind: Code}, spans[0])
}

func TestSplitLine_EmptyLine(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine("")
	assert.Empty(t, spans)
	assert.False(t, unterminated)
}

func TestSplitLine_LineComment(t *testing.T) {
	s := New()
	spans, _ := s.SplitLine("x = 1; // set x\n")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Text: "x = 1; ", Kind: Code}, spans[0])
	assert.Equal(t, Span{Text: "// set x\n", Kind: Comment}, spans[1])
}

func TestSplitLine_BlockCommentSameLine(t *testing.T) {
	// The /* opener travels with the preceding code span; only the
	// comment body and terminator are classified as Comment.
	s := New()
	spans, _ := s.SplitLine("a /* note */ b\n")
	require.Len(t, spans, 3)
	assert.Equal(t, Span{Text: "a /*", Kind: Code}, spans[0])
	assert.Equal(t, Span{Text: " note */", Kind: Comment}, spans[1])
	assert.Equal(t, Span{Text: " b\n", Kind: Code}, spans[2])
	assert.False(t, s.InBlockComment())
}

func TestSplitLine_BlockCommentAcrossLines(t *testing.T) {
	s := New()

	spans, _ := s.SplitLine("x /* start\n")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Text: "x /*", Kind: Code}, spans[0])
	assert.Equal(t, Span{Text: " start\n", Kind: Comment}, spans[1])
	assert.True(t, s.InBlockComment())

	spans, _ = s.SplitLine("middle\n")
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Text: "middle\n", Kind: Comment}, spans[0])
	assert.True(t, s.InBlockComment())

	spans, _ = s.SplitLine("end */ y\n")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Text: "end */", Kind: Comment}, spans[0])
	assert.Equal(t, Span{Text: " y\n", Kind: Code}, spans[1])
	assert.False(t, s.InBlockComment())
}

func TestSplitLine_String(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine(`a = "lit" + b`)
	require.Len(t, spans, 3)
	assert.False(t, unterminated)
	assert.Equal(t, Span{Text: `a = `, Kind: Code}, spans[0])
	assert.Equal(t, Span{Text: `"lit"`, Kind: Str}, spans[1])
	assert.Equal(t, Span{Text: ` + b`, Kind: Code}, spans[2])
}

func TestSplitLine_UnterminatedString(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine(`a = "oops`)
	require.Len(t, spans, 2)
	assert.True(t, unterminated)
	assert.Equal(t, Span{Text: `"oops`, Kind: Str}, spans[1])
}

func TestSplitLine_MarkersInsideString(t *testing.T) {
	// Comment markers inside a string literal must not open a comment.
	s := New()
	spans, _ := s.SplitLine(`url = "http://x" // real comment`)
	require.Len(t, spans, 4)
	assert.Equal(t, Span{Text: `"http://x"`, Kind: Str}, spans[1])
	assert.Equal(t, Span{Text: "// real comment", Kind: Comment}, spans[3])
	assert.False(t, s.InBlockComment())
}

func TestSplitLine_QuoteInsideComment(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine(`// say "hi"` + "\n")
	require.Len(t, spans, 1)
	assert.False(t, unterminated)
	assert.Equal(t, Comment, spans[0].Kind)
}

func TestSplitLine_EarliestMarkerWins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
	}{
		{"line comment before string", `// x "y"`, []Kind{Comment}},
		{"string before line comment", `"x" // y`, []Kind{Str, Code, Comment}},
		{"block before line", `/* x // y */ z`, []Kind{Code, Comment, Code}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			spans, _ := s.SplitLine(tt.input)
			var kinds []Kind
			for _, sp := range spans {
				kinds = append(kinds, sp.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestSplitLine_MultipleStrings(t *testing.T) {
	s := New()
	spans, unterminated := s.SplitLine(`a("x", "y")`)
	require.Len(t, spans, 5)
	assert.False(t, unterminated)
	assert.Equal(t, Span{Text: `"x"`, Kind: Str}, spans[1])
	assert.Equal(t, Span{Text: `"y"`, Kind: Str}, spans[3])
}
