// Package scanner splits Squirrel source lines into code, comment and
// string-literal spans for the filter. It encapsulates the tracking of
// /* */ block comments across line boundaries, eliminating the need for
// the rewrite engine to know anything about comments or strings.
package scanner

import "strings"

// Kind classifies a span of one source line.
type Kind int

const (
	// Code is plain source text, eligible for rewriting.
	Code Kind = iota
	// Comment is a // or /* */ span, copied through unmodified.
	Comment
	// Str is a double-quoted string literal including both quotes,
	// copied through unmodified.
	Str
)

// Span is a contiguous substring of one line with its classification.
type Span struct {
	Text string
	Kind Kind
}

// SpanScanner partitions source lines into spans. It is stateful: a
// block comment opened on one line persists until its terminator is
// found on a later line. One SpanScanner serves exactly one file.
//
// Escape sequences are not interpreted inside comments or strings,
// and multi-line (@" ") string constants are not supported. Both match
// the downstream consumer's tolerance for imperfect input.
type SpanScanner struct {
	inBlockComment bool
}

// New creates a SpanScanner with no open block comment.
func New() *SpanScanner {
	return &SpanScanner{}
}

// InBlockComment reports whether a /* */ comment is still open.
func (s *SpanScanner) InBlockComment() bool {
	return s.inBlockComment
}

// SplitLine partitions one line (terminator included) into ordered
// spans. The second result is true when a string literal was left
// without its closing quote: the remainder of the line is returned as
// a Str span so it passes through unfiltered, and the caller decides
// how loudly to complain.
//
// A quirk kept from the original filter: the text before a block
// comment is handed back as Code *including* the /* opener, so the
// opener travels through the rewrite engine with the preceding code.
func (s *SpanScanner) SplitLine(line string) ([]Span, bool) {
	var spans []Span
	rest := line
	for {
		if s.inBlockComment {
			end := strings.Index(rest, "*/")
			if end < 0 {
				// Terminator is on a later line.
				return appendSpan(spans, rest, Comment), false
			}
			spans = appendSpan(spans, rest[:end+2], Comment)
			s.inBlockComment = false
			rest = rest[end+2:]
			continue
		}

		switch i, kind := firstMarker(rest); kind {
		case markerNone:
			return appendSpan(spans, rest, Code), false
		case markerBlock:
			spans = appendSpan(spans, rest[:i+2], Code)
			s.inBlockComment = true
			rest = rest[i+2:]
		case markerLine:
			spans = appendSpan(spans, rest[:i], Code)
			return appendSpan(spans, rest[i:], Comment), false
		case markerStr:
			spans = appendSpan(spans, rest[:i], Code)
			rest = rest[i:]
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				return appendSpan(spans, rest, Str), true
			}
			spans = appendSpan(spans, rest[:end+2], Str)
			rest = rest[end+2:]
		}
	}
}

type marker int

const (
	markerNone marker = iota
	markerBlock
	markerLine
	markerStr
)

// firstMarker finds the earliest of "/*", "//" and `"` in s. Distinct
// markers cannot start at the same offset, so the block > line > string
// priority on equal offsets is only a tie-break rule.
func firstMarker(s string) (int, marker) {
	block := strings.Index(s, "/*")
	line := strings.Index(s, "//")
	str := strings.Index(s, `"`)

	best, kind := -1, markerNone
	for _, c := range []struct {
		pos int
		k   marker
	}{{block, markerBlock}, {line, markerLine}, {str, markerStr}} {
		if c.pos < 0 {
			continue
		}
		if best < 0 || c.pos < best {
			best, kind = c.pos, c.k
		}
	}
	return best, kind
}

// appendSpan skips empty spans so callers never see zero-length text.
func appendSpan(spans []Span, text string, kind Kind) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{Text: text, Kind: kind})
}
