package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// maxDepth is a sanity bound on brace nesting. No real script gets
// anywhere near it; exceeding it (or going negative) means the input
// is malformed or the scan went wrong, and the run aborts.
const maxDepth = 50

// reTerminator matches a ; directly after a closing brace, with
// optional leading whitespace.
var reTerminator = regexp.MustCompile(`^\s*;`)

// trackBraces walks the braces in a rewritten span left to right,
// maintaining the nesting depth and cutting the running buffer when a
// class body closes at depth 0. Every closing brace also gets a ;
// inserted after it if one is not already there; doxygen cuts
// documentation short on classes and enums without it.
func (f *Filter) trackBraces(part string) (string, error) {
	output := ""
	for {
		open := strings.Index(part, "{")
		closing := strings.Index(part, "}")
		switch {
		case open >= 0 && (closing < 0 || open < closing):
			f.depth++
			output += part[:open+1]
			part = part[open+1:]
		case closing >= 0:
			output = f.closeBlock(output, part[:closing])
			part = f.checkClassEnd(part[closing+1:])
		default:
			return output + part, nil
		}
		if f.depth < 0 || f.depth > maxDepth {
			return "", fmt.Errorf("unbalanced braces: nesting depth %d outside [0, %d]", f.depth, maxDepth)
		}
	}
}

// closeBlock handles one closing brace. When it closes a class body at
// depth 0 the running buffer plus the text before the brace is sealed
// as the class's segment, and the brace itself starts the new running
// buffer, so anything the assembler injects between segment and
// buffer lands right before the brace, inside the class.
func (f *Filter) closeBlock(output, beforeBrace string) string {
	f.depth--
	output += beforeBrace
	if f.depth == 0 && f.awaitingClose {
		f.buf.WriteString(output)
		f.current.Segment = f.buf.String()
		f.buf.Reset()
		return "}"
	}
	return output + "}"
}

// checkClassEnd inserts a missing ; after a closing brace and clears
// the class-tracking state once the class body has closed at depth 0.
// Nested classes are assumed not to occur.
func (f *Filter) checkClassEnd(afterBrace string) string {
	if !reTerminator.MatchString(afterBrace) {
		afterBrace = ";" + afterBrace
	}
	if f.awaitingClose && f.depth == 0 {
		f.awaitingClose = false
		f.current = nil
	}
	return afterBrace
}
