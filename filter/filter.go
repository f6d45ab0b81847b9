// Package filter rewrites Squirrel source into a token stream that
// doxygen's C++ parser understands. The scan is a single forward pass:
// the scanner package splits each line into code, comment and string
// spans, code spans run through the rewrite rules and the brace
// tracker, and the assembler emits the buffered output once the whole
// file has been read. Buffering the output per class is what lets
// member functions defined outside their class (Class::name syntax)
// appear as declarations inside it, even though they are only
// discovered later in the pass.
package filter

import (
	"io"
	"strings"

	"github.com/nutdoc/nutfilter/scanner"
	log "github.com/sirupsen/logrus"
)

// Filter holds the state of one filtering run over one file. It is
// not reusable across files; create a new one per invocation.
//
// Nested classes are not supported: at most one class is "current" at
// a time, and the segment cut assumes every class closes at brace
// depth 0.
type Filter struct {
	cfg  Config
	out  *Writer
	scan *scanner.SpanScanner

	// depth is the brace nesting level across the whole file.
	depth int

	// awaitingOpen is set between `class Name` and its opening brace;
	// awaitingClose between that brace and the matching close at
	// depth 0. They are never set at the same time.
	awaitingOpen  bool
	awaitingClose bool

	// current is the class whose body (or out-of-body function) is
	// being scanned. currentName is the last class name seen, used by
	// the constructor rewrite.
	current     *Class
	currentName string

	classes []*Class
	byName  map[string]*Class

	// Parameter capture for an out-of-body function whose parameter
	// list spans multiple spans or lines.
	capturing    bool
	captureBuf   string
	captureClass *Class

	// buf accumulates rewritten output since the previous class
	// closure (or file start); sealed into a Class segment on close.
	buf strings.Builder
}

// New creates a Filter writing filtered output to w.
func New(cfg Config, w io.Writer) *Filter {
	return &Filter{
		cfg:    cfg.normalized(),
		out:    NewWriter(w),
		scan:   scanner.New(),
		byName: make(map[string]*Class),
	}
}

// Classes returns the classes discovered so far, in source order.
func (f *Filter) Classes() []*Class {
	return f.classes
}

// Run filters src and writes the result. Line endings are preserved.
// The only fatal error is a brace depth outside [0, maxDepth], which
// signals malformed input or a scanning bug; everything else degrades
// to a warning because doxygen tolerates imperfect input.
func (f *Filter) Run(src string) error {
	for i, line := range splitLines(src) {
		if err := f.handleLine(line, i+1); err != nil {
			return err
		}
	}
	f.assemble()
	return nil
}

// handleLine splits one line into spans and routes them: code spans
// through the rewrite engine, comment and string spans straight to the
// running buffer.
func (f *Filter) handleLine(line string, lineNo int) error {
	spans, unterminated := f.scan.SplitLine(line)
	if unterminated {
		log.Warnf("line %d: string literal is missing its closing quote", lineNo)
	}
	for _, sp := range spans {
		if sp.Kind != scanner.Code {
			f.buf.WriteString(sp.Text)
			continue
		}
		if err := f.rewriteSpan(sp.Text); err != nil {
			return err
		}
	}
	return nil
}

// assemble renders the final output: each class's sealed segment
// followed by synthesized declarations for its out-of-body functions,
// then the trailing buffer. The trailing buffer begins with the last
// class's own closing brace (see closeBlock), which is what places the
// stubs inside the class.
func (f *Filter) assemble() {
	fnKeyword := ""
	if f.cfg.KeepFunction {
		fnKeyword = "function "
	}
	for _, cls := range f.classes {
		f.out.WriteString(cls.Segment)
		if len(cls.External) == 0 {
			continue
		}
		log.Infof("class %s: member functions defined outside the body", cls.Name)
		for _, ext := range cls.External {
			log.Infof("function %s", ext.Name)
			f.out.WriteString(fnKeyword + ext.Name + ext.Params + ";\n")
		}
	}
	f.out.WriteString(f.buf.String())
}

// splitLines splits src after each newline, keeping the terminators
// (and any carriage returns) attached to their lines.
func splitLines(src string) []string {
	lines := strings.SplitAfter(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
