package filter

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// The rewrite rules. Each applies to at most one occurrence per span:
// a second `<-` or `extends` on the same span is left alone. That is a
// deliberate, known limitation carried over from the original filter,
// not something to fix quietly. Dense lines are rare in practice and
// doxygen shrugs off the leftovers.
var (
	reExtends       = regexp.MustCompile(`extends`)
	reClassName     = regexp.MustCompile(`\s*class\s+([a-zA-Z_]+[a-zA-Z_0-9.]*)`)
	reFuncName      = regexp.MustCompile(`\s*(function)\s+([a-zA-Z_]+[a-zA-Z_0-9]*)`)
	reClassFuncName = regexp.MustCompile(`\s*(function)\s+([a-zA-Z_]+[a-zA-Z_0-9.]*)::([a-zA-Z_]+[a-zA-Z_0-9]*)`)
	rePrivateVar    = regexp.MustCompile(`\s*([a-zA-Z_0-9]*)\s+=`)
	rePrivateEnum   = regexp.MustCompile(`\s*(enum)\s+(_[a-zA-Z_0-9]*)`)
	reConstructor   = regexp.MustCompile(`constructor`)
	reFunction      = regexp.MustCompile(`function`)
	reRequire       = regexp.MustCompile(`require\s*\(`)
	reImport        = regexp.MustCompile(`import\s*\(`)
)

// rewriteSpan applies the rewrite rules to one plain-code span and
// appends the result to the running buffer. Rule order matters in two
// places: the class rule must run before the brace rule sees the
// class's opening brace, and function-name tracking must run before
// the function keyword is optionally stripped.
func (f *Filter) rewriteSpan(part string) error {
	out := part
	startPos := 0

	// <- assignment operator becomes =.
	if i := strings.Index(out, "<-"); i >= 0 {
		out = out[:i] + "=" + out[i+2:]
	}

	// extends becomes the inheritance colon.
	if loc := reExtends.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + ":" + out[loc[1]:]
	}

	// Register a class declaration and start looking for its opening
	// brace. Squirrel class names may contain dots.
	if m := reClassName.FindStringSubmatchIndex(out); m != nil {
		f.awaitingOpen = true
		startPos = m[1]
		name := out[m[2]:m[3]]
		f.currentName = name
		cls := &Class{Name: name}
		f.current = cls
		f.classes = append(f.classes, cls)
		f.byName[name] = cls
		log.Infof("class %s", name)
	}

	// Insert public: after the opening brace so doxygen documents the
	// members at all (C++ classes default to private).
	if f.awaitingOpen {
		first, last := out[:startPos], out[startPos:]
		if i := strings.Index(last, "{"); i >= 0 {
			f.awaitingOpen = false
			f.awaitingClose = true
			out = first + last[:i+1] + "public:" + last[i+1:]
		}
	}

	if f.cfg.TrackMemberFunctions {
		f.captureParams(out)
		if f.awaitingClose {
			// Inside a class body only the function names need
			// registering, so out-of-body definitions can be matched
			// against them later.
			if m := reFuncName.FindStringSubmatchIndex(out); m != nil {
				name := out[m[4]:m[5]]
				f.current.Declared = append(f.current.Declared, name)
				if f.cfg.HidePrivate && strings.HasPrefix(name, "_") {
					out = out[:m[2]] + " /** @private */ " + out[m[2]:]
				}
			}
		} else if f.depth == 0 {
			// Out-of-body definitions can only start at the outermost
			// level. Unknown class names are skipped.
			if m := reClassFuncName.FindStringSubmatchIndex(out); m != nil {
				cname := out[m[4]:m[5]]
				fname := out[m[6]:m[7]]
				if cls := f.byName[cname]; cls != nil {
					f.current = cls
					if !cls.declaredInside(fname) &&
						!(f.cfg.HidePrivate && strings.HasPrefix(fname, "_")) {
						cls.External = append(cls.External, ExternalFunc{Name: fname})
						f.capturing = true
						f.captureClass = cls
						f.captureParams(out[m[7]:])
					}
				}
			}
		}
	}

	// Mark private variables and enums. Only the outermost level and
	// the first level inside a class body are considered.
	// Known limitation: for declarations whose value continues on
	// later lines the marker placement does not help doxygen much.
	if f.cfg.HidePrivate && (f.depth == 0 || (f.awaitingClose && f.depth == 1)) {
		if m := rePrivateVar.FindStringSubmatchIndex(out); m != nil {
			if strings.HasPrefix(out[m[2]:m[3]], "_") {
				out = out[:m[2]] + f.privacyMarker() + out[m[2]:]
			}
		}
		if m := rePrivateEnum.FindStringSubmatchIndex(out); m != nil {
			if strings.HasPrefix(out[m[4]:m[5]], "_") {
				out = out[:m[2]] + f.privacyMarker() + out[m[2]:]
			}
		}
	}

	// constructor gets the class name, either appended or substituted,
	// so doxygen associates it with the class.
	if loc := reConstructor.FindStringIndex(out); loc != nil {
		if f.cfg.KeepConstructor {
			out = out[:loc[1]] + " " + f.currentName + out[loc[1]:]
		} else {
			out = out[:loc[0]] + f.currentName + out[loc[1]:]
		}
	}

	if !f.cfg.KeepFunction {
		if loc := reFunction.FindStringIndex(out); loc != nil {
			out = out[:loc[0]] + out[loc[1]:]
		}
	}

	// require( and import( become #include. The stray closing
	// parenthesis is left in place; doxygen does not care.
	if loc := reRequire.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + "#include " + out[loc[1]:]
	}
	if loc := reImport.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + "#include " + out[loc[1]:]
	}

	if f.cfg.CheckClassEnd {
		var err error
		out, err = f.trackBraces(out)
		if err != nil {
			return err
		}
	}

	f.buf.WriteString(out)
	return nil
}

// privacyMarker picks the doc marker for a private symbol: @internal
// at file scope, @private inside a class body.
func (f *Filter) privacyMarker() string {
	if f.depth == 0 {
		return " /** @internal */ "
	}
	return " /** @private */ "
}

// captureParams continues collecting an out-of-body function's
// parameter list until the closing parenthesis shows up, then records
// the captured text on the most recently added external function.
func (f *Filter) captureParams(part string) {
	if !f.capturing {
		return
	}
	i := strings.Index(part, ")")
	if i < 0 {
		f.captureBuf += part
		return
	}
	f.captureBuf += part[:i+1]
	ext := &f.captureClass.External[len(f.captureClass.External)-1]
	ext.Params = f.captureBuf
	f.capturing = false
	f.captureBuf = ""
	f.captureClass = nil
}
