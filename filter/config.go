package filter

// Config controls one filtering run. The zero value disables
// everything; use DefaultConfig for the stock doxygen setup.
type Config struct {
	// KeepFunction keeps the function keyword in the output. doxygen
	// reads it as the return type, which some people find readable in
	// the generated docs. When false the keyword is stripped.
	KeepFunction bool

	// KeepConstructor keeps the constructor keyword, appending the
	// class name after it. When false the keyword is replaced by the
	// class name outright.
	KeepConstructor bool

	// CheckClassEnd inserts a missing ; after every closing brace and
	// enables class-body segmentation. Without the ; doxygen can cut
	// documentation short after a class or enum.
	CheckClassEnd bool

	// TrackMemberFunctions records member functions defined outside
	// their class with Class::name syntax and synthesizes in-class
	// declarations for them. Forces CheckClassEnd on.
	TrackMemberFunctions bool

	// HidePrivate marks underscore-prefixed functions, variables and
	// enums with @private (inside classes) or @internal (top level).
	HidePrivate bool
}

// DefaultConfig returns the configuration used by the stock doxygen
// integration: everything on.
func DefaultConfig() Config {
	return Config{
		KeepFunction:         true,
		KeepConstructor:      true,
		CheckClassEnd:        true,
		TrackMemberFunctions: true,
		HidePrivate:          true,
	}
}

// normalized applies cross-option constraints: member-function
// tracking relies on the brace pass to find class boundaries.
func (c Config) normalized() Config {
	if c.TrackMemberFunctions {
		c.CheckClassEnd = true
	}
	return c
}
