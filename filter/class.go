package filter

// ExternalFunc is a member function defined outside its class body
// with Class::name scope-resolution syntax. Params holds the captured
// parameter list text, including the closing parenthesis; it may span
// several source lines and starts out empty until capture completes.
type ExternalFunc struct {
	Name   string
	Params string
}

// Class records everything the assembler needs to know about one
// discovered class: which member functions were declared inside the
// body, which were defined later outside it, and the rewritten text of
// the body itself.
type Class struct {
	Name string

	// Declared lists member function names found inside the body, in
	// source order.
	Declared []string

	// External lists member functions defined outside the body, in
	// discovery order. The assembler synthesizes an in-class stub
	// declaration for each.
	External []ExternalFunc

	// Segment is the rewritten output from the previous class closure
	// (or file start) up to, but not including, this class's closing
	// brace. Sealed exactly once, when the brace is seen at depth 0.
	Segment string
}

// declaredInside reports whether name was already declared in the
// class body; such functions need no synthesized stub.
func (c *Class) declaredInside(name string) bool {
	for _, fn := range c.Declared {
		if fn == name {
			return true
		}
	}
	return false
}
