package path

// A Path is an immutable ordered sequence of steps.  The zero value is
// the empty path.  A Path owns its steps: constructors and derivations
// copy, so no two Path values share a mutable backing array.
type Path struct {
	steps []string
}

// New returns a path made of the given steps, in order.
func New(steps ...string) Path {
	return FromSteps(steps)
}

// FromSteps returns a path made of the given steps, copying the slice.
func FromSteps(steps []string) Path {
	if len(steps) == 0 {
		return Path{}
	}
	return Path{steps: append([]string(nil), steps...)}
}

// Len returns the number of steps.
func (p Path) Len() int {
	return len(p.steps)
}

// Empty reports whether p has no steps.
func (p Path) Empty() bool {
	return len(p.steps) == 0
}

// Steps returns a copy of the steps of p.
func (p Path) Steps() []string {
	if len(p.steps) == 0 {
		return nil
	}
	return append([]string(nil), p.steps...)
}

// Last returns the final step of p.  It panics if p is empty.
func (p Path) Last() string {
	if len(p.steps) == 0 {
		panic("path: Last of empty path")
	}
	return p.steps[len(p.steps)-1]
}

// Parent returns p without its final step.  It panics if p is empty.
func (p Path) Parent() Path {
	if len(p.steps) == 0 {
		panic("path: Parent of empty path")
	}
	return FromSteps(p.steps[:len(p.steps)-1])
}

// Child returns p with step appended.
func (p Path) Child(step string) Path {
	res := make([]string, 0, len(p.steps)+1)
	res = append(res, p.steps...)
	res = append(res, step)
	return Path{steps: res}
}

// PopHead returns the first step of p and the path made of the
// remaining steps.  It panics if p is empty.
func (p Path) PopHead() (string, Path) {
	if len(p.steps) == 0 {
		panic("path: PopHead of empty path")
	}
	return p.steps[0], FromSteps(p.steps[1:])
}
