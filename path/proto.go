package path

import (
	"github.com/digitty-forks/data-validation/pathpb"
)

// FromProto builds a path from the ordered steps of a message form,
// without interpreting them.  A nil message yields the empty path.
func FromProto(m *pathpb.Path) Path {
	return FromSteps(m.GetStep())
}

// AsProto renders p in message form.  The result owns its step slice,
// so mutating it does not affect p.
func (p Path) AsProto() *pathpb.Path {
	return &pathpb.Path{Step: p.Steps()}
}
