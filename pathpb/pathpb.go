// Package pathpb carries the wire shaped form of a feature path: an
// ordered list of raw step strings, mirroring the
// tensorflow_metadata.v0.Path message.  The struct is kept compatible
// with that message's proto3 JSON shape so it round-trips through
// encoding/json and YAML without loss; the repo carries no protobuf
// toolchain of its own.
package pathpb

// Path is the message form of a feature path.
type Path struct {
	Step []string `json:"step" yaml:"step"`
}

// GetStep returns the steps, tolerating a nil receiver.
func (p *Path) GetStep() []string {
	if p == nil {
		return nil
	}
	return p.Step
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{Step: append([]string(nil), p.Step...)}
}

// Equal reports whether p and q carry the same ordered steps.
func (p *Path) Equal(q *Path) bool {
	ps, qs := p.GetStep(), q.GetStep()
	if len(ps) != len(qs) {
		return false
	}
	for i := range ps {
		if ps[i] != qs[i] {
			return false
		}
	}
	return true
}
