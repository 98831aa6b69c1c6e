package path

import "strings"

// String renders p as a single human readable token that [Parse]
// inverts exactly.  Bare safe steps are emitted untouched, every other
// step is single quoted with internal quotes doubled, and steps are
// joined with dots.  The empty path renders as "".
func (p Path) String() string {
	var b strings.Builder
	for i, step := range p.steps {
		if i > 0 {
			b.WriteByte('.')
		}
		if bareStep(step) {
			b.WriteString(step)
			continue
		}
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(step, "'", "''"))
		b.WriteByte('\'')
	}
	return b.String()
}
