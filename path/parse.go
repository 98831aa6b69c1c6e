package path

import (
	"github.com/digitty-forks/data-validation/debug"
)

// Parse decodes a string produced by [Path.String] back into a Path.
// For every path p, Parse(p.String()) returns a path equal to p.  The
// empty input decodes to the empty path.  Input that does not conform
// to the step grammar yields a *ParseError and no path; Parse never
// best-effort decodes a prefix.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var steps []string
	i := 0
	for {
		if s[i] == '\'' {
			step, end, err := scanQuoted(s, i)
			if err != nil {
				return Path{}, err
			}
			steps = append(steps, step)
			i = end
		} else {
			end, err := scanUnquoted(s, i)
			if err != nil {
				return Path{}, err
			}
			if end == i {
				return Path{}, parseErr(s, i, ErrEmptyStep)
			}
			steps = append(steps, s[i:end])
			i = end
		}
		if i == len(s) {
			break
		}
		if s[i] != '.' {
			return Path{}, parseErr(s, i, ErrStepSeparator)
		}
		i++
		if i == len(s) {
			// trailing separator: the empty step spells itself ''
			return Path{}, parseErr(s, i, ErrEmptyStep)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %q into %d steps\n", s, len(steps))
	}
	return Path{steps: steps}, nil
}
