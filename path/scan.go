package path

import (
	"github.com/digitty-forks/data-validation/debug"
)

// scanUnquoted scans one unquoted step token at s[off:] and returns the
// offset just past it.  The token ends at an unescaped '.' or at the
// end of s.  Inside a flat '(' ... ')' group any byte except '(' and
// ')' is part of the token, '.' and quotes included; outside a group
// quotes and ')' cannot appear at all.
//
// This one scanner defines both the parser's unquoted token rule and
// the serializer's bare step test, so the two cannot drift apart.
func scanUnquoted(s string, off int) (int, *ParseError) {
	i := off
	for i < len(s) {
		switch s[i] {
		case '.':
			return i, nil
		case '\'':
			return 0, parseErr(s, i, ErrStrayQuote)
		case ')':
			return 0, parseErr(s, i, ErrStrayParen)
		case '(':
			j := i + 1
			for {
				if j == len(s) {
					return 0, parseErr(s, i, ErrUnterminatedGroup)
				}
				if s[j] == '(' {
					return 0, parseErr(s, j, ErrNestedGroup)
				}
				if s[j] == ')' {
					break
				}
				j++
			}
			i = j + 1
		default:
			i++
		}
	}
	return i, nil
}

// scanQuoted scans one quoted step token starting at the opening quote
// s[off] and returns the unescaped step value and the offset just past
// the closing quote.  A doubled quote decodes to a single literal
// quote; the first quote not followed by another closes the token.
func scanQuoted(s string, off int) (string, int, *ParseError) {
	res := make([]byte, 0, len(s)-off)
	i := off + 1
	for i < len(s) {
		c := s[i]
		if c != '\'' {
			res = append(res, c)
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			res = append(res, '\'')
			i += 2
			continue
		}
		return string(res), i + 1, nil
	}
	return "", 0, parseErr(s, off, ErrUnterminatedQuote)
}

// bareStep reports whether step serializes without quoting, which holds
// exactly when the whole step is one unquoted token.
func bareStep(step string) bool {
	if step == "" {
		return false
	}
	end, err := scanUnquoted(step, 0)
	ok := err == nil && end == len(step)
	if debug.Scan() {
		debug.Logf("step %q bare=%t\n", step, ok)
	}
	return ok
}
