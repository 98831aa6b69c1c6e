package path

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quoted step")
	ErrUnterminatedGroup = errors.New("unterminated '('")
	ErrNestedGroup       = errors.New("nested '('")
	ErrStrayQuote        = errors.New("quote inside unquoted step")
	ErrStrayParen        = errors.New("unmatched ')'")
	ErrEmptyStep         = errors.New("empty unquoted step")
	ErrStepSeparator     = errors.New("expected '.' after quoted step")
)

// A ParseError describes where in the input the step grammar was
// violated.  It unwraps to one of the sentinel errors above.
type ParseError struct {
	Input string
	Off   int
	Err   error
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	sample := e.Input[max(0, e.Off-5):min(e.Off+5, len(e.Input))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("%v: `...%s...` at offset %d", e.Err, sample, e.Off)
}

func parseErr(in string, off int, err error) *ParseError {
	return &ParseError{Input: in, Off: off, Err: err}
}
