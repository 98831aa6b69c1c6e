package path

import (
	"errors"
	"testing"
)

type parseTest struct {
	In    string
	Steps []string
	Err   error
	Off   int
}

var parseTests = []parseTest{
	{In: "", Steps: nil},
	{In: "foo", Steps: []string{"foo"}},
	{In: "foo.bar.baz", Steps: []string{"foo", "bar", "baz"}},
	{In: "''", Steps: []string{""}},
	{In: "foo.''.bar", Steps: []string{"foo", "", "bar"}},
	{In: "''''", Steps: []string{"'"}},
	{In: "'foo.bar'", Steps: []string{"foo.bar"}},
	{In: "'((c)'.'Marty''s'", Steps: []string{"((c)", "Marty's"}},
	{In: "foo.'((c)'.'Marty''s'", Steps: []string{"foo", "((c)", "Marty's"}},
	{In: "(foo.bar)", Steps: []string{"(foo.bar)"}},
	{In: "foo.(foo.bar)", Steps: []string{"foo", "(foo.bar)"}},
	{In: "(foo.'bar)", Steps: []string{"(foo.'bar)"}},
	{In: "a(b.c)d.e", Steps: []string{"a(b.c)d", "e"}},
	{In: "()", Steps: []string{"()"}},
	{In: "'\x00\xff'", Steps: []string{"\x00\xff"}},

	{In: "foo.'bar", Err: ErrUnterminatedQuote, Off: 4},
	{In: "'", Err: ErrUnterminatedQuote, Off: 0},
	{In: "'a''", Err: ErrUnterminatedQuote, Off: 0},
	{In: "ab'c", Err: ErrStrayQuote, Off: 2},
	{In: "foo)", Err: ErrStrayParen, Off: 3},
	{In: ")", Err: ErrStrayParen, Off: 0},
	{In: "(foo", Err: ErrUnterminatedGroup, Off: 0},
	{In: "a.((b)", Err: ErrNestedGroup, Off: 3},
	{In: ".", Err: ErrEmptyStep, Off: 0},
	{In: "foo..bar", Err: ErrEmptyStep, Off: 4},
	{In: "foo.", Err: ErrEmptyStep, Off: 4},
	{In: ".foo", Err: ErrEmptyStep, Off: 0},
	{In: "'ab'c", Err: ErrStepSeparator, Off: 4},
	{In: "''x", Err: ErrStepSeparator, Off: 2},
}

func TestParse(t *testing.T) {
	for i := range parseTests {
		pt := &parseTests[i]
		p, err := Parse(pt.In)
		if pt.Err != nil {
			if err == nil {
				t.Errorf("Parse(%q) = %q, want error %v", pt.In, p, pt.Err)
				continue
			}
			if !errors.Is(err, pt.Err) {
				t.Errorf("Parse(%q) error %v, want %v", pt.In, err, pt.Err)
				continue
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Parse(%q) error %T is not a *ParseError", pt.In, err)
				continue
			}
			if pe.Off != pt.Off {
				t.Errorf("Parse(%q) error at offset %d, want %d", pt.In, pe.Off, pt.Off)
			}
			if !p.Empty() {
				t.Errorf("Parse(%q) produced a path alongside an error", pt.In)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", pt.In, err)
			continue
		}
		if !p.Equal(FromSteps(pt.Steps)) {
			t.Errorf("Parse(%q) = %#v, want %#v", pt.In, p.Steps(), pt.Steps)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("foo.'bar")
	if err == nil {
		t.Fatal("no error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %T is not a *ParseError", err)
	}
	msg := pe.Error()
	if msg == "" || msg == ErrUnterminatedQuote.Error() {
		t.Errorf("error message carries no context: %q", msg)
	}
}
