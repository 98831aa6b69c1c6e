package path

import (
	"testing"

	"github.com/digitty-forks/data-validation/pathpb"
)

func TestProtoRoundTrip(t *testing.T) {
	for _, steps := range [][]string{
		nil,
		{"foo"},
		{"foo", "((c)", "Marty's"},
		{"", "a.b", "\x00\xff"},
	} {
		m := &pathpb.Path{Step: steps}
		p := FromProto(m)
		if p.Len() != len(steps) {
			t.Errorf("FromProto(%#v).Len() = %d", steps, p.Len())
		}
		back := p.AsProto()
		if !back.Equal(m) {
			t.Errorf("AsProto(FromProto(%#v)) = %#v", steps, back.Step)
		}
		if !FromProto(back).Equal(p) {
			t.Errorf("FromProto(AsProto(%q)) != %q", p, p)
		}
	}
}

func TestFromProtoNil(t *testing.T) {
	if !FromProto(nil).Empty() {
		t.Error("FromProto(nil) is not empty")
	}
}

func TestAsProtoOwnsSteps(t *testing.T) {
	p := New("a", "b")
	m := p.AsProto()
	m.Step[0] = "mutated"
	if p.Steps()[0] != "a" {
		t.Error("AsProto shares the path's steps")
	}
}
