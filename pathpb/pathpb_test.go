package pathpb

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestYAMLRoundTrip(t *testing.T) {
	in := []*Path{
		{Step: []string{"foo", "bar"}},
		{Step: []string{"a.b", "it's"}},
		{},
	}
	d, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out []*Path
	if err := yaml.Unmarshal(d, &out); err != nil {
		t.Fatalf("unmarshal %q: %v", d, err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d paths, want %d", len(out), len(in))
	}
	for i := range in {
		if !in[i].Equal(out[i]) {
			t.Errorf("path %d: got %#v want %#v", i, out[i].GetStep(), in[i].GetStep())
		}
	}
}

func TestJSONShape(t *testing.T) {
	d, err := json.Marshal(&Path{Step: []string{"foo", "bar"}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"step":["foo","bar"]}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
}

func TestCloneEqual(t *testing.T) {
	p := &Path{Step: []string{"a", "b"}}
	q := p.Clone()
	if !p.Equal(q) {
		t.Fatal("clone not equal")
	}
	q.Step[0] = "mutated"
	if p.Step[0] != "a" {
		t.Error("clone shares steps")
	}
	if p.Equal(q) {
		t.Error("mutated clone still equal")
	}
	if (*Path)(nil).Equal(p) || !(*Path)(nil).Equal(&Path{}) {
		t.Error("nil handling")
	}
}
