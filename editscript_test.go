package shadergui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testEditScript = `
steps:
  - action: pass
  - action: snapshot
    label: closed
  - action: toggle
    label: Adv
    on: true
  - action: edit
    label: f1
    value: 2.5
  - action: edit
    label: tint
    kind: Color
    value: [0, 0, 1]
  - action: pass
    passes: 2
  - action: snapshot
    label: open
`

func TestEditScriptReplay(t *testing.T) {
	s, err := LoadEditScript([]byte(testEditScript))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	r := newRig(Config{},
		floatParam("f1", "Foldout(Adv)"),
		Parameter{Name: "tint", Kind: KindColor, Annotations: []string{"FoldoutEnd"}},
	)
	snaps, err := s.Replay(r.insp, r.rec, r.mat)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	want := map[string][]string{
		"closed": {
			"Foldout Adv [closed]",
			"Field tint = rgba(1, 1, 1, 1)",
		},
		"open": {
			"Foldout Adv [open]",
			"  Field f1 = 2.5",
			"Field tint = rgba(0, 0, 1, 1)",
		},
	}
	if diff := cmp.Diff(want, snaps); diff != "" {
		t.Errorf("snapshots mismatch (-want +got):\n%s", diff)
	}
	if got := r.mat.Value("f1"); got != FloatValue(2.5) {
		t.Errorf("f1 = %v, want 2.5", got)
	}
}

func TestEditScriptUnconsumedEdit(t *testing.T) {
	s, err := LoadEditScript([]byte(`
steps:
  - action: edit
    label: nope
    value: 1
  - action: pass
`))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	r := newRig(Config{}, floatParam("f1"))
	_, err = s.Replay(r.insp, r.rec, r.mat)
	if err == nil || !strings.Contains(err.Error(), "never consumed") {
		t.Errorf("err = %v, want an unconsumed-edit error", err)
	}
}

func TestEditScriptErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"unknown action", "steps: [{action: jump}]"},
		{"range edit", "steps: [{action: edit, label: a, kind: Range, value: 1}]"},
		{"bad kind", "steps: [{action: edit, label: a, kind: Matrix}]"},
		{"bad slider", "steps: [{action: slider, label: a, value: [1, 2]}]"},
	}
	for _, tt := range tests {
		s, err := LoadEditScript([]byte(tt.src))
		if err != nil {
			t.Fatalf("%s: LoadEditScript: %v", tt.name, err)
		}
		r := newRig(Config{}, floatParam("a"))
		if _, err := s.Replay(r.insp, r.rec, r.mat); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}

	if _, err := LoadEditScript([]byte("steps: []")); err == nil {
		t.Error("an empty script should be rejected")
	}
}
