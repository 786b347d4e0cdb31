package shadergui

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptStep is one action of an EditScript.
//
//	edit      queue Value (of Kind, default Float) for the Field labelled Label
//	toggle    queue On for the Toggle or foldout header labelled Label
//	popup     queue Index for the Popup labelled Label
//	slider    queue Value for the Slider or IntSlider labelled Label
//	pass      run Passes render passes (default 1)
//	snapshot  record the outline of the last pass under Label
type ScriptStep struct {
	Action string    `yaml:"action"`
	Label  string    `yaml:"label"`
	Kind   string    `yaml:"kind"`
	Value  yaml.Node `yaml:"value"`
	On     bool      `yaml:"on"`
	Index  int       `yaml:"index"`
	Passes int       `yaml:"passes"`
}

// EditScript replays scripted user edits through a LayoutRecorder, for
// headless inspector sessions and regression fixtures.
type EditScript struct {
	Steps []ScriptStep `yaml:"steps"`
}

// LoadEditScript parses a YAML edit script.
func LoadEditScript(data []byte) (*EditScript, error) {
	var s EditScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("shadergui: parse edit script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("shadergui: parse edit script: no steps")
	}
	return &s, nil
}

// Replay runs the script against mat. Edits are queued on rec and consumed
// by the following pass steps. It returns the recorded snapshots, and fails
// when a step is invalid or queued edits were never consumed.
func (s *EditScript) Replay(insp *Inspector, rec *LayoutRecorder, mat Resource) (map[string][]string, error) {
	snaps := make(map[string][]string)
	for i, st := range s.Steps {
		switch st.Action {
		case "edit":
			v, err := st.value()
			if err != nil {
				return snaps, fmt.Errorf("shadergui: script step %d: %w", i, err)
			}
			rec.InjectEdit(st.Label, v)
		case "toggle":
			rec.InjectToggle(st.Label, st.On)
		case "popup":
			rec.InjectPopup(st.Label, st.Index)
		case "slider":
			var f float64
			if err := st.Value.Decode(&f); err != nil {
				return snaps, fmt.Errorf("shadergui: script step %d: slider value: %w", i, err)
			}
			rec.InjectSlider(st.Label, f)
		case "pass":
			n := max(st.Passes, 1)
			for range n {
				rec.Reset()
				insp.Render(mat)
			}
		case "snapshot":
			snaps[st.Label] = rec.Outline()
		default:
			return snaps, fmt.Errorf("shadergui: script step %d: unknown action %q", i, st.Action)
		}
	}
	if n := rec.Pending(); n > 0 {
		return snaps, fmt.Errorf("shadergui: edit script: %d injected edits never consumed", n)
	}
	return snaps, nil
}

// value decodes an edit step's value for its kind.
func (st ScriptStep) value() (Value, error) {
	kind := KindFloat
	if st.Kind != "" {
		k, err := ParseKind(st.Kind)
		if err != nil {
			return Value{}, err
		}
		kind = k
	}
	if kind == KindRange {
		return Value{}, fmt.Errorf("%w: Range edits use the slider action", ErrInvalidDef)
	}
	pd := PropertyDef{Name: st.Label, Default: st.Value}
	return pd.defaultValue(Parameter{Name: st.Label, Kind: kind})
}
