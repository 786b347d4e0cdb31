package shadergui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rig struct {
	insp *Inspector
	rec  *LayoutRecorder
	mat  *Material
}

func newRig(cfg Config, params ...Parameter) *rig {
	rec := NewLayoutRecorder()
	return &rig{
		insp: NewInspector(rec, cfg),
		rec:  rec,
		mat:  NewMaterial(nil, params),
	}
}

// pass runs one render pass on a fresh recording and returns its outline.
func (r *rig) pass() []string {
	r.rec.Reset()
	r.insp.Render(r.mat)
	return r.rec.Outline()
}

func checkOutline(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func floatParam(name string, annotations ...string) Parameter {
	return Parameter{Name: name, Kind: KindFloat, Annotations: annotations}
}

func TestRenderHeaderIntRangeScenario(t *testing.T) {
	r := newRig(Config{}, Parameter{
		Name:        "_Angle",
		Kind:        KindRange,
		Range:       Range{0, 180},
		Annotations: []string{"Header(Main)", "IntRange"},
	})
	r.mat.SetValue("_Angle", RangeValue(42))

	checkOutline(t, []string{
		"Section Main",
		"  Slider _Angle = 42",
	}, r.pass())

	n := r.rec.Find("_Angle")
	if n == nil || n.Min != 0 || n.Max != 180 {
		t.Fatalf("slider node = %+v", n)
	}
	if r.mat.Dirty() {
		t.Error("an untouched pass should not dirty the material")
	}
}

func TestRenderIntRangeWritesTruncatedClampedValue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{42.7, 42},
		{500, 180},
		{-3, 0},
	}
	for _, tt := range tests {
		r := newRig(Config{}, Parameter{
			Name: "_Angle", Kind: KindRange, Range: Range{0, 180},
			Annotations: []string{"IntRange"},
		})
		r.mat.SetValue("_Angle", RangeValue(tt.in))
		r.pass()
		if got := r.mat.Value("_Angle"); got != RangeValue(tt.want) {
			t.Errorf("in %v: value = %v, want %v", tt.in, got, tt.want)
		}
		if !r.mat.Dirty() {
			t.Errorf("in %v: expected dirty", tt.in)
		}
	}
}

func TestRenderRangeSlider(t *testing.T) {
	r := newRig(Config{}, Parameter{Name: "_Gloss", DisplayName: "Gloss", Kind: KindRange, Range: Range{0, 1}})
	r.mat.SetValue("_Gloss", RangeValue(0.5))
	checkOutline(t, []string{"Slider Gloss = 0.5"}, r.pass())

	r.rec.InjectSlider("Gloss", 0.25)
	r.pass()
	if got := r.mat.Value("_Gloss").Float; got != 0.25 {
		t.Errorf("_Gloss = %v, want 0.25", got)
	}
}

func TestRenderRangeSliderKeepsOutOfRangeValue(t *testing.T) {
	r := newRig(Config{}, Parameter{Name: "_Gloss", DisplayName: "Gloss", Kind: KindRange, Range: Range{0, 1}})
	r.mat.SetValue("_Gloss", RangeValue(5))
	checkOutline(t, []string{"Slider Gloss = 1"}, r.pass())
	if got := r.mat.Value("_Gloss").Float; got != 5 {
		t.Errorf("_Gloss = %v, want the stored 5 untouched", got)
	}
	if r.mat.Dirty() || r.insp.LastPass().Changed {
		t.Error("an untouched slider should not dirty the material")
	}

	r.rec.InjectSlider("Gloss", 0.25)
	r.pass()
	if got := r.mat.Value("_Gloss").Float; got != 0.25 {
		t.Errorf("_Gloss = %v, want 0.25 after a drag", got)
	}
}

func TestRenderBalancedHeader(t *testing.T) {
	r := newRig(Config{},
		floatParam("f1", "Header(X)"),
		floatParam("f2"),
		floatParam("f3", "HeaderEnd"),
	)
	checkOutline(t, []string{
		"Section X",
		"  Field f1 = 0",
		"  Field f2 = 0",
		"Field f3 = 0",
	}, r.pass())
}

func TestRenderUnbalancedFoldoutEndIsNoop(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "FoldoutEnd"),
		floatParam("b", "HeaderEnd"),
		floatParam("c"),
	)
	checkOutline(t, []string{
		"Field a = 0",
		"Field b = 0",
		"Field c = 0",
	}, r.pass())
}

func TestRenderClosedFoldoutHidesUntilEnd(t *testing.T) {
	r := newRig(Config{},
		floatParam("f1", "Foldout(Adv)", "Space(4)"),
		floatParam("f2", "Text(hidden)"),
		floatParam("f3", "FoldoutEnd"),
	)
	checkOutline(t, []string{
		"Foldout Adv [closed]",
		"Field f3 = 0",
	}, r.pass())

	st := r.insp.LastPass()
	if st.Drawn != 1 || st.Suppressed != 2 {
		t.Errorf("stats = %+v, want Drawn 1 Suppressed 2", st)
	}
}

func TestRenderFoldoutStatePersists(t *testing.T) {
	r := newRig(Config{},
		floatParam("f1", "Foldout(Adv)"),
		floatParam("f2"),
		floatParam("f3", "FoldoutEnd"),
	)
	r.rec.InjectToggle("Adv", true)
	first := r.pass()
	second := r.pass()

	want := []string{
		"Foldout Adv [open]",
		"  Field f1 = 0",
		"  Field f2 = 0",
		"Field f3 = 0",
	}
	checkOutline(t, want, first)
	checkOutline(t, want, second)
	if !r.insp.FoldoutOpen(0) {
		t.Error("foldout at index 0 should stay open")
	}
	if r.rec.Pending() != 0 {
		t.Errorf("pending edits = %d, want 0", r.rec.Pending())
	}
}

func TestRenderFoldoutResetOnParameterCountChange(t *testing.T) {
	r := newRig(Config{},
		floatParam("f1", "Foldout(Adv)"),
		floatParam("f2", "FoldoutEnd"),
	)
	r.pass()
	r.insp.SetFoldoutOpen(0, true)
	r.pass()
	if !r.insp.FoldoutOpen(0) {
		t.Fatal("SetFoldoutOpen did not stick")
	}

	r.mat.SetParameters(append(r.mat.Parameters(), floatParam("f3")))
	r.pass()
	if r.insp.FoldoutOpen(0) {
		t.Error("foldout flags should reset when the parameter count changes")
	}
}

func TestRenderSingleActiveRegion(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "Header(A)"),
		floatParam("b", "Header(B)"),
		floatParam("c"),
	)
	checkOutline(t, []string{
		"Section A",
		"  Field a = 0",
		"Section B",
		"  Field b = 0",
		"  Field c = 0",
	}, r.pass())
}

func TestRenderHiddenParameterKeepsIndex(t *testing.T) {
	hidden := floatParam("h", "Header(Never)")
	hidden.Flags = FlagHideInInspector
	r := newRig(Config{},
		hidden,
		floatParam("f1", "Foldout(F)"),
		floatParam("f2", "FoldoutEnd"),
	)
	r.rec.InjectToggle("F", true)
	checkOutline(t, []string{
		"Foldout F [open]",
		"  Field f1 = 0",
		"Field f2 = 0",
	}, r.pass())
	if !r.insp.FoldoutOpen(1) {
		t.Error("foldout should be stored at the declaring parameter's index")
	}
	if st := r.insp.LastPass(); st.Hidden != 1 {
		t.Errorf("Hidden = %d, want 1", st.Hidden)
	}
}

func TestRenderDecorationsInOrder(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "Space", "Text(Read me)", "Space(12)"),
		floatParam("b", "Header(S)", "Space(4)"),
	)
	checkOutline(t, []string{
		"Space 8",
		"Banner Read me",
		"Space 12",
		"Field a = 0",
		"Section S",
		"  Space 4",
		"  Field b = 0",
	}, r.pass())
}

func TestRenderDroppedAnnotations(t *testing.T) {
	r := newRig(Config{}, floatParam("a", "Space(x)", "Header", "Header(X"))
	checkOutline(t, []string{"Field a = 0"}, r.pass())
	if st := r.insp.LastPass(); st.Dropped != 3 {
		t.Errorf("Dropped = %d, want 3", st.Dropped)
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	r := newRig(Config{}, Parameter{Name: "_Odd", Kind: ParamKind(42)})
	checkOutline(t, []string{"Label _Odd (Unsupported property type)"}, r.pass())
	if st := r.insp.LastPass(); st.Unsupported != 1 {
		t.Errorf("Unsupported = %d, want 1", st.Unsupported)
	}
}

func TestRenderVectorOverridePreservesComponents(t *testing.T) {
	r := newRig(Config{}, Parameter{Name: "_Dir", Kind: KindVector, Annotations: []string{"Vector3", "Vector2"}})
	r.mat.SetValue("_Dir", VectorValue(Vec4{1, 2, 3, 4}))
	r.rec.InjectEdit("_Dir", VectorValue(Vec4{9, 8, 7, 6}))
	r.pass()

	if got, want := r.mat.Value("_Dir").Vector, (Vec4{9, 8, 3, 4}); got != want {
		t.Errorf("_Dir = %v, want %v", got, want)
	}
	if n := r.rec.Find("_Dir"); n == nil || n.Opts.Components != 2 {
		t.Errorf("field node = %+v, want 2 components", n)
	}
}

func TestRenderTextureScaleOffset(t *testing.T) {
	r := newRig(Config{},
		Parameter{Name: "_MainTex", Kind: KindTexture},
		Parameter{Name: "_Ramp", Kind: KindTexture, Flags: FlagNoScaleOffset},
	)
	r.pass()
	if n := r.rec.Find("_MainTex"); n == nil || !n.Opts.ScaleOffset {
		t.Errorf("_MainTex node = %+v, want scale/offset", n)
	}
	if n := r.rec.Find("_Ramp"); n == nil || n.Opts.ScaleOffset {
		t.Errorf("_Ramp node = %+v, want no scale/offset", n)
	}
}

func TestRenderFieldEdits(t *testing.T) {
	r := newRig(Config{},
		Parameter{Name: "_Count", Kind: KindInt},
		Parameter{Name: "_Tint", Kind: KindColor},
		floatParam("_Cutoff"),
	)
	r.rec.InjectEdit("_Count", IntValue(3))
	r.rec.InjectEdit("_Tint", ColorValue(Color{1, 0, 0, 1}))
	r.pass()

	if got := r.mat.Value("_Count"); got != IntValue(3) {
		t.Errorf("_Count = %v", got)
	}
	if got := r.mat.Value("_Tint"); got != ColorValue(Color{1, 0, 0, 1}) {
		t.Errorf("_Tint = %v", got)
	}
	if !r.mat.Dirty() || !r.insp.LastPass().Changed {
		t.Error("edits should dirty the material")
	}
}

func TestRenderDebugStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newRig(Config{Debug: true, Logger: logger}, floatParam("a", "Space(x)"))
	r.pass()

	out := buf.String()
	if !strings.Contains(out, "annotation dropped") {
		t.Errorf("missing dropped-annotation log: %s", out)
	}
	if !strings.Contains(out, "inspector pass") || !strings.Contains(out, "drawn=1") {
		t.Errorf("missing pass stats log: %s", out)
	}
}

func TestDefaultConfigFillsZeroFields(t *testing.T) {
	insp := NewInspector(NewLayoutRecorder(), Config{BlendModeParam: "_Mode"})
	cfg := insp.Config()
	if cfg.BlendModeParam != "_Mode" {
		t.Errorf("BlendModeParam = %q", cfg.BlendModeParam)
	}
	want := DefaultConfig()
	if cfg.GIModeParam != want.GIModeParam || cfg.DefaultSpace != want.DefaultSpace ||
		cfg.BlendSpace != want.BlendSpace || cfg.RenderSettingsHeader != want.RenderSettingsHeader {
		t.Errorf("config = %+v, want defaults filled", cfg)
	}
}
