package shadergui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testShaderDef = `
name: Test/Lit
queue: 2000
inspector:
  blendModeParam: _Mode
  defaultSpace: 6
properties:
  - name: _Mode
    kind: float
  - name: _Color
    display: Tint
    kind: Color
    annotations: ["Header(Surface)"]
    default: [1, 0.5, 0.25]
  - name: _MainTex
    kind: 2D
    flags: [NoScaleOffset]
    default: white
  - name: _Gloss
    kind: Range
    range: [0, 1]
    default: 3
  - name: _Steps
    kind: Int
    default: 4
  - name: _Dir
    kind: Vector
    default: [1, 2]
  - name: _Hidden
    kind: Float
    flags: [HideInInspector]
    default: 0.5
`

func TestLoadShaderDef(t *testing.T) {
	def, err := LoadShaderDef([]byte(testShaderDef))
	if err != nil {
		t.Fatalf("LoadShaderDef: %v", err)
	}
	if def.Name != "Test/Lit" {
		t.Errorf("Name = %q", def.Name)
	}

	want := []Parameter{
		{Name: "_Mode", Kind: KindFloat},
		{Name: "_Color", DisplayName: "Tint", Kind: KindColor, Annotations: []string{"Header(Surface)"}},
		{Name: "_MainTex", Kind: KindTexture, Flags: FlagNoScaleOffset},
		{Name: "_Gloss", Kind: KindRange, Range: Range{0, 1}},
		{Name: "_Steps", Kind: KindInt},
		{Name: "_Dir", Kind: KindVector},
		{Name: "_Hidden", Kind: KindFloat, Flags: FlagHideInInspector},
	}
	if diff := cmp.Diff(want, def.Parameters()); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}

	defaults := map[string]Value{
		"_Color":   ColorValue(Color{1, 0.5, 0.25, 1}),
		"_MainTex": TextureValue("white"),
		"_Gloss":   RangeValue(1),
		"_Steps":   IntValue(4),
		"_Dir":     VectorValue(Vec4{1, 2, 0, 0}),
		"_Hidden":  FloatValue(0.5),
	}
	for name, want := range defaults {
		got, ok := def.Default(name)
		if !ok || got != want {
			t.Errorf("Default(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}

	cfg := def.Config()
	if cfg.BlendModeParam != "_Mode" || cfg.DefaultSpace != 6 || cfg.GIModeParam != "_GIMode" {
		t.Errorf("Config = %+v", cfg)
	}
}

func TestShaderDefNewMaterial(t *testing.T) {
	def, err := LoadShaderDef([]byte(testShaderDef))
	if err != nil {
		t.Fatalf("LoadShaderDef: %v", err)
	}
	m, err := def.NewMaterial()
	if err != nil {
		t.Fatalf("NewMaterial: %v", err)
	}
	if m.Shader != nil {
		t.Error("no kage source should mean no shader")
	}
	if m.RenderQueue() != 2000 {
		t.Errorf("queue = %d, want 2000", m.RenderQueue())
	}
	if got := m.Value("_Steps"); got != IntValue(4) {
		t.Errorf("_Steps = %v", got)
	}
	if len(m.Parameters()) != 7 {
		t.Errorf("parameters = %d, want 7", len(m.Parameters()))
	}
}

func TestShaderDefDrivesInspector(t *testing.T) {
	def, err := LoadShaderDef([]byte(testShaderDef))
	if err != nil {
		t.Fatalf("LoadShaderDef: %v", err)
	}
	m, err := def.NewMaterial()
	if err != nil {
		t.Fatalf("NewMaterial: %v", err)
	}
	rec := NewLayoutRecorder()
	NewInspector(rec, def.Config()).Render(m)

	want := []string{
		"Space 10",
		"Popup Blend = Opaque",
		"Section Surface",
		"  Field Tint = rgba(1, 0.5, 0.25, 1)",
		"  Field _MainTex = white st(1, 1, 0, 0)",
		"  Slider _Gloss = 1",
		"  Field _Steps = 4",
		"  Field _Dir = (1, 2, 0, 0)",
	}
	if diff := cmp.Diff(want, rec.Outline()); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShaderDefErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown kind", "properties: [{name: _A, kind: Matrix}]", ErrUnknownKind},
		{"missing name", "properties: [{kind: Float}]", ErrInvalidDef},
		{"duplicate", "properties: [{name: _A, kind: Float}, {name: _A, kind: Int}]", ErrInvalidDef},
		{"bad range", "properties: [{name: _A, kind: Range, range: [1]}]", ErrInvalidDef},
		{"inverted range", "properties: [{name: _A, kind: Range, range: [2, 1]}]", ErrInvalidDef},
		{"bad flag", "properties: [{name: _A, kind: Float, flags: [Shiny]}]", ErrInvalidDef},
		{"bad vector default", "properties: [{name: _A, kind: Vector, default: [1, 2, 3, 4, 5]}]", ErrInvalidDef},
		{"bad float default", "properties: [{name: _A, kind: Float, default: [1]}]", ErrInvalidDef},
	}
	for _, tt := range tests {
		_, err := LoadShaderDef([]byte(tt.src))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := LoadShaderDef([]byte("properties: {")); err == nil {
		t.Error("expected a YAML syntax error")
	}
}

func TestParseKind(t *testing.T) {
	for s, want := range map[string]ParamKind{
		"Float": KindFloat, "range": KindRange, "INT": KindInt,
		"2D": KindTexture, "texture": KindTexture, "Color": KindColor, "vector": KindVector,
	} {
		got, err := ParseKind(s)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
}
