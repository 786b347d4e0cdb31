package shadergui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a property declares a kind name the
// inspector does not know.
var ErrUnknownKind = errors.New("shadergui: unknown property kind")

// ErrInvalidDef is returned for structurally invalid shader definitions.
var ErrInvalidDef = errors.New("shadergui: invalid shader definition")

// ShaderDef is the YAML description of a shader's exposed properties.
//
//	name: Unlit/Tinted
//	kage: |
//	  //kage:unit pixels
//	  package main
//	  ...
//	properties:
//	  - name: _Color
//	    display: Tint
//	    kind: Color
//	    annotations: ["Header(Surface)"]
//	    default: [1, 0.5, 0.5, 1]
type ShaderDef struct {
	Name       string        `yaml:"name"`
	Kage       string        `yaml:"kage"`
	Queue      *int          `yaml:"queue"`
	Inspector  *Config       `yaml:"inspector"`
	Properties []PropertyDef `yaml:"properties"`

	params   []Parameter
	defaults map[string]Value
}

// PropertyDef is one declared property.
type PropertyDef struct {
	Name        string    `yaml:"name"`
	Display     string    `yaml:"display"`
	Kind        string    `yaml:"kind"`
	Annotations []string  `yaml:"annotations"`
	Flags       []string  `yaml:"flags"`
	Range       []float64 `yaml:"range"`
	Default     yaml.Node `yaml:"default"`
}

var flagNames = map[string]ParamFlags{
	"hideininspector": FlagHideInInspector,
	"noscaleoffset":   FlagNoScaleOffset,
	"normal":          FlagNormal,
}

// ParseKind returns the kind named s, case-insensitively. "2D" is accepted
// for Texture.
func ParseKind(s string) (ParamKind, error) {
	if strings.EqualFold(s, "2D") {
		return KindTexture, nil
	}
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return ParamKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// LoadShaderDef parses and validates a YAML shader definition.
func LoadShaderDef(data []byte) (*ShaderDef, error) {
	var def ShaderDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("shadergui: parse shader definition: %w", err)
	}
	if err := def.build(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *ShaderDef) build() error {
	seen := make(map[string]bool, len(d.Properties))
	d.params = make([]Parameter, 0, len(d.Properties))
	d.defaults = make(map[string]Value, len(d.Properties))
	for i, pd := range d.Properties {
		if pd.Name == "" {
			return fmt.Errorf("%w: property %d has no name", ErrInvalidDef, i)
		}
		if seen[pd.Name] {
			return fmt.Errorf("%w: duplicate property %q", ErrInvalidDef, pd.Name)
		}
		seen[pd.Name] = true

		p, err := pd.parameter()
		if err != nil {
			return fmt.Errorf("shadergui: property %q: %w", pd.Name, err)
		}
		v, err := pd.defaultValue(p)
		if err != nil {
			return fmt.Errorf("shadergui: property %q: %w", pd.Name, err)
		}
		d.params = append(d.params, p)
		d.defaults[p.Name] = v
	}
	return nil
}

func (pd PropertyDef) parameter() (Parameter, error) {
	kind, err := ParseKind(pd.Kind)
	if err != nil {
		return Parameter{}, err
	}
	p := Parameter{
		Name:        pd.Name,
		DisplayName: pd.Display,
		Kind:        kind,
		Annotations: pd.Annotations,
	}
	for _, f := range pd.Flags {
		bit, ok := flagNames[strings.ToLower(f)]
		if !ok {
			return Parameter{}, fmt.Errorf("%w: unknown flag %q", ErrInvalidDef, f)
		}
		p.Flags |= bit
	}
	if kind == KindRange {
		if len(pd.Range) != 2 || pd.Range[0] > pd.Range[1] {
			return Parameter{}, fmt.Errorf("%w: range needs [min, max], got %v", ErrInvalidDef, pd.Range)
		}
		p.Range = Range{Min: pd.Range[0], Max: pd.Range[1]}
	}
	return p, nil
}

// defaultValue decodes the default node for p's kind. A missing default
// yields the kind's default.
func (pd PropertyDef) defaultValue(p Parameter) (Value, error) {
	n := &pd.Default
	v := defaultValue(p)
	if n.Kind == 0 {
		return v, nil
	}
	switch p.Kind {
	case KindFloat, KindRange:
		var f float64
		if err := n.Decode(&f); err != nil {
			return v, fmt.Errorf("%w: default: %v", ErrInvalidDef, err)
		}
		v.Float = f
		if p.Kind == KindRange {
			v.Float = p.Range.Clamp(f)
		}
	case KindInt:
		var i int
		if err := n.Decode(&i); err != nil {
			return v, fmt.Errorf("%w: default: %v", ErrInvalidDef, err)
		}
		v.Int = i
	case KindTexture:
		var s string
		if err := n.Decode(&s); err != nil {
			return v, fmt.Errorf("%w: default: %v", ErrInvalidDef, err)
		}
		v.Texture.Name = s
	case KindVector, KindColor:
		var fs []float64
		if err := n.Decode(&fs); err != nil || len(fs) < 2 || len(fs) > 4 {
			return v, fmt.Errorf("%w: default needs 2 to 4 numbers", ErrInvalidDef)
		}
		vec := Vec4{}
		if p.Kind == KindColor {
			vec.W = 1
		}
		for i, f := range fs {
			vec = vec.WithComponent(i, f)
		}
		if p.Kind == KindColor {
			v.Color = Color{vec.X, vec.Y, vec.Z, vec.W}
		} else {
			v.Vector = vec
		}
	}
	return v, nil
}

// Parameters returns the declared parameters in declaration order.
func (d *ShaderDef) Parameters() []Parameter { return d.params }

// Default returns the declared default of the named property.
func (d *ShaderDef) Default(name string) (Value, bool) {
	v, ok := d.defaults[name]
	return v, ok
}

// Config returns the inspector configuration declared by the definition,
// with defaults filled in.
func (d *ShaderDef) Config() Config {
	if d.Inspector == nil {
		return DefaultConfig()
	}
	return d.Inspector.withDefaults()
}

// NewMaterial compiles the Kage source, if any, and returns a material set
// to the declared defaults.
func (d *ShaderDef) NewMaterial() (*Material, error) {
	var shader *ebiten.Shader
	if strings.TrimSpace(d.Kage) != "" {
		s, err := ebiten.NewShader([]byte(d.Kage))
		if err != nil {
			return nil, fmt.Errorf("shadergui: compile %q: %w", d.Name, err)
		}
		shader = s
	}
	m := NewMaterial(shader, d.params)
	for name, v := range d.defaults {
		m.SetValue(name, v)
	}
	if d.Queue != nil {
		m.SetRenderQueue(*d.Queue)
	}
	return m, nil
}
