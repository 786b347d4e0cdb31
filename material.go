package shadergui

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Material is a Resource backed by a user-provided Kage shader. Values are
// keyed by parameter name; values written for a declared parameter are
// coerced to its kind. Images[0..3] are bound to the shader in slot order.
type Material struct {
	Shader *ebiten.Shader
	Images [4]*ebiten.Image

	params     []Parameter
	index      map[string]int
	values     map[string]Value
	keywords   map[string]struct{}
	tags       map[string]string
	queue      int
	instancing bool
	gi         GIFlags
	dirty      bool

	shaderOp ebiten.DrawRectShaderOptions
}

// NewMaterial creates a material declaring params, each set to its kind's
// default. shader may be nil; DrawPreview is then a no-op.
func NewMaterial(shader *ebiten.Shader, params []Parameter) *Material {
	m := &Material{
		Shader:   shader,
		params:   slices.Clone(params),
		index:    make(map[string]int, len(params)),
		values:   make(map[string]Value, len(params)),
		keywords: make(map[string]struct{}),
		tags:     make(map[string]string),
		queue:    QueueFromShader,
	}
	for i, p := range m.params {
		m.index[p.Name] = i
		m.values[p.Name] = defaultValue(p)
	}
	return m
}

func defaultValue(p Parameter) Value {
	v := zeroValue(p.Kind)
	switch p.Kind {
	case KindColor:
		v.Color = ColorWhite
	case KindRange:
		v.Float = p.Range.Clamp(0)
	}
	return v
}

// Parameters implements Resource. The returned slice MUST NOT be mutated.
func (m *Material) Parameters() []Parameter { return m.params }

// Annotations implements Resource.
func (m *Material) Annotations(p Parameter) []string {
	if i, ok := m.index[p.Name]; ok {
		return m.params[i].Annotations
	}
	return p.Annotations
}

// Value implements Resource. Unknown names return a zero Float.
func (m *Material) Value(name string) Value { return m.values[name] }

// SetValue implements Resource.
func (m *Material) SetValue(name string, v Value) {
	if i, ok := m.index[name]; ok {
		v = coerce(v, m.params[i].Kind)
	}
	m.values[name] = v
}

// coerce converts scalar values between the scalar kinds. Other mismatches
// are stored unchanged.
func coerce(v Value, k ParamKind) Value {
	if v.Kind == k || !isScalar(v.Kind) || !isScalar(k) {
		return v
	}
	n := v.Number()
	switch k {
	case KindInt:
		return IntValue(int(n))
	case KindRange:
		return RangeValue(n)
	}
	return FloatValue(n)
}

func isScalar(k ParamKind) bool {
	return k == KindFloat || k == KindRange || k == KindInt
}

// RangeLimits implements Resource.
func (m *Material) RangeLimits(p Parameter) Range {
	if i, ok := m.index[p.Name]; ok {
		return m.params[i].Range
	}
	return p.Range
}

// EnableKeyword implements Resource.
func (m *Material) EnableKeyword(kw string) { m.keywords[kw] = struct{}{} }

// DisableKeyword implements Resource.
func (m *Material) DisableKeyword(kw string) { delete(m.keywords, kw) }

// KeywordEnabled reports whether kw is enabled.
func (m *Material) KeywordEnabled(kw string) bool {
	_, ok := m.keywords[kw]
	return ok
}

// EnabledKeywords returns the enabled keywords, sorted.
func (m *Material) EnabledKeywords() []string {
	out := make([]string, 0, len(m.keywords))
	for kw := range m.keywords {
		out = append(out, kw)
	}
	slices.Sort(out)
	return out
}

// RenderQueue implements Resource.
func (m *Material) RenderQueue() int { return m.queue }

// SetRenderQueue implements Resource. The queue is clamped to [-1, QueueMax].
func (m *Material) SetRenderQueue(q int) { m.queue = clampInt(q, QueueFromShader, QueueMax) }

// SetOverrideTag implements Resource. An empty value removes the override.
func (m *Material) SetOverrideTag(key, value string) {
	if value == "" {
		delete(m.tags, key)
		return
	}
	m.tags[key] = value
}

// OverrideTag returns the override for key, or "".
func (m *Material) OverrideTag(key string) string { return m.tags[key] }

// Instancing implements Resource.
func (m *Material) Instancing() bool { return m.instancing }

// SetInstancing implements Resource.
func (m *Material) SetInstancing(on bool) { m.instancing = on }

// GIFlags implements Resource.
func (m *Material) GIFlags() GIFlags { return m.gi }

// SetGIFlags implements Resource.
func (m *Material) SetGIFlags(f GIFlags) { m.gi = f }

// SetDirty implements Dirtier.
func (m *Material) SetDirty() { m.dirty = true }

// Dirty reports whether an inspector pass changed the material since the
// last ClearDirty.
func (m *Material) Dirty() bool { return m.dirty }

// ClearDirty resets the dirty flag.
func (m *Material) ClearDirty() { m.dirty = false }

// BindImage binds img to the shader image slot (0..3). Out-of-range slots
// are ignored.
func (m *Material) BindImage(slot int, img *ebiten.Image) {
	if slot < 0 || slot >= len(m.Images) {
		return
	}
	m.Images[slot] = img
}

// UniformName converts a parameter name to its Kage uniform name: leading
// underscores are stripped and the first letter is upper-cased so the
// uniform is exported.
func UniformName(param string) string {
	s := strings.TrimLeft(param, "_")
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Uniforms returns every value as a Kage uniform. Scalars become float32,
// ints and IntRange sliders int32, vectors and colors []float32 of length 4.
// A texture slot contributes its tiling as <Name>ST = {scaleX, scaleY,
// offsetX, offsetY}.
func (m *Material) Uniforms() map[string]any {
	u := make(map[string]any, len(m.values))
	for name, v := range m.values {
		key := UniformName(name)
		if key == "" {
			continue
		}
		switch v.Kind {
		case KindRange:
			if m.intRange(name) {
				u[key] = int32(v.Float)
			} else {
				u[key] = float32(v.Float)
			}
		case KindFloat:
			u[key] = float32(v.Float)
		case KindInt:
			u[key] = int32(v.Int)
		case KindVector:
			u[key] = []float32{float32(v.Vector.X), float32(v.Vector.Y), float32(v.Vector.Z), float32(v.Vector.W)}
		case KindColor:
			u[key] = []float32{float32(v.Color.R), float32(v.Color.G), float32(v.Color.B), float32(v.Color.A)}
		case KindTexture:
			t := v.Texture
			u[key+"ST"] = []float32{float32(t.Scale.X), float32(t.Scale.Y), float32(t.Offset.X), float32(t.Offset.Y)}
		}
	}
	return u
}

// intRange reports whether the declared parameter name is drawn as an
// integer slider, in which case the shader declares it as int.
func (m *Material) intRange(name string) bool {
	i, ok := m.index[name]
	if !ok {
		return false
	}
	ds, _ := ParseDirectives(m.params[i].Annotations)
	o, ok := EffectiveOverride(ds)
	return ok && o.Name == OverrideIntRange
}

// BlendFactors returns the factors stored in _SrcBlend and _DstBlend,
// defaulting to One/Zero when unset.
func (m *Material) BlendFactors() (src, dst BlendFactor) {
	src, dst = BlendFactorOne, BlendFactorZero
	if v, ok := m.values[ParamSrcBlend]; ok {
		src = BlendFactor(clampIndex(v.Number(), len(blendFactorNames)))
	}
	if v, ok := m.values[ParamDstBlend]; ok {
		dst = BlendFactor(clampIndex(v.Number(), len(blendFactorNames)))
	}
	return src, dst
}

// Blend returns the ebiten.Blend described by the material's blend factors.
func (m *Material) Blend() ebiten.Blend {
	return EbitenBlend(m.BlendFactors())
}

// DrawPreview draws a quad covering r on dst with the material's shader,
// uniforms, images and blend.
func (m *Material) DrawPreview(dst *ebiten.Image, r Rect) {
	if m.Shader == nil || dst == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	m.shaderOp.GeoM.Reset()
	m.shaderOp.GeoM.Translate(r.X, r.Y)
	m.shaderOp.Images = m.Images
	m.shaderOp.Uniforms = m.Uniforms()
	m.shaderOp.Blend = m.Blend()
	dst.DrawRectShader(int(r.Width), int(r.Height), m.Shader, &m.shaderOp)
}

// Clone returns an independent copy sharing the shader and bound images.
// The dirty flag is not copied.
func (m *Material) Clone() *Material {
	c := NewMaterial(m.Shader, m.params)
	c.Images = m.Images
	for k, v := range m.values {
		c.values[k] = v
	}
	for kw := range m.keywords {
		c.keywords[kw] = struct{}{}
	}
	for k, v := range m.tags {
		c.tags[k] = v
	}
	c.queue = m.queue
	c.instancing = m.instancing
	c.gi = m.gi
	return c
}

// PruneUnused removes stored values whose names are not declared parameters
// and returns their names, sorted. Leftovers accumulate when a material
// switches shaders.
func (m *Material) PruneUnused() []string {
	var removed []string
	for name := range m.values {
		if _, ok := m.index[name]; !ok {
			removed = append(removed, name)
		}
	}
	slices.Sort(removed)
	for _, name := range removed {
		delete(m.values, name)
	}
	return removed
}

// SetParameters redeclares the material's parameters, keeping the values of
// names that survive and defaulting new ones. Values of dropped names stay
// until PruneUnused.
func (m *Material) SetParameters(params []Parameter) {
	m.params = slices.Clone(params)
	m.index = make(map[string]int, len(params))
	for i, p := range m.params {
		m.index[p.Name] = i
		if v, ok := m.values[p.Name]; ok {
			m.values[p.Name] = coerce(v, p.Kind)
			continue
		}
		m.values[p.Name] = defaultValue(p)
	}
}
