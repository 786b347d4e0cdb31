package shadergui

import "strconv"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default color value.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for texture scale/offset and layout positions.
type Vec2 struct {
	X, Y float64
}

// Vec4 is the four-component vector stored by Vector parameters.
type Vec4 struct {
	X, Y, Z, W float64
}

// Component returns the i-th component (0..3). Out-of-range indices return 0.
func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	return 0
}

// WithComponent returns a copy of v with the i-th component replaced.
func (v Vec4) WithComponent(i int, f float64) Vec4 {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range. Range parameters declare one.
type Range struct {
	Min, Max float64
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// ParamKind is the declared type of a parameter.
type ParamKind uint8

const (
	KindFloat   ParamKind = iota // plain scalar
	KindRange                    // scalar with declared [min, max]
	KindInt                      // integer scalar
	KindTexture                  // texture slot with scale/offset
	KindColor                    // RGBA color
	KindVector                   // four-component vector
)

var kindNames = [...]string{"Float", "Range", "Int", "Texture", "Color", "Vector"}

// String returns the kind name, or "Kind(n)" for kinds the inspector does not know.
func (k ParamKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParamFlags is a bitmask of per-parameter declaration flags.
type ParamFlags uint8

const (
	FlagHideInInspector ParamFlags = 1 << iota // never drawn; still occupies its index
	FlagNoScaleOffset                          // texture drawn without scale/offset sub-fields
	FlagNormal                                 // texture expects a normal map
)

// Parameter is one exposed, named, typed value on a resource. Parameters are
// owned by the resource; the inspector only reads their declaration.
type Parameter struct {
	Name        string
	DisplayName string
	Kind        ParamKind
	Annotations []string
	Flags       ParamFlags
	Range       Range // valid for KindRange
}

// Label returns the display name, falling back to the parameter name.
func (p Parameter) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// Texture is the value of a texture slot: a texture name plus its tiling
// scale and offset.
type Texture struct {
	Name   string
	Scale  Vec2
	Offset Vec2
}

// Value holds the current value of a parameter. Only the field matching Kind
// is meaningful. Values are comparable with ==.
type Value struct {
	Kind    ParamKind
	Float   float64 // KindFloat, KindRange
	Int     int     // KindInt
	Vector  Vec4    // KindVector
	Color   Color   // KindColor
	Texture Texture // KindTexture
}

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// RangeValue returns a Range value.
func RangeValue(f float64) Value { return Value{Kind: KindRange, Float: f} }

// IntValue returns an Int value.
func IntValue(i int) Value { return Value{Kind: KindInt, Int: i} }

// VectorValue returns a Vector value.
func VectorValue(v Vec4) Value { return Value{Kind: KindVector, Vector: v} }

// ColorValue returns a Color value.
func ColorValue(c Color) Value { return Value{Kind: KindColor, Color: c} }

// TextureValue returns a Texture value with unit scale and zero offset.
func TextureValue(name string) Value {
	return Value{Kind: KindTexture, Texture: Texture{Name: name, Scale: Vec2{1, 1}}}
}

// Number returns the value as a float64 for the scalar kinds (Float, Range, Int)
// and 0 otherwise.
func (v Value) Number() float64 {
	switch v.Kind {
	case KindFloat, KindRange:
		return v.Float
	case KindInt:
		return float64(v.Int)
	}
	return 0
}

// zeroValue returns the zero value for a kind, with unit texture scale.
func zeroValue(k ParamKind) Value {
	if k == KindTexture {
		return TextureValue("")
	}
	return Value{Kind: k}
}

// String formats the meaningful field of v.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat, KindRange:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindVector:
		return "(" + ftoa(v.Vector.X) + ", " + ftoa(v.Vector.Y) + ", " + ftoa(v.Vector.Z) + ", " + ftoa(v.Vector.W) + ")"
	case KindColor:
		return "rgba(" + ftoa(v.Color.R) + ", " + ftoa(v.Color.G) + ", " + ftoa(v.Color.B) + ", " + ftoa(v.Color.A) + ")"
	case KindTexture:
		name := v.Texture.Name
		if name == "" {
			name = "None"
		}
		return name + " st(" + ftoa(v.Texture.Scale.X) + ", " + ftoa(v.Texture.Scale.Y) + ", " +
			ftoa(v.Texture.Offset.X) + ", " + ftoa(v.Texture.Offset.Y) + ")"
	}
	return v.Kind.String()
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
