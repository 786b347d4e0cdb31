package shadergui

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// Render queue landmarks. A queue of -1 means "use the shader's own queue".
const (
	QueueFromShader  = -1
	QueueBackground  = 1000
	QueueGeometry    = 2000
	QueueAlphaTest   = 2450
	QueueGeometryEnd = 2500 // last opaque queue
	QueueTransparent = 3000
	QueueOverlay     = 4000
	QueueMax         = 5000
)

// Parameters, keywords and tags written by the blend preset.
const (
	ParamSrcBlend    = "_SrcBlend"
	ParamDstBlend    = "_DstBlend"
	ParamZWrite      = "_ZWrite"
	ParamAlphaToMask = "_AlphaToMask"

	KeywordAlphaTest        = "_ALPHATEST_ON"
	KeywordAlphaBlend       = "_ALPHABLEND_ON"
	KeywordAlphaPremultiply = "_ALPHAPREMULTIPLY_ON"

	TagRenderType = "RenderType"
)

// BlendFactor is a source or destination blend factor. The numeric order is
// the one stored in _SrcBlend/_DstBlend.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorDstColor
	BlendFactorSrcColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorSrcAlphaSaturate
	BlendFactorOneMinusSrcAlpha
)

var blendFactorNames = []string{
	"Zero", "One", "DstColor", "SrcColor", "OneMinusDstColor", "SrcAlpha",
	"OneMinusSrcColor", "DstAlpha", "OneMinusDstAlpha", "SrcAlphaSaturate",
	"OneMinusSrcAlpha",
}

// BlendFactorNames returns the factor names in numeric order. The returned
// slice MUST NOT be mutated.
func BlendFactorNames() []string { return blendFactorNames }

func (f BlendFactor) String() string {
	if int(f) < len(blendFactorNames) {
		return blendFactorNames[f]
	}
	return "BlendFactor(" + strconv.Itoa(int(f)) + ")"
}

// EbitenFactor returns the matching ebiten.BlendFactor. Ebitengine has no
// saturated source alpha, so SrcAlphaSaturate maps to SourceAlpha. Unknown
// factors map to One.
func (f BlendFactor) EbitenFactor() ebiten.BlendFactor {
	switch f {
	case BlendFactorZero:
		return ebiten.BlendFactorZero
	case BlendFactorOne:
		return ebiten.BlendFactorOne
	case BlendFactorDstColor:
		return ebiten.BlendFactorDestinationColor
	case BlendFactorSrcColor:
		return ebiten.BlendFactorSourceColor
	case BlendFactorOneMinusDstColor:
		return ebiten.BlendFactorOneMinusDestinationColor
	case BlendFactorSrcAlpha, BlendFactorSrcAlphaSaturate:
		return ebiten.BlendFactorSourceAlpha
	case BlendFactorOneMinusSrcColor:
		return ebiten.BlendFactorOneMinusSourceColor
	case BlendFactorDstAlpha:
		return ebiten.BlendFactorDestinationAlpha
	case BlendFactorOneMinusDstAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha
	case BlendFactorOneMinusSrcAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha
	default:
		return ebiten.BlendFactorOne
	}
}

// EbitenBlend returns the ebiten.Blend for a src/dst factor pair, applied to
// both color and alpha with additive blend operations.
func EbitenBlend(src, dst BlendFactor) ebiten.Blend {
	return ebiten.Blend{
		BlendFactorSourceRGB:        src.EbitenFactor(),
		BlendFactorSourceAlpha:      src.EbitenFactor(),
		BlendFactorDestinationRGB:   dst.EbitenFactor(),
		BlendFactorDestinationAlpha: dst.EbitenFactor(),
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}

// BlendPreset selects a blend configuration for a material.
type BlendPreset uint8

const (
	BlendOpaque      BlendPreset = iota // no blending, depth write on
	BlendCutout                         // alpha test
	BlendFade                           // classic alpha blending
	BlendTransparent                    // premultiplied alpha
	BlendManual                         // factors edited directly
)

var blendPresetNames = []string{"Opaque", "Cutout", "Fade", "Transparent", "Manual"}

// BlendPresetNames returns the preset names in selector order. The returned
// slice MUST NOT be mutated.
func BlendPresetNames() []string { return blendPresetNames }

func (p BlendPreset) String() string {
	if int(p) < len(blendPresetNames) {
		return blendPresetNames[p]
	}
	return "BlendPreset(" + strconv.Itoa(int(p)) + ")"
}

// Valid reports whether p is one of the five presets.
func (p BlendPreset) Valid() bool { return int(p) < len(blendPresetNames) }

// BlendTuple is the fixed set of values a preset writes.
type BlendTuple struct {
	Src, Dst     BlendFactor
	ZWrite       bool
	AlphaToMask  bool
	Keyword      string // the one feature keyword enabled; empty for none
	RenderType   string
	QueueMin     int
	QueueMax     int
	DefaultQueue int
}

var blendTuples = [...]BlendTuple{
	BlendOpaque: {
		Src: BlendFactorOne, Dst: BlendFactorZero,
		ZWrite:   true,
		QueueMin: QueueFromShader, QueueMax: QueueAlphaTest - 1, DefaultQueue: QueueFromShader,
	},
	BlendCutout: {
		Src: BlendFactorOne, Dst: BlendFactorZero,
		ZWrite: true, AlphaToMask: true,
		Keyword: KeywordAlphaTest, RenderType: "TransparentCutout",
		QueueMin: QueueAlphaTest, QueueMax: QueueGeometryEnd, DefaultQueue: QueueAlphaTest,
	},
	BlendFade: {
		Src: BlendFactorSrcAlpha, Dst: BlendFactorOneMinusSrcAlpha,
		Keyword: KeywordAlphaBlend, RenderType: "Transparent",
		QueueMin: QueueGeometryEnd + 1, QueueMax: QueueOverlay - 1, DefaultQueue: QueueTransparent,
	},
	BlendTransparent: {
		Src: BlendFactorOne, Dst: BlendFactorOneMinusSrcAlpha,
		Keyword: KeywordAlphaPremultiply, RenderType: "Transparent",
		QueueMin: QueueGeometryEnd + 1, QueueMax: QueueOverlay - 1, DefaultQueue: QueueTransparent,
	},
}

// Tuple returns the values written by p. Manual (and any invalid preset) has
// no tuple.
func (p BlendPreset) Tuple() (BlendTuple, bool) {
	if p >= BlendManual {
		return BlendTuple{}, false
	}
	return blendTuples[p], true
}

// QueueRange returns the valid render queue range of p and the queue it
// resets to.
func (p BlendPreset) QueueRange() (lo, hi, def int) {
	if t, ok := p.Tuple(); ok {
		return t.QueueMin, t.QueueMax, t.DefaultQueue
	}
	return QueueFromShader, QueueMax, QueueFromShader
}

var alphaKeywords = [...]string{KeywordAlphaTest, KeywordAlphaBlend, KeywordAlphaPremultiply}

// ApplyBlendPreset writes the tuple of p to res: blend factors, depth write,
// alpha-to-coverage, the RenderType tag, and exactly one of the three alpha
// keywords (none for Opaque). Manual writes nothing and returns false.
func ApplyBlendPreset(res Resource, p BlendPreset) bool {
	t, ok := p.Tuple()
	if !ok {
		return false
	}
	res.SetOverrideTag(TagRenderType, t.RenderType)
	res.SetValue(ParamSrcBlend, FloatValue(float64(t.Src)))
	res.SetValue(ParamDstBlend, FloatValue(float64(t.Dst)))
	res.SetValue(ParamZWrite, FloatValue(boolFloat(t.ZWrite)))
	res.SetValue(ParamAlphaToMask, FloatValue(boolFloat(t.AlphaToMask)))
	for _, kw := range alphaKeywords {
		if kw == t.Keyword {
			res.EnableKeyword(kw)
		} else {
			res.DisableKeyword(kw)
		}
	}
	return true
}

// ValidateRenderQueue resets the render queue of res to the default of p.
// With override the reset is unconditional; otherwise it happens only when
// the current queue lies outside the preset's range, and a warning is
// logged. It reports whether the queue was written.
func ValidateRenderQueue(res Resource, p BlendPreset, override bool, logger *slog.Logger) bool {
	lo, hi, def := p.QueueRange()
	q := res.RenderQueue()
	if !override && q >= lo && q <= hi {
		return false
	}
	if !override && logger != nil {
		logger.Warn("render queue outside the allowed range for blend mode, resetting to default",
			"blend", p.String(), "queue", q, "min", lo, "max", hi, "default", def)
	}
	res.SetRenderQueue(def)
	return true
}

// SetupBlendMode applies p and validates the render queue in one step.
func SetupBlendMode(res Resource, p BlendPreset, overrideQueue bool, logger *slog.Logger) {
	ApplyBlendPreset(res, p)
	ValidateRenderQueue(res, p, overrideQueue, logger)
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// drawBlendSelector renders a blend-mode selector parameter as a preset popup.
// A change persists the selector, applies the preset and resets the queue;
// without a change the queue is only re-validated. Manual also exposes the
// raw factor pickers.
func (ps *pass) drawBlendSelector(param Parameter) {
	ps.host.Space(ps.cfg.BlendSpace)

	cur := ps.res.Value(param.Name)
	mode := BlendPreset(clampIndex(cur.Number(), len(blendPresetNames)))
	if n := cur.Number(); !inIndexRange(n, len(blendPresetNames)) {
		ps.log.Warn("blend selector out of range, resetting to Opaque",
			"param", param.Name, "value", n)
		mode = BlendOpaque
		ps.set(param.Name, withNumber(cur, float64(mode)))
		SetupBlendMode(ps.res, mode, true, ps.log)
		ps.changed = true
	}

	sel := ps.host.Popup("Blend", int(mode), blendPresetNames)
	if next := BlendPreset(sel); next.Valid() && next != mode {
		mode = next
		ps.set(param.Name, withNumber(cur, float64(mode)))
		SetupBlendMode(ps.res, mode, true, ps.log)
		ps.changed = true
	} else if ValidateRenderQueue(ps.res, mode, false, ps.log) {
		ps.changed = true
	}

	if mode != BlendManual {
		return
	}
	ps.host.Indent(1)
	for _, name := range [...]string{ParamSrcBlend, ParamDstBlend} {
		v := ps.res.Value(name)
		idx := clampIndex(v.Number(), len(blendFactorNames))
		idx = ps.host.Popup(name, idx, blendFactorNames)
		ps.set(name, withNumber(v, float64(clampIndex(float64(idx), len(blendFactorNames)))))
	}
	ps.host.Indent(-1)
}

// clampIndex truncates f to an index in [0, n).
func clampIndex(f float64, n int) int {
	switch {
	case !(f >= 0): // negative or NaN
		return 0
	case f >= float64(n):
		return n - 1
	}
	return int(f)
}

// inIndexRange reports whether f truncates to an index in [0, n). NaN and
// the infinities never do.
func inIndexRange(f float64, n int) bool {
	return !math.IsNaN(f) && f >= 0 && f < float64(n)
}

// withNumber returns v with its scalar replaced, keeping v's kind. Non-scalar
// values become Float.
func withNumber(v Value, f float64) Value {
	switch v.Kind {
	case KindFloat, KindRange:
		v.Float = f
		return v
	case KindInt:
		v.Int = int(f)
		return v
	}
	return FloatValue(f)
}
