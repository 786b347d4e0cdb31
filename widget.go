package shadergui

// Widget override names understood by the resolver.
const (
	OverrideIntRange   = "IntRange"
	OverrideVector2    = "Vector2"
	OverrideVector3    = "Vector3"
	OverrideAlphaBlend = "AlphaBlend"
)

// drawParameter picks the control for a visible parameter from its kind and
// its effective widget override, draws it and writes the edited value back.
func (ps *pass) drawParameter(param Parameter, ds []Directive) {
	override, ok := EffectiveOverride(ds)
	if !ok {
		override = Directive{}
	}
	label := param.Label()
	cur := ps.res.Value(param.Name)

	switch param.Kind {
	case KindFloat:
		switch {
		case param.Name == ps.cfg.BlendModeParam || override.Name == OverrideAlphaBlend:
			ps.drawBlendSelector(param)
		case param.Name == ps.cfg.GIModeParam:
			ps.deferRenderSettings(param)
		default:
			ps.set(param.Name, ps.host.Field(KindFloat, label, cur, FieldOptions{}))
		}

	case KindRange:
		lim := ps.res.RangeLimits(param)
		if override.Name == OverrideIntRange {
			lo, hi := int(lim.Min), int(lim.Max)
			n := clampInt(int(cur.Number()), lo, hi)
			n = ps.host.IntSlider(label, n, lo, hi)
			ps.set(param.Name, withNumber(cur, float64(n)))
			return
		}
		// Stored values outside the limits are shown clamped but only
		// written back once the slider moves.
		shown := lim.Clamp(cur.Number())
		if f := ps.host.Slider(label, shown, lim.Min, lim.Max); f != shown {
			ps.set(param.Name, withNumber(cur, f))
		}

	case KindInt:
		ps.set(param.Name, ps.host.Field(KindInt, label, cur, FieldOptions{}))

	case KindColor:
		ps.set(param.Name, ps.host.Field(KindColor, label, cur, FieldOptions{}))

	case KindTexture:
		opts := FieldOptions{ScaleOffset: param.Flags&FlagNoScaleOffset == 0}
		ps.set(param.Name, ps.host.Field(KindTexture, label, cur, opts))

	case KindVector:
		n := 4
		switch override.Name {
		case OverrideVector2:
			n = 2
		case OverrideVector3:
			n = 3
		}
		out := ps.host.Field(KindVector, label, cur, FieldOptions{Components: n})
		merged := cur
		merged.Kind = KindVector
		for i := 0; i < n; i++ {
			merged.Vector = merged.Vector.WithComponent(i, out.Vector.Component(i))
		}
		ps.set(param.Name, merged)

	default:
		ps.stats.Unsupported++
		ps.log.Debug("unsupported parameter kind", "param", param.Name, "kind", param.Kind.String())
		ps.host.Label(label + " (Unsupported property type)")
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
