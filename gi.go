package shadergui

import (
	"math"
	"strconv"
)

// GIFlags selects how a material's emission contributes to global
// illumination. The values are mutually exclusive.
type GIFlags uint8

const (
	GINone             GIFlags = 0
	GIRealtimeEmissive GIFlags = 1 << 0
	GIBakedEmissive    GIFlags = 1 << 1
	GIEmissiveIsBlack  GIFlags = 1 << 2
)

func (f GIFlags) String() string {
	switch f {
	case GINone:
		return "None"
	case GIRealtimeEmissive:
		return "RealtimeEmissive"
	case GIBakedEmissive:
		return "BakedEmissive"
	case GIEmissiveIsBlack:
		return "EmissiveIsBlack"
	}
	return "GIFlags(" + strconv.Itoa(int(f)) + ")"
}

// giSelector maps the global-illumination selector value (0..3) to flags.
var giSelector = [...]GIFlags{GINone, GIBakedEmissive, GIRealtimeEmissive, GIEmissiveIsBlack}

var giSelectorNames = []string{"None", "Baked Emissive", "Realtime Emissive", "Emissive Is Black"}

// GIFlagsForSelector returns the flags selected by a global-illumination
// selector value. Only the integers 0 through 3 are valid.
func GIFlagsForSelector(v float64) (GIFlags, bool) {
	if v != math.Trunc(v) || !inIndexRange(v, len(giSelector)) {
		return GINone, false
	}
	return giSelector[int(v)], true
}

// deferRenderSettings records the global-illumination selector so it is drawn
// with the render-settings block when its region closes.
func (ps *pass) deferRenderSettings(param Parameter) {
	ps.giParam = &param
	ps.settingsPending = true
	ps.settingsAtTop = ps.regions.Depth() == 0
}

// flushRenderSettings draws the pending render-settings block: render queue,
// GPU instancing and, when one was deferred, the global-illumination
// selector. It draws at most once per scheduling. A block deferred outside
// any region waits for the end of the list.
func (ps *pass) flushRenderSettings(endOfList bool) {
	if !ps.settingsPending || (ps.settingsAtTop && !endOfList) {
		return
	}
	ps.settingsPending = false
	ps.settingsAtTop = false
	ps.stats.SettingsBlocks++

	ps.host.Space(ps.cfg.DefaultSpace)
	q := ps.res.RenderQueue()
	if v := ps.host.Field(KindInt, "Render Queue", IntValue(q), FieldOptions{}); v.Int != q {
		ps.res.SetRenderQueue(v.Int)
		ps.changed = true
	}
	inst := ps.res.Instancing()
	if v := ps.host.Toggle("Enable GPU Instancing", inst); v != inst {
		ps.res.SetInstancing(v)
		ps.changed = true
	}

	if ps.giParam == nil {
		return
	}
	param := *ps.giParam
	ps.giParam = nil

	cur := ps.res.Value(param.Name)
	shown := clampIndex(cur.Number(), len(giSelectorNames))
	if idx := ps.host.Popup(param.Label(), shown, giSelectorNames); idx != shown && idx >= 0 && idx < len(giSelectorNames) {
		ps.set(param.Name, withNumber(cur, float64(idx)))
	}
	ps.applyGIMode(param)
}

// applyGIMode sets the resource's GI flags from the selector's current value.
func (ps *pass) applyGIMode(param Parameter) {
	n := ps.res.Value(param.Name).Number()
	flags, ok := GIFlagsForSelector(n)
	if !ok {
		ps.log.Warn("global illumination selector out of range, flags left unchanged",
			"param", param.Name, "value", n)
		return
	}
	if ps.res.GIFlags() != flags {
		ps.res.SetGIFlags(flags)
		ps.changed = true
	}
}
