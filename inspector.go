package shadergui

import (
	"log/slog"
	"time"
)

// Config controls which parameters the inspector treats specially and how
// much space it inserts. Zero fields take the DefaultConfig value.
type Config struct {
	// BlendModeParam names the Float parameter drawn as the blend preset popup.
	BlendModeParam string `yaml:"blendModeParam"`
	// GIModeParam names the Float parameter drawn in the render-settings block.
	GIModeParam string `yaml:"giModeParam"`
	// RenderSettingsHeader is the Header title that schedules the
	// render-settings block even without a GI parameter.
	RenderSettingsHeader string `yaml:"renderSettingsHeader"`
	// DefaultSpace is the height of a bare Space annotation.
	DefaultSpace float64 `yaml:"defaultSpace"`
	// BlendSpace is the gap drawn above the blend popup.
	BlendSpace float64 `yaml:"blendSpace"`
	// Debug logs per-pass statistics at debug level.
	Debug bool `yaml:"debug"`
	// Logger overrides the package logger for this inspector.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		BlendModeParam:       "_blendMode",
		GIModeParam:          "_GIMode",
		RenderSettingsHeader: "RenderSettings",
		DefaultSpace:         8,
		BlendSpace:           10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BlendModeParam == "" {
		c.BlendModeParam = d.BlendModeParam
	}
	if c.GIModeParam == "" {
		c.GIModeParam = d.GIModeParam
	}
	if c.RenderSettingsHeader == "" {
		c.RenderSettingsHeader = d.RenderSettingsHeader
	}
	if c.DefaultSpace <= 0 {
		c.DefaultSpace = d.DefaultSpace
	}
	if c.BlendSpace <= 0 {
		c.BlendSpace = d.BlendSpace
	}
	return c
}

// Inspector renders the parameters of one resource into a Host, once per
// redraw. It owns the foldout flags of that editing session; everything else
// is rebuilt on every pass.
type Inspector struct {
	host     Host
	cfg      Config
	foldouts FoldoutStore
	last     PassStats
}

// NewInspector creates an inspector drawing into host.
func NewInspector(host Host, cfg Config) *Inspector {
	return &Inspector{host: host, cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (in *Inspector) Config() Config { return in.cfg }

// FoldoutOpen reports the stored flag of the foldout declared at index.
func (in *Inspector) FoldoutOpen(index int) bool { return in.foldouts.Open(index) }

// SetFoldoutOpen stores the flag of the foldout declared at index. It has no
// effect before the first pass sizes the store.
func (in *Inspector) SetFoldoutOpen(index int, open bool) { in.foldouts.SetOpen(index, open) }

// LastPass returns the statistics of the most recent Render call.
func (in *Inspector) LastPass() PassStats { return in.last }

// pass is the transient state of one Render call.
type pass struct {
	cfg     Config
	host    Host
	res     Resource
	log     *slog.Logger
	regions *RegionStack

	settingsPending bool
	settingsAtTop   bool
	giParam         *Parameter
	changed         bool
	stats           PassStats
}

// Render draws every parameter of res in declaration order and commits user
// edits back to it. Nothing in a pass is fatal: bad annotations are dropped,
// unbalanced region ends are ignored and unsupported kinds render a label.
func (in *Inspector) Render(res Resource) {
	start := time.Now()
	params := res.Parameters()
	in.foldouts.Resize(len(params))

	log := in.cfg.Logger
	if log == nil {
		log = Logger()
	}
	ps := &pass{cfg: in.cfg, host: in.host, res: res, log: log}
	ps.regions = NewRegionStack(&in.foldouts)
	ps.regions.Toggle = in.host.ToggleHeader
	ps.regions.OnOpen = ps.openRegion
	ps.regions.OnClose = ps.closeRegion
	ps.stats.Parameters = len(params)

	for i, param := range params {
		if param.Flags&FlagHideInInspector != 0 {
			ps.stats.Hidden++
			continue
		}
		ds, errs := ParseDirectives(res.Annotations(param))
		for _, err := range errs {
			ps.stats.Dropped++
			log.Debug("annotation dropped", "param", param.Name, "err", err)
		}
		for _, d := range ds {
			if !ps.regions.Apply(d, i) {
				ps.decorate(d)
			}
		}
		if !ps.regions.Visible() {
			ps.stats.Suppressed++
			continue
		}
		ps.stats.Drawn++
		ps.drawParameter(param, ds)
	}
	ps.regions.Close()
	ps.flushRenderSettings(true)

	if ps.changed {
		if d, ok := res.(Dirtier); ok {
			d.SetDirty()
		}
	}
	ps.stats.Changed = ps.changed
	ps.stats.Duration = time.Since(start)
	in.last = ps.stats
	if in.cfg.Debug {
		ps.stats.log(log)
	}
}

// set writes v when it differs from the stored value.
func (ps *pass) set(name string, v Value) {
	if ps.res.Value(name) == v {
		return
	}
	ps.res.SetValue(name, v)
	ps.changed = true
}

// decorate draws Space and Text directives when the parameter declaring
// them is visible at that point.
func (ps *pass) decorate(d Directive) {
	if !ps.regions.Visible() {
		return
	}
	switch d.Kind {
	case DirectiveSpace:
		h := ps.cfg.DefaultSpace
		if d.HasArg {
			h = d.Height
		}
		ps.host.Space(h)
	case DirectiveText:
		ps.host.HelpBox(d.Arg)
	}
}

func (ps *pass) openRegion(s Scope) {
	if s.Kind == ScopeHeader {
		if s.Title == ps.cfg.RenderSettingsHeader {
			ps.settingsPending = true
			ps.settingsAtTop = false
		}
		ps.host.SectionHeader(s.Title)
	}
	ps.host.BeginGroup()
}

func (ps *pass) closeRegion(Scope) {
	ps.flushRenderSettings(false)
	ps.host.EndGroup()
}
