package shadergui

import (
	"math"
	"testing"
)

func giParam() Parameter {
	return Parameter{Name: "_GIMode", DisplayName: "Global Illumination", Kind: KindFloat}
}

func TestGIFlagsForSelector(t *testing.T) {
	tests := []struct {
		v    float64
		want GIFlags
		ok   bool
	}{
		{0, GINone, true},
		{1, GIBakedEmissive, true},
		{2, GIRealtimeEmissive, true},
		{3, GIEmissiveIsBlack, true},
		{4, GINone, false},
		{-1, GINone, false},
		{1.5, GINone, false},
		{math.Inf(1), GINone, false},
		{math.Inf(-1), GINone, false},
		{math.NaN(), GINone, false},
	}
	for _, tt := range tests {
		got, ok := GIFlagsForSelector(tt.v)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GIFlagsForSelector(%v) = %v, %v; want %v, %v", tt.v, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRenderSettingsDeferredToRegionClose(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "Header(Lighting)"),
		giParam(),
		floatParam("b"),
		floatParam("c", "HeaderEnd"),
	)
	checkOutline(t, []string{
		"Section Lighting",
		"  Field a = 0",
		"  Field b = 0",
		"  Space 8",
		"  Field Render Queue = -1",
		"  Toggle Enable GPU Instancing = false",
		"  Popup Global Illumination = None",
		"Field c = 0",
	}, r.pass())
	if st := r.insp.LastPass(); st.SettingsBlocks != 1 {
		t.Errorf("SettingsBlocks = %d, want 1", st.SettingsBlocks)
	}
}

func TestRenderSettingsAtTopLevelWaitsForEnd(t *testing.T) {
	r := newRig(Config{},
		giParam(),
		floatParam("a", "Header(H)"),
		floatParam("b", "HeaderEnd"),
	)
	checkOutline(t, []string{
		"Section H",
		"  Field a = 0",
		"Field b = 0",
		"Space 8",
		"Field Render Queue = -1",
		"Toggle Enable GPU Instancing = false",
		"Popup Global Illumination = None",
	}, r.pass())
}

func TestRenderSettingsFlushedWhenRegionOpenAtEnd(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "Foldout(F)"),
		giParam(),
	)
	r.rec.InjectToggle("F", true)
	checkOutline(t, []string{
		"Foldout F [open]",
		"  Field a = 0",
		"  Space 8",
		"  Field Render Queue = -1",
		"  Toggle Enable GPU Instancing = false",
		"  Popup Global Illumination = None",
	}, r.pass())
	if st := r.insp.LastPass(); st.SettingsBlocks != 1 {
		t.Errorf("SettingsBlocks = %d, want 1", st.SettingsBlocks)
	}
}

func TestRenderSettingsHeader(t *testing.T) {
	r := newRig(Config{},
		floatParam("a", "Header(RenderSettings)"),
		floatParam("b", "HeaderEnd"),
	)
	checkOutline(t, []string{
		"Section RenderSettings",
		"  Field a = 0",
		"  Space 8",
		"  Field Render Queue = -1",
		"  Toggle Enable GPU Instancing = false",
		"Field b = 0",
	}, r.pass())
}

func TestRenderSettingsEdits(t *testing.T) {
	r := newRig(Config{}, giParam())
	r.rec.InjectPopup("Global Illumination", 2)
	r.rec.InjectEdit("Render Queue", IntValue(3100))
	r.rec.InjectToggle("Enable GPU Instancing", true)
	r.pass()

	if got := r.mat.GIFlags(); got != GIRealtimeEmissive {
		t.Errorf("GIFlags = %v, want RealtimeEmissive", got)
	}
	if got := r.mat.Value("_GIMode").Float; got != 2 {
		t.Errorf("_GIMode = %v, want 2", got)
	}
	if r.mat.RenderQueue() != 3100 || !r.mat.Instancing() {
		t.Errorf("queue %d instancing %v", r.mat.RenderQueue(), r.mat.Instancing())
	}
	if !r.mat.Dirty() {
		t.Error("expected dirty")
	}
}

func TestRenderSettingsOutOfRangeSelectorLeavesFlags(t *testing.T) {
	r := newRig(Config{}, giParam())
	r.mat.SetGIFlags(GIBakedEmissive)
	r.mat.SetValue("_GIMode", FloatValue(9))
	r.pass()
	if got := r.mat.GIFlags(); got != GIBakedEmissive {
		t.Errorf("GIFlags = %v, want unchanged BakedEmissive", got)
	}
	if r.mat.Dirty() {
		t.Error("out-of-range selector should not dirty the material")
	}
}

func TestGIFlagsString(t *testing.T) {
	if GIEmissiveIsBlack.String() != "EmissiveIsBlack" || GIFlags(3).String() != "GIFlags(3)" {
		t.Error("GIFlags String mismatch")
	}
}
