package shadergui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// Inspector configures the inspector; zero fields take defaults.
	Inspector Config
	// Style configures the panel; a zero Width takes DefaultStyle.
	Style Style
	// Background fills the preview area.
	Background Color
	// OnEdit runs after a frame in which the inspector changed the material.
	OnEdit func(*Material)
}

// DefaultRunConfig returns a 960x600 window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "shadergui",
		Width:      960,
		Height:     600,
		Inspector:  DefaultConfig(),
		Style:      DefaultStyle(),
		Background: Color{0.08, 0.08, 0.1, 1},
	}
}

type runGame struct {
	cfg   RunConfig
	mat   *Material
	host  *EbitenHost
	insp  *Inspector
	panel *ebiten.Image
}

// Run opens a window with an inspector panel for mat on the left and a live
// preview of mat on the right. It blocks until the window closes.
func Run(mat *Material, cfg RunConfig) error {
	if mat == nil {
		return errors.New("shadergui: Run needs a material")
	}
	d := DefaultRunConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.Title == "" {
		cfg.Title = d.Title
	}
	if cfg.Style.Width <= 0 {
		cfg.Style = d.Style
	}
	host, err := NewEbitenHost(cfg.Style)
	if err != nil {
		return err
	}
	g := &runGame{
		cfg:  cfg,
		mat:  mat,
		host: host,
		insp: NewInspector(host, cfg.Inspector),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("shadergui: run: %w", err)
	}
	return nil
}

func (g *runGame) Update() error {
	w, h := int(g.cfg.Style.Width), g.cfg.Height
	if g.panel == nil || g.panel.Bounds().Dx() != w || g.panel.Bounds().Dy() != h {
		g.panel = ebiten.NewImage(w, h)
	}
	g.panel.Clear()
	g.host.Begin(g.panel, Vec2{})
	g.insp.Render(g.mat)
	if g.mat.Dirty() {
		if g.cfg.OnEdit != nil {
			g.cfg.OnEdit(g.mat)
		}
		g.mat.ClearDirty()
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	bg := g.cfg.Background
	screen.Fill(color.NRGBA{
		R: uint8(bg.R * 255), G: uint8(bg.G * 255), B: uint8(bg.B * 255), A: uint8(bg.A * 255),
	})
	if g.panel != nil {
		screen.DrawImage(g.panel, nil)
	}
	pw := g.cfg.Style.Width
	size := min(float64(g.cfg.Width)-pw, float64(g.cfg.Height)) * 0.7
	g.mat.DrawPreview(screen, Rect{
		X:      pw + (float64(g.cfg.Width)-pw-size)/2,
		Y:      (float64(g.cfg.Height) - size) / 2,
		Width:  size,
		Height: size,
	})
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			int(pw)+4, 4)
	}
}

func (g *runGame) Layout(int, int) (int, int) { return g.cfg.Width, g.cfg.Height }
