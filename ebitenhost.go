package shadergui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// Style sizes and colors an EbitenHost panel.
type Style struct {
	Width       float64 // panel width
	RowHeight   float64
	LabelWidth  float64 // left column holding labels
	IndentWidth float64
	FontSize    float64
	Padding     float64

	Background Color
	Text       Color
	Muted      Color
	Cell       Color
	Active     Color
	Accent     Color
	Banner     Color

	// FoldDuration is the foldout arrow animation time in seconds.
	FoldDuration float32
}

// DefaultStyle returns a dark editor-like style.
func DefaultStyle() Style {
	return Style{
		Width:        360,
		RowHeight:    22,
		LabelWidth:   140,
		IndentWidth:  14,
		FontSize:     13,
		Padding:      8,
		Background:   Color{0.16, 0.16, 0.17, 1},
		Text:         Color{0.9, 0.9, 0.9, 1},
		Muted:        Color{0.6, 0.6, 0.62, 1},
		Cell:         Color{0.24, 0.24, 0.26, 1},
		Active:       Color{0.3, 0.45, 0.7, 1},
		Accent:       Color{0.36, 0.55, 0.85, 1},
		Banner:       Color{0.22, 0.26, 0.3, 1},
		FoldDuration: 0.15,
	}
}

// Pointer is the mouse state an EbitenHost frame reacts to.
type Pointer struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Shift        bool
}

// PollPointer reads the current Ebitengine mouse state.
func PollPointer() Pointer {
	mx, my := ebiten.CursorPosition()
	return Pointer{
		X:            float64(mx),
		Y:            float64(my),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Shift:        ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// arrow is the animated rotation of one foldout header arrow.
type arrow struct {
	angle float64
	tween *gween.Tween
}

// EbitenHost is an immediate-mode Host drawing onto an ebiten.Image. Call
// Begin once per tick before the inspector renders, from Update rather than
// Draw so pointer edges are seen exactly once.
type EbitenHost struct {
	Style Style

	dst    *ebiten.Image
	face   *text.GoTextFace
	ptr    Pointer
	origin Vec2
	y      float64
	indent int

	seen   map[string]int
	active string
	lastX  float64
	arrows map[string]*arrow
}

// NewEbitenHost loads the Go Regular face and returns a host using style.
func NewEbitenHost(style Style) (*EbitenHost, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("shadergui: failed to parse font: %w", err)
	}
	return &EbitenHost{
		Style:  style,
		face:   &text.GoTextFace{Source: src, Size: style.FontSize},
		seen:   make(map[string]int),
		arrows: make(map[string]*arrow),
	}, nil
}

// Begin starts a frame on dst at origin, polling the mouse.
func (h *EbitenHost) Begin(dst *ebiten.Image, origin Vec2) {
	h.BeginWithPointer(dst, origin, PollPointer())
}

// BeginWithPointer starts a frame with an explicit pointer state. dt for the
// arrow animations is one tick.
func (h *EbitenHost) BeginWithPointer(dst *ebiten.Image, origin Vec2, p Pointer) {
	h.dst = dst
	h.ptr = p
	h.origin = origin
	h.y = origin.Y + h.Style.Padding
	h.indent = 0
	clear(h.seen)
	if h.active != "" && !p.Pressed && !p.JustPressed {
		h.active = ""
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, a := range h.arrows {
		if a.tween == nil {
			continue
		}
		v, done := a.tween.Update(dt)
		a.angle = float64(v)
		if done {
			a.tween = nil
		}
	}
	if dst != nil {
		h.fill(Rect{origin.X, origin.Y, h.Style.Width, float64(dst.Bounds().Dy())}, h.Style.Background)
	}
}

// Height returns how far the current frame's content extends below the
// origin.
func (h *EbitenHost) Height() float64 { return h.y - h.origin.Y + h.Style.Padding }

// --- layout ---

func (h *EbitenHost) left() float64 {
	return h.origin.X + h.Style.Padding + float64(h.indent)*h.Style.IndentWidth
}

func (h *EbitenHost) right() float64 { return h.origin.X + h.Style.Width - h.Style.Padding }

// row reserves one row and returns its full and control rectangles.
func (h *EbitenHost) row() (full, ctrl Rect) {
	full = Rect{h.left(), h.y, h.right() - h.left(), h.Style.RowHeight}
	cx := math.Max(h.origin.X+h.Style.LabelWidth, full.X)
	ctrl = Rect{cx, h.y + 2, h.right() - cx, h.Style.RowHeight - 4}
	h.y += h.Style.RowHeight
	return full, ctrl
}

// id returns a per-frame unique control id for label.
func (h *EbitenHost) id(label string) string {
	n := h.seen[label]
	h.seen[label] = n + 1
	return label + "#" + strconv.Itoa(n)
}

// --- drawing ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

func (h *EbitenHost) fill(r Rect, c Color) {
	if h.dst == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	h.dst.DrawImage(ensureWhitePixel(), &op)
}

func (h *EbitenHost) drawText(s string, x, y float64, c Color) {
	if h.dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y+(h.Style.RowHeight-h.Style.FontSize)/2-2)
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.LineSpacing = h.Style.RowHeight
	text.Draw(h.dst, s, h.face, op)
}

// chevron draws a ">" rotated by angle radians around (cx, cy).
func (h *EbitenHost) chevron(cx, cy, angle float64, c Color) {
	if h.dst == nil {
		return
	}
	const arm, thick = 6.0, 2.0
	a := float32(c.A)
	for _, s := range [...]float64{math.Pi / 4, -math.Pi / 4} {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(arm, thick)
		op.GeoM.Translate(-arm, -thick/2)
		op.GeoM.Rotate(s)
		op.GeoM.Translate(arm/2, 0)
		op.GeoM.Rotate(angle)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
		h.dst.DrawImage(ensureWhitePixel(), &op)
	}
}

// --- interaction ---

func (h *EbitenHost) hit(r Rect) bool { return r.Contains(h.ptr.X, h.ptr.Y) }

func (h *EbitenHost) clicked(r Rect) bool { return h.ptr.JustPressed && h.hit(r) }

// scrub edits v by horizontal drags started on r, step units per pixel.
func (h *EbitenHost) scrub(id string, r Rect, v, step float64) float64 {
	if h.clicked(r) {
		h.active = id
		h.lastX = h.ptr.X
	}
	if h.active == id && h.ptr.Pressed {
		if h.ptr.Shift {
			step /= 10
		}
		v = scrubValue(v, h.ptr.X-h.lastX, step)
		h.lastX = h.ptr.X
	}
	bg := h.Style.Cell
	if h.active == id {
		bg = h.Style.Active
	}
	h.fill(r, bg)
	h.drawText(strconv.FormatFloat(v, 'f', 3, 64), r.X+4, r.Y-2, h.Style.Text)
	return v
}

// scrubValue moves v by dx pixels at step units per pixel.
func scrubValue(v, dx, step float64) float64 { return v + dx*step }

// sliderValue maps x inside r onto [min, max].
func sliderValue(x float64, r Rect, min, max float64) float64 {
	if r.Width <= 0 || max <= min {
		return min
	}
	t := (x - r.X) / r.Width
	return min + math.Max(0, math.Min(1, t))*(max-min)
}

// cyclePopup returns the option after index, or before it when back is set,
// wrapping around n options.
func cyclePopup(index, n int, back bool) int {
	if n <= 0 {
		return index
	}
	if back {
		return ((index-1)%n + n) % n
	}
	return ((index+1)%n + n) % n
}

// cells splits r into n equal cells with a 2px gap.
func cells(r Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	w := (r.Width - float64(n-1)*2) / float64(n)
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{r.X + float64(i)*(w+2), r.Y, w, r.Height}
	}
	return out
}

// --- Host ---

// Field implements Host.
func (h *EbitenHost) Field(kind ParamKind, label string, v Value, opts FieldOptions) Value {
	id := h.id(label)
	full, ctrl := h.row()
	h.drawText(label, full.X, full.Y, h.Style.Text)

	switch kind {
	case KindFloat, KindRange:
		v.Float = h.scrub(id, ctrl, v.Float, 0.01)
	case KindInt:
		f := h.scrub(id, ctrl, float64(v.Int), 1)
		v.Int = int(math.Round(f))
	case KindColor:
		cs := cells(ctrl, 5)
		h.fill(cs[0], Color{v.Color.R, v.Color.G, v.Color.B, 1})
		comps := [...]*float64{&v.Color.R, &v.Color.G, &v.Color.B, &v.Color.A}
		for i, p := range comps {
			*p = Range{0, 1}.Clamp(h.scrub(id+"/"+strconv.Itoa(i), cs[i+1], *p, 0.005))
		}
	case KindVector:
		n := opts.Components
		if n < 2 || n > 4 {
			n = 4
		}
		for i, c := range cells(ctrl, n) {
			v.Vector = v.Vector.WithComponent(i, h.scrub(id+"/"+strconv.Itoa(i), c, v.Vector.Component(i), 0.01))
		}
	case KindTexture:
		name := v.Texture.Name
		if name == "" {
			name = "None"
		}
		h.fill(ctrl, h.Style.Cell)
		h.drawText(name, ctrl.X+4, ctrl.Y-2, h.Style.Muted)
		if opts.ScaleOffset {
			t := &v.Texture
			for _, sub := range [...]struct {
				label string
				v     *Vec2
			}{{"Tiling", &t.Scale}, {"Offset", &t.Offset}} {
				full, ctrl := h.row()
				h.drawText(sub.label, full.X+h.Style.IndentWidth, full.Y, h.Style.Muted)
				cs := cells(ctrl, 2)
				sub.v.X = h.scrub(id+"/"+sub.label+"x", cs[0], sub.v.X, 0.01)
				sub.v.Y = h.scrub(id+"/"+sub.label+"y", cs[1], sub.v.Y, 0.01)
			}
		}
	}
	return v
}

// SectionHeader implements Host.
func (h *EbitenHost) SectionHeader(title string) {
	full, _ := h.row()
	h.fill(Rect{full.X, full.Y + full.Height - 2, full.Width, 1}, h.Style.Accent)
	h.drawText(title, full.X, full.Y, h.Style.Accent)
}

// ToggleHeader implements Host. The arrow eases between closed and open;
// headers sharing a title animate independently.
func (h *EbitenHost) ToggleHeader(title string, open bool) bool {
	full, _ := h.row()
	if h.clicked(full) {
		open = !open
	}
	key := h.id(title)
	a, ok := h.arrows[key]
	target := 0.0
	if open {
		target = math.Pi / 2
	}
	if !ok {
		a = &arrow{angle: target}
		h.arrows[key] = a
	} else if a.tween == nil && a.angle != target {
		a.tween = gween.New(float32(a.angle), float32(target), h.Style.FoldDuration, ease.OutQuad)
	}
	h.fill(full, h.Style.Cell)
	h.chevron(full.X+8, full.Y+full.Height/2, a.angle, h.Style.Text)
	h.drawText(title, full.X+18, full.Y, h.Style.Text)
	return open
}

// Popup implements Host. A click selects the next option, shift-click the
// previous one.
func (h *EbitenHost) Popup(label string, index int, options []string) int {
	full, ctrl := h.row()
	h.drawText(label, full.X, full.Y, h.Style.Text)
	if h.clicked(ctrl) {
		index = cyclePopup(index, len(options), h.ptr.Shift)
	}
	h.fill(ctrl, h.Style.Cell)
	if index >= 0 && index < len(options) {
		h.drawText(options[index], ctrl.X+4, ctrl.Y-2, h.Style.Text)
	}
	return index
}

// HelpBox implements Host.
func (h *EbitenHost) HelpBox(msg string) {
	lines := strings.Split(msg, "\n")
	r := Rect{h.left(), h.y, h.right() - h.left(), float64(len(lines)) * h.Style.RowHeight}
	h.fill(r, h.Style.Banner)
	for i, l := range lines {
		h.drawText(l, r.X+6, r.Y+float64(i)*h.Style.RowHeight, h.Style.Text)
	}
	h.y += r.Height + 2
}

// BeginGroup implements Host.
func (h *EbitenHost) BeginGroup() { h.indent++ }

// EndGroup implements Host.
func (h *EbitenHost) EndGroup() {
	if h.indent > 0 {
		h.indent--
	}
}

// Slider implements Host.
func (h *EbitenHost) Slider(label string, v, min, max float64) float64 {
	id := h.id(label)
	full, ctrl := h.row()
	h.drawText(label, full.X, full.Y, h.Style.Text)
	if h.clicked(ctrl) {
		h.active = id
	}
	if h.active == id && h.ptr.Pressed {
		v = sliderValue(h.ptr.X, ctrl, min, max)
	}
	h.fill(ctrl, h.Style.Cell)
	if max > min {
		t := (v - min) / (max - min)
		h.fill(Rect{ctrl.X, ctrl.Y, ctrl.Width * math.Max(0, math.Min(1, t)), ctrl.Height}, h.Style.Active)
	}
	h.drawText(strconv.FormatFloat(v, 'f', 3, 64), ctrl.X+4, ctrl.Y-2, h.Style.Text)
	return v
}

// IntSlider implements Host.
func (h *EbitenHost) IntSlider(label string, v, min, max int) int {
	return int(math.Round(h.Slider(label, float64(v), float64(min), float64(max))))
}

// Toggle implements Host.
func (h *EbitenHost) Toggle(label string, v bool) bool {
	full, ctrl := h.row()
	h.drawText(label, full.X, full.Y, h.Style.Text)
	box := Rect{ctrl.X, ctrl.Y, ctrl.Height, ctrl.Height}
	if h.clicked(box) {
		v = !v
	}
	h.fill(box, h.Style.Cell)
	if v {
		h.fill(Rect{box.X + 3, box.Y + 3, box.Width - 6, box.Height - 6}, h.Style.Accent)
	}
	return v
}

// Space implements Host.
func (h *EbitenHost) Space(height float64) { h.y += height }

// Label implements Host.
func (h *EbitenHost) Label(s string) {
	full, _ := h.row()
	h.drawText(s, full.X, full.Y, h.Style.Muted)
}

// Indent implements Host.
func (h *EbitenHost) Indent(delta int) {
	h.indent += delta
	if h.indent < 0 {
		h.indent = 0
	}
}
