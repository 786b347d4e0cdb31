package shadergui

import (
	"strconv"
	"strings"
)

// LayoutKind identifies the control a LayoutNode records.
type LayoutKind uint8

const (
	LayoutRoot LayoutKind = iota
	LayoutSection
	LayoutFoldout
	LayoutGroup
	LayoutField
	LayoutSlider
	LayoutPopup
	LayoutToggle
	LayoutBanner
	LayoutSpace
	LayoutLabel
)

var layoutKindNames = [...]string{
	"Root", "Section", "Foldout", "Group", "Field", "Slider", "Popup",
	"Toggle", "Banner", "Space", "Label",
}

func (k LayoutKind) String() string {
	if int(k) < len(layoutKindNames) {
		return layoutKindNames[k]
	}
	return "LayoutKind(" + strconv.Itoa(int(k)) + ")"
}

// LayoutNode is one recorded control. Sections and open foldouts hold the
// controls drawn inside them as Children.
type LayoutNode struct {
	Kind    LayoutKind
	Label   string
	Value   Value    // Field: the value drawn
	Number  float64  // Slider value, Space height
	Min     float64  // Slider bounds
	Max     float64  //
	Index   int      // Popup selection
	Options []string // Popup options
	On      bool     // Toggle state, Foldout open
	Opts    FieldOptions
	Indent  int

	Children []*LayoutNode
	parent   *LayoutNode
}

// Find returns the first node labelled label in depth-first order, or nil.
func (n *LayoutNode) Find(label string) *LayoutNode {
	if n == nil {
		return nil
	}
	if n.Kind != LayoutRoot && n.Label == label {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(label); f != nil {
			return f
		}
	}
	return nil
}

// Labels returns "Kind Label" for n's children, without descending.
func (n *LayoutNode) Labels() []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Kind.String() + " " + c.Label
	}
	return out
}

type injectedEdit struct {
	kind  LayoutKind
	label string
	value Value
	num   float64
	index int
	on    bool
}

// LayoutRecorder is a Host that draws nothing. It records the layout tree
// a pass produces and returns queued synthetic edits in place of user input,
// which makes it the test double for inspector passes. Each queued edit is
// consumed by the first matching control, then discarded.
type LayoutRecorder struct {
	root    LayoutNode
	cur     *LayoutNode
	indent  int
	pending []injectedEdit
}

// NewLayoutRecorder returns an empty recorder.
func NewLayoutRecorder() *LayoutRecorder {
	r := &LayoutRecorder{}
	r.Reset()
	return r
}

// Reset discards the recorded tree. Pending edits are kept.
func (r *LayoutRecorder) Reset() {
	r.root = LayoutNode{Kind: LayoutRoot}
	r.cur = &r.root
	r.indent = 0
}

// Root returns the recorded tree.
func (r *LayoutRecorder) Root() *LayoutNode { return &r.root }

// Find returns the first recorded node labelled label, or nil.
func (r *LayoutRecorder) Find(label string) *LayoutNode { return r.root.Find(label) }

// Pending returns the number of queued edits not yet consumed.
func (r *LayoutRecorder) Pending() int { return len(r.pending) }

// InjectEdit queues a new value for the next Field labelled label.
func (r *LayoutRecorder) InjectEdit(label string, v Value) {
	r.pending = append(r.pending, injectedEdit{kind: LayoutField, label: label, value: v})
}

// InjectToggle queues a new state for the next Toggle or foldout header
// labelled label.
func (r *LayoutRecorder) InjectToggle(label string, on bool) {
	r.pending = append(r.pending, injectedEdit{kind: LayoutToggle, label: label, on: on})
}

// InjectPopup queues a selection for the next Popup labelled label.
func (r *LayoutRecorder) InjectPopup(label string, index int) {
	r.pending = append(r.pending, injectedEdit{kind: LayoutPopup, label: label, index: index})
}

// InjectSlider queues a value for the next Slider labelled label.
func (r *LayoutRecorder) InjectSlider(label string, v float64) {
	r.pending = append(r.pending, injectedEdit{kind: LayoutSlider, label: label, num: v})
}

// InjectIntSlider queues a value for the next IntSlider labelled label.
func (r *LayoutRecorder) InjectIntSlider(label string, v int) {
	r.InjectSlider(label, float64(v))
}

// take pops the first pending edit for kind and label.
func (r *LayoutRecorder) take(kind LayoutKind, label string) (injectedEdit, bool) {
	for i, e := range r.pending {
		if e.kind == kind && e.label == label {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return e, true
		}
	}
	return injectedEdit{}, false
}

func (r *LayoutRecorder) add(n *LayoutNode) *LayoutNode {
	n.Indent = r.indent
	n.parent = r.cur
	r.cur.Children = append(r.cur.Children, n)
	return n
}

// Field implements Host.
func (r *LayoutRecorder) Field(kind ParamKind, label string, v Value, opts FieldOptions) Value {
	if e, ok := r.take(LayoutField, label); ok {
		v = e.value
	}
	r.add(&LayoutNode{Kind: LayoutField, Label: label, Value: v, Opts: opts})
	return v
}

// SectionHeader implements Host.
func (r *LayoutRecorder) SectionHeader(title string) {
	r.add(&LayoutNode{Kind: LayoutSection, Label: title})
}

// ToggleHeader implements Host.
func (r *LayoutRecorder) ToggleHeader(title string, open bool) bool {
	if e, ok := r.take(LayoutToggle, title); ok {
		open = e.on
	}
	r.add(&LayoutNode{Kind: LayoutFoldout, Label: title, On: open})
	return open
}

// Popup implements Host.
func (r *LayoutRecorder) Popup(label string, index int, options []string) int {
	if e, ok := r.take(LayoutPopup, label); ok {
		index = e.index
	}
	r.add(&LayoutNode{Kind: LayoutPopup, Label: label, Index: index, Options: options})
	return index
}

// HelpBox implements Host.
func (r *LayoutRecorder) HelpBox(text string) {
	r.add(&LayoutNode{Kind: LayoutBanner, Label: text})
}

// BeginGroup implements Host. The last recorded section or foldout becomes
// the container of the controls that follow; without one an anonymous
// group is opened.
func (r *LayoutRecorder) BeginGroup() {
	var last *LayoutNode
	if n := len(r.cur.Children); n > 0 {
		last = r.cur.Children[n-1]
	}
	if last == nil || (last.Kind != LayoutSection && last.Kind != LayoutFoldout) || len(last.Children) > 0 {
		last = r.add(&LayoutNode{Kind: LayoutGroup})
	}
	r.cur = last
}

// EndGroup implements Host. Unbalanced calls are ignored.
func (r *LayoutRecorder) EndGroup() {
	if r.cur.parent != nil {
		r.cur = r.cur.parent
	}
}

// Slider implements Host.
func (r *LayoutRecorder) Slider(label string, v, min, max float64) float64 {
	if e, ok := r.take(LayoutSlider, label); ok {
		v = e.num
	}
	r.add(&LayoutNode{Kind: LayoutSlider, Label: label, Number: v, Min: min, Max: max})
	return v
}

// IntSlider implements Host.
func (r *LayoutRecorder) IntSlider(label string, v, min, max int) int {
	return int(r.Slider(label, float64(v), float64(min), float64(max)))
}

// Toggle implements Host.
func (r *LayoutRecorder) Toggle(label string, v bool) bool {
	if e, ok := r.take(LayoutToggle, label); ok {
		v = e.on
	}
	r.add(&LayoutNode{Kind: LayoutToggle, Label: label, On: v})
	return v
}

// Space implements Host.
func (r *LayoutRecorder) Space(h float64) {
	r.add(&LayoutNode{Kind: LayoutSpace, Number: h})
}

// Label implements Host.
func (r *LayoutRecorder) Label(text string) {
	r.add(&LayoutNode{Kind: LayoutLabel, Label: text})
}

// Indent implements Host.
func (r *LayoutRecorder) Indent(delta int) {
	r.indent += delta
	if r.indent < 0 {
		r.indent = 0
	}
}

// Outline returns one line per recorded node, indented two spaces per
// nesting level.
func (r *LayoutRecorder) Outline() []string {
	var out []string
	var walk func(n *LayoutNode, depth int)
	walk = func(n *LayoutNode, depth int) {
		for _, c := range n.Children {
			out = append(out, strings.Repeat("  ", depth)+c.describe())
			walk(c, depth+1)
		}
	}
	walk(&r.root, 0)
	return out
}

func (r *LayoutRecorder) String() string { return strings.Join(r.Outline(), "\n") }

func (n *LayoutNode) describe() string {
	switch n.Kind {
	case LayoutField:
		return "Field " + n.Label + " = " + n.Value.String()
	case LayoutSlider:
		return "Slider " + n.Label + " = " + ftoa(n.Number)
	case LayoutPopup:
		sel := strconv.Itoa(n.Index)
		if n.Index >= 0 && n.Index < len(n.Options) {
			sel = n.Options[n.Index]
		}
		return "Popup " + n.Label + " = " + sel
	case LayoutToggle:
		return "Toggle " + n.Label + " = " + strconv.FormatBool(n.On)
	case LayoutFoldout:
		if n.On {
			return "Foldout " + n.Label + " [open]"
		}
		return "Foldout " + n.Label + " [closed]"
	case LayoutSpace:
		return "Space " + ftoa(n.Number)
	case LayoutGroup:
		return "Group"
	}
	return n.Kind.String() + " " + n.Label
}
