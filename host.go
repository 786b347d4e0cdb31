package shadergui

// FieldOptions constrains how Host.Field draws a value.
type FieldOptions struct {
	// Components is the number of vector components shown (2, 3 or 4).
	// Zero means all four.
	Components int
	// ScaleOffset shows the tiling scale/offset sub-fields of a texture slot.
	ScaleOffset bool
}

// Host is the immediate-mode drawing surface the inspector renders into.
// Every call draws one control at the host's layout cursor and returns the
// value after any user edit made this frame. Implementations are not
// expected to be safe for concurrent use.
type Host interface {
	// Field draws an editable field for kind and returns the edited value.
	Field(kind ParamKind, label string, v Value, opts FieldOptions) Value
	// SectionHeader draws the title bar of an always-open section.
	SectionHeader(title string)
	// ToggleHeader draws a collapsible section title and returns its open state.
	ToggleHeader(title string, open bool) bool
	// Popup draws an enumerated picker and returns the selected index.
	Popup(label string, index int, options []string) int
	// HelpBox draws an informational banner.
	HelpBox(text string)
	// BeginGroup and EndGroup bracket the body of a section.
	BeginGroup()
	EndGroup()
	// Slider draws a continuous slider over [min, max].
	Slider(label string, v, min, max float64) float64
	// IntSlider draws an integer-stepped slider over [min, max].
	IntSlider(label string, v, min, max int) int
	// Toggle draws a checkbox.
	Toggle(label string, v bool) bool
	// Space inserts a vertical gap.
	Space(height float64)
	// Label draws read-only text.
	Label(text string)
	// Indent shifts following controls by delta indentation levels.
	Indent(delta int)
}
