package shadergui

// Resource is the configurable rendering asset whose parameters the inspector
// edits. The resource owns its parameters and their values; the inspector
// reads declarations and writes values through this interface only.
type Resource interface {
	// Parameters returns the declared parameters in declaration order.
	Parameters() []Parameter
	// Annotations returns the raw annotation strings of p in declaration order.
	Annotations(p Parameter) []string
	// Value returns the current value of the named parameter.
	Value(name string) Value
	// SetValue stores a new value for the named parameter.
	SetValue(name string, v Value)
	// RangeLimits returns the declared [min, max] of a Range parameter.
	RangeLimits(p Parameter) Range

	EnableKeyword(keyword string)
	DisableKeyword(keyword string)

	// RenderQueue returns the render queue; -1 means the shader's own queue.
	RenderQueue() int
	SetRenderQueue(queue int)
	// SetOverrideTag sets a shader tag override such as RenderType.
	SetOverrideTag(key, value string)

	Instancing() bool
	SetInstancing(enabled bool)

	GIFlags() GIFlags
	SetGIFlags(flags GIFlags)
}

// Dirtier is implemented by resources that want to know a render pass
// changed them.
type Dirtier interface {
	SetDirty()
}
