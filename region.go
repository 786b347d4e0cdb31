package shadergui

// ScopeKind distinguishes the two region types.
type ScopeKind uint8

const (
	ScopeHeader  ScopeKind = iota // always-open section
	ScopeFoldout                  // collapsible section
)

func (k ScopeKind) String() string {
	if k == ScopeFoldout {
		return "Foldout"
	}
	return "Header"
}

// Scope is one open region. Index is the position of the parameter that
// declared it.
type Scope struct {
	Kind  ScopeKind
	Title string
	Open  bool
	Index int
}

// RegionStack tracks the Header/Foldout regions of one render pass and decides
// which parameters are visible. Only one region is active at a time: opening a
// region first closes the one that is open. A fresh stack is built for every
// pass; foldout flags live in the FoldoutStore it is given.
//
// The hooks carry the drawing side effects. OnOpen runs after a region is
// pushed, OnClose after it is popped. Toggle draws the foldout header and
// returns its new open state; when nil the stored state is kept.
type RegionStack struct {
	OnOpen  func(Scope)
	OnClose func(Scope)
	Toggle  func(title string, open bool) bool

	store        *FoldoutStore
	scopes       []Scope
	topLevel     bool
	foldoutIndex int
}

// NewRegionStack returns a stack at top level with no region open.
func NewRegionStack(store *FoldoutStore) *RegionStack {
	if store == nil {
		store = &FoldoutStore{}
	}
	return &RegionStack{
		store:        store,
		topLevel:     true,
		foldoutIndex: -1,
	}
}

// Apply runs a scope directive declared by the parameter at index. It
// reports false for non-scope directives, which it ignores.
func (r *RegionStack) Apply(d Directive, index int) bool {
	switch d.Kind {
	case DirectiveHeader:
		r.Header(d.Arg, index)
	case DirectiveHeaderEnd:
		r.HeaderEnd()
	case DirectiveFoldout:
		r.Foldout(d.Arg, index)
	case DirectiveFoldoutEnd:
		r.FoldoutEnd(index)
	default:
		return false
	}
	return true
}

// Header closes the open region and opens an always-open section.
func (r *RegionStack) Header(title string, index int) {
	r.Close()
	r.push(Scope{Kind: ScopeHeader, Title: title, Open: true, Index: index})
	r.topLevel = false
}

// HeaderEnd closes the open region, if any, and returns to top level.
func (r *RegionStack) HeaderEnd() {
	r.Close()
	r.topLevel = true
}

// Foldout closes the open region and draws a collapsible header bound to the
// stored flag for index. An open foldout becomes the active region; a closed
// one hides the following parameters until the matching FoldoutEnd.
func (r *RegionStack) Foldout(title string, index int) {
	r.Close()
	open := r.store.Open(index)
	if r.Toggle != nil {
		open = r.Toggle(title, open)
	}
	r.store.SetOpen(index, open)
	if open {
		r.push(Scope{Kind: ScopeFoldout, Title: title, Open: true, Index: index})
	} else {
		r.topLevel = false
	}
	r.foldoutIndex = index
}

// FoldoutEnd closes the open region when a foldout between the last declared
// one and index is open, and returns to top level. Without a preceding
// Foldout in this pass it is a no-op.
func (r *RegionStack) FoldoutEnd(index int) {
	if r.foldoutIndex < 0 {
		return
	}
	if r.store.AnyOpen(r.foldoutIndex, index) {
		r.Close()
	}
	r.topLevel = true
}

// Close pops the open region, running OnClose. Closing with nothing open is
// a no-op.
func (r *RegionStack) Close() {
	n := len(r.scopes)
	if n == 0 {
		return
	}
	s := r.scopes[n-1]
	r.scopes = r.scopes[:n-1]
	r.topLevel = true
	if r.OnClose != nil {
		r.OnClose(s)
	}
}

func (r *RegionStack) push(s Scope) {
	r.scopes = append(r.scopes, s)
	if r.OnOpen != nil {
		r.OnOpen(s)
	}
}

// Visible reports whether a parameter declared now is drawn: a region is open
// or the stack is at top level.
func (r *RegionStack) Visible() bool {
	return len(r.scopes) > 0 || r.topLevel
}

// TopLevel reports whether no region suppresses default visibility.
func (r *RegionStack) TopLevel() bool { return r.topLevel }

// Depth returns the number of open regions.
func (r *RegionStack) Depth() int { return len(r.scopes) }

// Current returns the open region.
func (r *RegionStack) Current() (Scope, bool) {
	if len(r.scopes) == 0 {
		return Scope{}, false
	}
	return r.scopes[len(r.scopes)-1], true
}
