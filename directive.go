package shadergui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DirectiveKind identifies the variant of a parsed annotation.
type DirectiveKind uint8

const (
	DirectiveSpace      DirectiveKind = iota + 1 // vertical gap before the parameter
	DirectiveHeader                              // opens an always-open section
	DirectiveHeaderEnd                           // closes the open section
	DirectiveFoldout                             // opens a collapsible section
	DirectiveFoldoutEnd                          // closes the open collapsible section
	DirectiveText                                // informational banner
	DirectiveOverride                            // widget override, e.g. IntRange or Vector3
)

var directiveKindNames = [...]string{
	DirectiveSpace:      "Space",
	DirectiveHeader:     "Header",
	DirectiveHeaderEnd:  "HeaderEnd",
	DirectiveFoldout:    "Foldout",
	DirectiveFoldoutEnd: "FoldoutEnd",
	DirectiveText:       "Text",
	DirectiveOverride:   "Override",
}

func (k DirectiveKind) String() string {
	if int(k) < len(directiveKindNames) && directiveKindNames[k] != "" {
		return directiveKindNames[k]
	}
	return "DirectiveKind(" + strconv.Itoa(int(k)) + ")"
}

// Directive is one instruction parsed from a raw annotation string.
//
// Arg holds the Header/Foldout title, the Text message or the override
// parameter. Name is the override widget name. Height is the Space height and
// is only meaningful when HasArg is true; a bare "Space" uses the inspector's
// default height.
type Directive struct {
	Kind   DirectiveKind
	Name   string
	Arg    string
	HasArg bool
	Height float64
}

// IsScope reports whether the directive opens or closes a region.
func (d Directive) IsScope() bool {
	switch d.Kind {
	case DirectiveHeader, DirectiveHeaderEnd, DirectiveFoldout, DirectiveFoldoutEnd:
		return true
	}
	return false
}

// String renders the directive back in annotation syntax.
func (d Directive) String() string {
	switch d.Kind {
	case DirectiveSpace:
		if !d.HasArg {
			return "Space"
		}
		return "Space(" + strconv.FormatFloat(d.Height, 'g', -1, 64) + ")"
	case DirectiveHeaderEnd, DirectiveFoldoutEnd:
		return d.Kind.String()
	case DirectiveOverride:
		if !d.HasArg {
			return d.Name
		}
		return d.Name + "(" + d.Arg + ")"
	}
	return d.Kind.String() + "(" + d.Arg + ")"
}

var (
	// ErrNoDirective is returned for annotations that are well formed but
	// produce nothing, such as a Header without a title.
	ErrNoDirective = errors.New("shadergui: annotation produces no directive")
	// ErrMalformed is returned for annotations with broken parentheses or a
	// non-numeric Space height.
	ErrMalformed = errors.New("shadergui: malformed annotation")
)

// ParseDirective parses one raw annotation string. The result depends only on
// raw. On error the annotation is meant to be dropped; the error wraps
// ErrNoDirective or ErrMalformed.
func ParseDirective(raw string) (Directive, error) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "Space"):
		if s == "Space" {
			return Directive{Kind: DirectiveSpace}, nil
		}
		arg, ok, err := parenArg(s)
		if err != nil {
			return Directive{}, fmt.Errorf("%w: %q", err, raw)
		}
		if !ok {
			return Directive{}, fmt.Errorf("%w: %q", ErrNoDirective, raw)
		}
		h, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Directive{}, fmt.Errorf("%w: space height %q", ErrMalformed, arg)
		}
		return Directive{Kind: DirectiveSpace, HasArg: true, Arg: arg, Height: float64(h)}, nil

	case strings.Contains(s, "Header"):
		if s == "HeaderEnd" {
			return Directive{Kind: DirectiveHeaderEnd}, nil
		}
		return titled(DirectiveHeader, s, raw)

	case strings.Contains(s, "Foldout"):
		if s == "FoldoutEnd" {
			return Directive{Kind: DirectiveFoldoutEnd}, nil
		}
		return titled(DirectiveFoldout, s, raw)

	case strings.HasPrefix(s, "Text"):
		return titled(DirectiveText, s, raw)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if s == "" || strings.ContainsRune(s, ')') {
			return Directive{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
		}
		return Directive{Kind: DirectiveOverride, Name: s}, nil
	}
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return Directive{}, fmt.Errorf("%w: %q has no widget name", ErrMalformed, raw)
	}
	arg, _, err := parenArg(s)
	if err != nil {
		return Directive{}, fmt.Errorf("%w: %q", err, raw)
	}
	return Directive{Kind: DirectiveOverride, Name: name, Arg: arg, HasArg: true}, nil
}

// titled builds a Header, Foldout or Text directive from the parenthesized
// argument of s.
func titled(kind DirectiveKind, s, raw string) (Directive, error) {
	arg, ok, err := parenArg(s)
	if err != nil {
		return Directive{}, fmt.Errorf("%w: %q", err, raw)
	}
	if !ok {
		return Directive{}, fmt.Errorf("%w: %s %q has no argument", ErrNoDirective, kind, raw)
	}
	return Directive{Kind: kind, Arg: arg, HasArg: true}, nil
}

// parenArg extracts the text between the first '(' and the last ')' of s.
// ok is false when s has no parentheses at all. Unbalanced parentheses or
// trailing text after the closing one are malformed.
func parenArg(s string) (arg string, ok bool, err error) {
	open := strings.IndexByte(s, '(')
	closing := strings.LastIndexByte(s, ')')
	switch {
	case open < 0 && closing < 0:
		return "", false, nil
	case open < 0 || closing < open:
		return "", false, ErrMalformed
	case closing != len(s)-1:
		return "", false, ErrMalformed
	}
	return s[open+1 : closing], true, nil
}

// ParseDirectives parses every annotation in order. A bad annotation never
// stops parsing: it is dropped and its error is returned alongside the
// directives that did parse.
func ParseDirectives(raws []string) ([]Directive, []error) {
	ds := make([]Directive, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		d, err := ParseDirective(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ds = append(ds, d)
	}
	return ds, errs
}

// EffectiveOverride returns the widget override that applies to a parameter.
// When several are declared the last one wins: overrides are collected,
// reversed, and the first is taken.
func EffectiveOverride(ds []Directive) (Directive, bool) {
	var overrides []Directive
	for _, d := range ds {
		if d.Kind == DirectiveOverride {
			overrides = append(overrides, d)
		}
	}
	if len(overrides) == 0 {
		return Directive{}, false
	}
	slices.Reverse(overrides)
	return overrides[0], true
}
