package shadergui

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{FloatValue(1.5), "1.5"},
		{RangeValue(0), "0"},
		{IntValue(-1), "-1"},
		{VectorValue(Vec4{1, 2, 3, 4}), "(1, 2, 3, 4)"},
		{ColorValue(ColorWhite), "rgba(1, 1, 1, 1)"},
		{TextureValue(""), "None st(1, 1, 0, 0)"},
		{Value{Kind: ParamKind(12)}, "Kind(12)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueNumber(t *testing.T) {
	if FloatValue(2.5).Number() != 2.5 || IntValue(3).Number() != 3 || ColorValue(ColorWhite).Number() != 0 {
		t.Error("Number mismatch")
	}
}

func TestWithNumberKeepsKind(t *testing.T) {
	if got := withNumber(IntValue(1), 4.9); got != IntValue(4) {
		t.Errorf("int = %+v", got)
	}
	if got := withNumber(RangeValue(1), 0.5); got != RangeValue(0.5) {
		t.Errorf("range = %+v", got)
	}
	if got := withNumber(ColorValue(ColorWhite), 2); got != FloatValue(2) {
		t.Errorf("color = %+v", got)
	}
}

func TestVec4Components(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	for i, want := range []float64{1, 2, 3, 4, 0} {
		if got := v.Component(i); got != want {
			t.Errorf("Component(%d) = %v, want %v", i, got, want)
		}
	}
	if got := v.WithComponent(2, 9).WithComponent(7, 9); got != (Vec4{1, 2, 9, 4}) {
		t.Errorf("WithComponent = %v", got)
	}
}

func TestParameterLabel(t *testing.T) {
	if (Parameter{Name: "_A"}).Label() != "_A" || (Parameter{Name: "_A", DisplayName: "A"}).Label() != "A" {
		t.Error("Label mismatch")
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{0, 1}
	if r.Clamp(-1) != 0 || r.Clamp(2) != 1 || r.Clamp(0.5) != 0.5 {
		t.Error("Clamp mismatch")
	}
}

func TestKindString(t *testing.T) {
	if KindTexture.String() != "Texture" || ParamKind(40).String() != "Kind(40)" {
		t.Error("ParamKind String mismatch")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if !r.Contains(10, 10) || !r.Contains(15, 15) || r.Contains(16, 12) {
		t.Error("Contains mismatch")
	}
}
