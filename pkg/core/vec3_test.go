package core

import "testing"

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if got := v.Length(); got < 0.999 || got > 1.001 {
		t.Errorf("expected unit length, got %v", got)
	}
}

func TestVec3_Normalize_Zero(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()
	if v != (Vec3{0, 0, 0}) {
		t.Errorf("expected zero vector to normalize to itself, got %v", v)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	got := x.Cross(y)
	want := NewVec3(0, 0, 1)
	if got != want {
		t.Errorf("x cross y = %v, want %v", got, want)
	}
}

func TestVec3_MaxComponent(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float32
	}{
		{NewVec3(1, 2, 3), 3},
		{NewVec3(-1, -2, -3), -1},
		{NewVec3(5, 1, 1), 5},
	}
	for _, tt := range tests {
		if got := tt.v.MaxComponent(); got != tt.want {
			t.Errorf("%v.MaxComponent() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2).Clamp(0, 1)
	want := NewVec3(0, 0.5, 1)
	if v != want {
		t.Errorf("Clamp() = %v, want %v", v, want)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("expected finite vector to be finite")
	}
	nan := NewVec3(1, 2, 3)
	nan.X = nan.X / zero()
	if nan.IsFinite() {
		t.Error("expected vector containing Inf to be non-finite")
	}
}

func zero() float32 { return 0 }
