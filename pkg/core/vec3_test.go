package core

import (
	"math"
	"testing"
)

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range map[Axis]float64{AxisX: 1, AxisY: 2, AxisZ: 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis %v: expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_AxisOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for axis 3")
		}
	}()
	NewVec3(1, 2, 3).Axis(Axis(3))
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)
	if got := v.Reflect(n); got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Refract(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec3
		ratio    float64
		expected Vec3
	}{
		{
			name:     "Index matched keeps direction",
			in:       NewVec3(1, -1, 0).Normalize(),
			ratio:    1.0,
			expected: NewVec3(1, -1, 0).Normalize(),
		},
		{
			name:     "Normal incidence passes straight through",
			in:       NewVec3(0, -1, 0),
			ratio:    1.0 / 1.5,
			expected: NewVec3(0, -1, 0),
		},
		{
			// sin(45°)/1.5 = 0.4714 so the refracted ray bends toward the normal
			name:     "Entering denser medium",
			in:       NewVec3(1, -1, 0).Normalize(),
			ratio:    1.0 / 1.5,
			expected: NewVec3(math.Sqrt2/3, -math.Sqrt(1-2.0/9.0), 0),
		},
	}

	n := NewVec3(0, 1, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Refract(n, tt.ratio)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Basics(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}
	if got := a.Cross(b); got != NewVec3(-3, 6, -3) {
		t.Errorf("Cross: expected (-3, 6, -3), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4, 10, 18), got %v", got)
	}
	if got := NewVec3(4, 9, 16).Sqrt(); got != NewVec3(2, 3, 4) {
		t.Errorf("Sqrt: expected (2, 3, 4), got %v", got)
	}
	if got := NewVec3(3, 0, 4).Normalize(); math.Abs(got.Length()-1) > 1e-12 {
		t.Errorf("Normalize: expected unit length, got %f", got.Length())
	}
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", got)
	}
	if !NewVec3(1e-9, -1e-9, 0).NearZero() || NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("NearZero threshold wrong")
	}
}
