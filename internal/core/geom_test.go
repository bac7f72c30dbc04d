package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right(), Bottom() = %d, %d, want 6, 8", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 2, 8, 5},
		{1, 2, 8, 2},
		{9, 2, 8, 8},
		{2, 2, 8, 2},
		{8, 2, 8, 8},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float64
	}{
		{-5, 0},
		{25, 25},
		{105, 100},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, 0, 100); got != tt.want {
			t.Errorf("ClampF(%v, 0, 100) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{3, 3},
		{-3, 3},
	}

	for _, tt := range tests {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
