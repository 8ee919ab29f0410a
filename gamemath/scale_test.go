package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDivideScale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		i, n  int
		want  float64
	}{
		{"first half start", 0, 0, 2, 0},
		{"first half middle", 0.25, 0, 2, 0.5},
		{"first half done", 0.5, 0, 2, 1},
		{"first half stays done", 0.9, 0, 2, 1},
		{"second half waits", 0.4, 1, 2, 0},
		{"second half middle", 0.75, 1, 2, 0.5},
		{"second half done", 1, 1, 2, 1},
		{"quarter three of four", 0.625, 2, 4, 0.5},
		{"single segment", 0.3, 0, 1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DivideScale(tt.value, tt.i, tt.n)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("DivideScale(%v, %d, %d) = %v, want %v", tt.value, tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestDivideScaleEndpoints(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8} {
		for i := 0; i < n; i++ {
			if got := DivideScale(1, i, n); math.Abs(got-1) > epsilon {
				t.Errorf("DivideScale(1, %d, %d) = %v, want 1", i, n, got)
			}
			if i > 0 {
				if got := DivideScale(0, i, n); got != 0 {
					t.Errorf("DivideScale(0, %d, %d) = %v, want 0", i, n, got)
				}
			}
		}
	}
}

func TestDivideScaleMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		for i := 0; i < n; i++ {
			prev := DivideScale(0, i, n)
			for step := 1; step <= 1000; step++ {
				v := float64(step) / 1000
				got := DivideScale(v, i, n)
				if got < prev {
					t.Fatalf("DivideScale(%v, %d, %d) = %v decreased from %v", v, i, n, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{0.3, 0},
		{0.509, 0},
		{0.51, 1},
		{0.8, 1},
		{1, 1},
		{1.2, 1},   // overshoot past the far end
		{-0.01, 0}, // overshoot past zero
	}

	for _, tt := range tests {
		if got := ScaleFactor(tt.value, 0.51); got != tt.want {
			t.Errorf("ScaleFactor(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMirrorValue(t *testing.T) {
	if got := MirrorValue(0.2, 4, 2, 0.51); math.Abs(got-0.25) > epsilon {
		t.Errorf("MirrorValue below divider = %v, want 0.25", got)
	}
	if got := MirrorValue(0.7, 4, 2, 0.51); math.Abs(got-0.5) > epsilon {
		t.Errorf("MirrorValue above divider = %v, want 0.5", got)
	}
}

func TestUpdateValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		dir   float64
		want  float64
	}{
		{"forward slow half", 0.1, 1, 0.125},
		{"forward fast half", 0.6, 1, 0.25},
		{"backward fast half", 1, -1, -0.25},
		{"backward slow half", 0.25, -1, -0.125},
		{"idle", 0.4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateValue(tt.value, tt.dir, 4, 2, 0.5, 0.51)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("UpdateValue(%v, %v) = %v, want %v", tt.value, tt.dir, got, tt.want)
			}
		})
	}
}

func TestSignFlip(t *testing.T) {
	if SignFlip(0) != 1 || SignFlip(1) != -1 {
		t.Errorf("SignFlip(0), SignFlip(1) = %v, %v, want 1, -1", SignFlip(0), SignFlip(1))
	}
}
