package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Intersection is symmetric
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "edge touching does not overlap",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "fractional separation",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(40, 40, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(15, 15) {
		t.Error("bottom-right edge is exclusive")
	}
	if r.Contains(9, 12) {
		t.Error("point left of rect should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, expected 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(370.0, 0, 370); got != 370 {
		t.Errorf("ClampF(370, 0, 370) = %f, expected 370", got)
	}
}
