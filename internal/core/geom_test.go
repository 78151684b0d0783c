package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsXMargin(t *testing.T) {
	a := NewBox(0, 0, 10, 10)
	b := NewBox(12, 50, 10, 10) // 2px horizontal gap, far apart vertically

	if a.OverlapsX(b, 0) {
		t.Error("OverlapsX with no margin should not match a 2px gap")
	}
	if !a.OverlapsX(b, 3) {
		t.Error("OverlapsX with 3px margin should match a 2px gap")
	}
}

func TestBoxEdgesAndCenter(t *testing.T) {
	b := NewBox(5, 10, 20, 16)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if b.CenterX() != 15 || b.CenterY() != 18 {
		t.Errorf("Center = (%v, %v), expected (15, 18)", b.CenterX(), b.CenterY())
	}
}

func TestBoxDistanceTo(t *testing.T) {
	a := NewBox(0, 0, 10, 10)  // center (5, 5)
	b := NewBox(30, 0, 10, 10) // center (35, 5)

	if got := a.DistanceTo(b); got != 30 {
		t.Errorf("DistanceTo = %v, expected 30", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(3.2) != 1 || Sign(-0.5) != -1 || Sign(0) != 0 {
		t.Error("Sign should return -1, 0 or 1")
	}
}
