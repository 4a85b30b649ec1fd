package core

import "testing"

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "x overlap only",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 20, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "different sizes",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(39.5, 10, 4, 4),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.99, 9.99, 10, 10),
			expected: true,
		},
		{
			name:     "neighbor tokens at rest",
			a:        RectAround(27, 27, 40, 40),
			b:        RectAround(81, 27, 40, 40),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(27, 81, 40, 20)

	if r.X != 7 || r.Y != 71 || r.W != 40 || r.H != 20 {
		t.Errorf("RectAround() = %+v, expected {7 71 40 20}", r)
	}

	cx, cy := r.Center()
	if cx != 27 || cy != 81 {
		t.Errorf("Center() = (%v, %v), expected (27, 81)", cx, cy)
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 30, 25, true},
		{"outside left", 9.9, 15, false},
		{"outside right", 30.1, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 26, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{18, 18, 414, 18},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if AbsF(-2.5) != 2.5 || AbsF(2.5) != 2.5 || AbsF(0) != 0 {
		t.Error("AbsF should return the magnitude")
	}
}
