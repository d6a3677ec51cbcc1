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
			a:        NewBox(0, 0, 48, 64),
			b:        NewBox(40, 60, 64, 64),
			expected: true,
		},
		{
			name:     "touching horizontally",
			a:        NewBox(0, 0, 64, 64),
			b:        NewBox(64, 0, 64, 64),
			expected: false,
		},
		{
			name:     "touching vertically",
			a:        NewBox(100, 592, 48, 64),
			b:        NewBox(64, 656, 64, 64),
			expected: false,
		},
		{
			name:     "sub-unit overlap",
			a:        NewBox(0, 0.5, 10, 10),
			b:        NewBox(9.9, 10.4, 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewBox(0, 0, 100, 100),
			b:        NewBox(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewBox(-500, -500, 1, 1),
			b:        NewBox(500, 500, 1, 1),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsSymmetricGrid(t *testing.T) {
	a := NewBox(10, 10, 20, 30)
	for x := -40.0; x <= 60; x += 2.5 {
		for y := -40.0; y <= 60; y += 2.5 {
			b := NewBox(x, y, 15, 12)
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Fatalf("overlap not symmetric for b at (%v, %v)", x, y)
			}
		}
	}
}

func TestBoxPenetration(t *testing.T) {
	a := NewBox(0, 0, 48, 64)
	b := NewBox(40, 60, 64, 64)

	dx, dy := a.Penetration(b)
	if dx != 8 || dy != 4 {
		t.Errorf("Penetration() = (%v, %v), expected (8, 4)", dx, dy)
	}

	// Contained body penetrates by its own size
	dx, dy = NewBox(0, 0, 100, 100).Penetration(NewBox(10, 20, 5, 6))
	if dx != 5 || dy != 6 {
		t.Errorf("Penetration() = (%v, %v), expected (5, 6)", dx, dy)
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 16)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if b.MidY() != 18 {
		t.Errorf("MidY() = %v, expected 18", b.MidY())
	}

	b.SetHeight(4)
	if b.H() != 4 || b.Y != 10 {
		t.Errorf("SetHeight(4) gave H=%v Y=%v, expected H=4 Y=10", b.H(), b.Y)
	}
}

func TestNewBoxRejectsEmptySize(t *testing.T) {
	sizes := [][2]float64{{0, 10}, {10, 0}, {-1, 5}, {5, -1}}
	for _, s := range sizes {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBox with size %vx%v should panic", s[0], s[1])
				}
			}()
			NewBox(0, 0, s[0], s[1])
		}()
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

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 || Max(-3, -3) != -3 {
		t.Error("Max should return the larger value")
	}
}
