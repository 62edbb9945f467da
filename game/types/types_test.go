package types

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy int
	}{
		{"Up decreases Y", Up, 0, -1},
		{"Down increases Y", Down, 0, 1},
		{"Left decreases X", Left, -1, 0},
		{"Right increases X", Right, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Expected delta (%d,%d), got (%d,%d)", tt.dx, tt.dy, dx, dy)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Expected opposite of %v to be %v, got %v", tt.dir, tt.want, got)
			}
			if back := tt.dir.Opposite().Opposite(); back != tt.dir {
				t.Errorf("Double opposite of %v gave %v", tt.dir, back)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Up); got != (Point{X: 3, Y: 3}) {
		t.Errorf("Expected (3,3), got %v", got)
	}
	if got := p.Add(Right); got != (Point{X: 4, Y: 4}) {
		t.Errorf("Expected (4,4), got %v", got)
	}
}

func TestGridContains(t *testing.T) {
	grid := Grid{Width: 5, Height: 5}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Origin", Point{0, 0}, true},
		{"Center", Point{2, 2}, true},
		{"Far corner", Point{4, 4}, true},
		{"Left of grid", Point{-1, 2}, false},
		{"Above grid", Point{2, -1}, false},
		{"Right edge exclusive", Point{5, 2}, false},
		{"Bottom edge exclusive", Point{2, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v): expected %v, got %v", tt.p, tt.want, got)
			}
		})
	}
}
