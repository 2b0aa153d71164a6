package gridkey

import "testing"

func TestCursorWraps(t *testing.T) {
	tests := []struct {
		name   string
		start  cursor
		dx, dy int
		w, h   int
		wantX  int
		wantY  int
	}{
		{"left from origin", cursor{0, 0}, -1, 0, 3, 3, 2, 0},
		{"up from origin", cursor{0, 0}, 0, -1, 3, 3, 0, 2},
		{"right off edge", cursor{2, 1}, 1, 0, 3, 3, 0, 1},
		{"down off edge", cursor{1, 2}, 0, 1, 3, 3, 1, 0},
		{"interior move", cursor{1, 1}, 1, 0, 3, 3, 2, 1},
		{"1x1 board", cursor{0, 0}, 1, 0, 1, 1, 0, 0},
		{"2x1 right wrap", cursor{1, 0}, 1, 0, 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.move(tt.dx, tt.dy, tt.w, tt.h)
			if got.x != tt.wantX || got.y != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", got.x, got.y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	moves := []struct{ dx, dy int }{
		{1, 0}, {1, 0}, {1, 0}, {0, 1}, {0, 1}, {-1, 0},
		{0, -1}, {0, -1}, {0, -1}, {-1, 0}, {-1, 0}, {0, 1},
	}

	for _, dims := range []struct{ w, h int }{{1, 1}, {2, 3}, {5, 4}, {7, 1}} {
		c := cursor{}
		for i, mv := range moves {
			c = c.move(mv.dx, mv.dy, dims.w, dims.h)
			if c.x < 0 || c.x >= dims.w || c.y < 0 || c.y >= dims.h {
				t.Fatalf("%dx%d: cursor (%d,%d) out of bounds after move %d",
					dims.w, dims.h, c.x, c.y, i)
			}
		}
	}
}
