package entity

import "testing"

func TestObserverMove(t *testing.T) {
	o := NewObserver(5, 5, DefaultSightRadius)
	o.Move(1, -2)

	x, y := o.Position()
	if x != 6 || y != 3 {
		t.Errorf("Position() = (%d,%d), want (6,3)", x, y)
	}
	if o.Symbol != '@' {
		t.Errorf("Symbol = %q, want '@'", o.Symbol)
	}
}

func TestObserverTryMove(t *testing.T) {
	// Only column 5 is walkable.
	walkable := func(x, y int) bool { return x == 5 }

	tests := []struct {
		name   string
		dx, dy int
		moved  bool
		wantX  int
		wantY  int
	}{
		{"blocked east", 1, 0, false, 5, 5},
		{"blocked west", -1, 0, false, 5, 5},
		{"open north", 0, -1, true, 5, 4},
		{"open south", 0, 1, true, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObserver(5, 5, 3)
			if got := o.TryMove(tt.dx, tt.dy, walkable); got != tt.moved {
				t.Errorf("TryMove(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.moved)
			}
			if o.X != tt.wantX || o.Y != tt.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", o.X, o.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
