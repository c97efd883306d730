package pixelstream

import "testing"

func TestNewSprite(t *testing.T) {
	s := NewSprite(3, TexRect{X: 16, Y: 32, Width: 8, Height: 12}, 100, 200)
	if s.Atlas != 3 || s.X != 100 || s.Y != 200 {
		t.Errorf("NewSprite placement = %+v", s)
	}
	if s.Width != 8 || s.Height != 12 {
		t.Errorf("NewSprite size = %vx%v, want natural 8x12", s.Width, s.Height)
	}
	if s.Tint != White {
		t.Errorf("NewSprite tint = %v, want White", s.Tint)
	}
	if s.Flip != 0 || s.Rotation != 0 {
		t.Errorf("NewSprite transform not neutral: %+v", s)
	}
}

func TestTilesRows(t *testing.T) {
	tests := []struct {
		name string
		t    Tiles
		want int
	}{
		{"empty", Tiles{Columns: 4}, 0},
		{"exact", Tiles{Columns: 4, Indices: make([]uint16, 8)}, 2},
		{"ragged", Tiles{Columns: 4, Indices: make([]uint16, 9)}, 3},
		{"no columns", Tiles{Indices: make([]uint16, 9)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Rows(); got != tt.want {
				t.Errorf("Rows() = %d, want %d", got, tt.want)
			}
		})
	}
}
