package pixelstream

// TexRect is a rectangle in atlas texel coordinates.
type TexRect struct {
	X, Y          uint16
	Width, Height uint16
}

// FlipFlags mirrors a sprite around its destination rectangle axes.
type FlipFlags uint8

const (
	// FlipX mirrors horizontally.
	FlipX FlipFlags = 1 << iota
	// FlipY mirrors vertically.
	FlipY
)

// Sprite describes one textured quad. Src selects the texels inside the
// atlas; X, Y, Width, Height place the quad in world space. Rotation is in
// radians around the origin point (Ox, Oy, relative to the quad's top-left
// corner), and Tint multiplies the sampled color.
type Sprite struct {
	Atlas    AtlasID
	Src      TexRect
	X, Y     float32
	Width    float32
	Height   float32
	Ox, Oy   float32
	Rotation float32
	Tint     Color
	Flip     FlipFlags
}

// NewSprite returns a Sprite drawing the given atlas region at (x, y) at
// its natural size with a white tint.
func NewSprite(atlas AtlasID, src TexRect, x, y float32) Sprite {
	return Sprite{
		Atlas:  atlas,
		Src:    src,
		X:      x,
		Y:      y,
		Width:  float32(src.Width),
		Height: float32(src.Height),
		Tint:   White,
	}
}

// Tiles describes a batch of equally sized tiles stamped from one atlas.
// The atlas is treated as a grid of TileWidth x TileHeight cells, indexed
// row-major from the top-left. Indices holds one cell index per output
// tile, laid out row-major over Columns columns starting at (X, Y); an
// index of TileEmpty skips that cell. A Columns value of zero or below
// yields no drawable cells.
type Tiles struct {
	Atlas      AtlasID
	TileWidth  uint16
	TileHeight uint16
	X, Y       float32
	Columns    int
	Indices    []uint16
}

// TileEmpty marks a cell in Tiles.Indices that draws nothing.
const TileEmpty = ^uint16(0)

// Rows returns the number of tile rows the batch covers.
func (t Tiles) Rows() int {
	if t.Columns <= 0 {
		return 0
	}
	return (len(t.Indices) + t.Columns - 1) / t.Columns
}
