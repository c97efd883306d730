package pixelstream

import (
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// AtlasID identifies a texture atlas across the renderer boundary.
// IDs are assigned by the host; the queue treats them as opaque.
type AtlasID uint16

// AtlasCreate describes a texture atlas to allocate on the consumer side.
// Pixel data arrives separately through UploadAtlasChunk commands and the
// atlas becomes drawable after FinalizeAtlas.
type AtlasCreate struct {
	// ID is the handle later chunk uploads and draws refer to.
	ID AtlasID
	// Width and Height are the atlas dimensions in texels.
	Width, Height uint16
	// Format is the texel format the consumer should allocate.
	// The boundary schema currently only transports RGBA8.
	Format gputypes.TextureFormat
}

// DefaultAtlasCreate returns an AtlasCreate for an RGBA8 atlas of the
// given size.
func DefaultAtlasCreate(id AtlasID, width, height uint16) AtlasCreate {
	return AtlasCreate{
		ID:     id,
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// AtlasChunk is a rectangular block of pixels destined for a region of an
// atlas. Pixels are tightly packed RGBA8, row by row, Width*Height*4 bytes.
// Chunks for an atlas must all be uploaded before its FinalizeAtlas command;
// the queue does not enforce this, the consumer may.
type AtlasChunk struct {
	Atlas         AtlasID
	X, Y          uint16
	Width, Height uint16
	Pixels        []uint8
}

// Bounds returns the destination region of the chunk within its atlas.
func (c AtlasChunk) Bounds() image.Rectangle {
	x, y := int(c.X), int(c.Y)
	return image.Rect(x, y, x+int(c.Width), y+int(c.Height))
}

// ChunkFromImage builds an AtlasChunk at (x, y) from an arbitrary image,
// converting it to tightly packed RGBA8. The whole source image becomes
// the chunk; callers slice with SubImage first to upload a region.
func ChunkFromImage(atlas AtlasID, x, y uint16, src image.Image) AtlasChunk {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)

	// NewRGBA gives Stride == 4*w, so Pix is already tightly packed.
	return AtlasChunk{
		Atlas:  atlas,
		X:      x,
		Y:      y,
		Width:  uint16(w),
		Height: uint16(h),
		Pixels: dst.Pix,
	}
}
