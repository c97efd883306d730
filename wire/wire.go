// Package wire implements the binary batch format for render commands
// crossing the host boundary.
//
// A batch is a versioned header followed by one record per command, in
// FIFO order. Each record is a one-byte tag and a fixed little-endian
// payload; chunk pixels and tile indices are length-prefixed. The format
// is self-contained: decoding needs no schema beyond this package.
//
// Encode and Decode round-trip a batch exactly, preserving order and
// payloads. Decoding is strict - an unknown tag, a bad header, or a
// truncated payload fails the whole batch, since a partially decoded
// command stream is useless to a rasterizer.
package wire

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/pixelstream"
)

// Format constants.
const (
	// magic identifies a pixelstream command batch ("PXCB").
	magic = 0x50584342

	// version is the current format version.
	version = 1

	// headerSize is magic (4) + version (1) + count (4).
	headerSize = 9
)

// Decode errors.
var (
	// ErrHeader indicates a missing or foreign batch header.
	ErrHeader = errors.New("wire: invalid batch header")

	// ErrVersion indicates a batch written by an incompatible version.
	ErrVersion = errors.New("wire: unsupported format version")

	// ErrTruncated indicates the batch ends mid-record.
	ErrTruncated = errors.New("wire: truncated batch")

	// ErrUnknownTag indicates a record with an unrecognized command tag.
	ErrUnknownTag = errors.New("wire: unknown command tag")
)

// Encode serializes a command batch. The empty batch encodes to a bare
// header and decodes back to an empty slice.
func Encode(cmds []pixelstream.Command) []byte {
	e := encoder{buf: make([]byte, 0, headerSize+32*len(cmds))}
	e.u32(magic)
	e.u8(version)
	e.u32(uint32(len(cmds)))

	for _, cmd := range cmds {
		e.u8(uint8(cmd.Type()))
		switch c := cmd.(type) {
		case pixelstream.BeginFrameCommand:
			if c.Clear != nil {
				e.u8(1)
				e.u32(c.Clear.Pack())
			} else {
				e.u8(0)
			}
		case pixelstream.EndFrameCommand:
			// no payload
		case pixelstream.SetBlendCommand:
			e.u8(uint8(c.Mode))
		case pixelstream.SetCameraCommand:
			e.f32(c.Camera.X)
			e.f32(c.Camera.Y)
			e.f32(c.Camera.Zoom)
			e.f32(c.Camera.Rotation)
		case pixelstream.CreateAtlasCommand:
			e.u16(uint16(c.Desc.ID))
			e.u16(c.Desc.Width)
			e.u16(c.Desc.Height)
			e.u32(uint32(c.Desc.Format))
		case pixelstream.UploadAtlasChunkCommand:
			e.u16(uint16(c.Chunk.Atlas))
			e.u16(c.Chunk.X)
			e.u16(c.Chunk.Y)
			e.u16(c.Chunk.Width)
			e.u16(c.Chunk.Height)
			e.bytes(c.Chunk.Pixels)
		case pixelstream.FinalizeAtlasCommand:
			e.u16(uint16(c.Atlas))
		case pixelstream.DrawSpriteCommand:
			s := c.Sprite
			e.u16(uint16(s.Atlas))
			e.u16(s.Src.X)
			e.u16(s.Src.Y)
			e.u16(s.Src.Width)
			e.u16(s.Src.Height)
			e.f32(s.X)
			e.f32(s.Y)
			e.f32(s.Width)
			e.f32(s.Height)
			e.f32(s.Ox)
			e.f32(s.Oy)
			e.f32(s.Rotation)
			e.u32(s.Tint.Pack())
			e.u8(uint8(s.Flip))
		case pixelstream.DrawTilesCommand:
			t := c.Tiles
			e.u16(uint16(t.Atlas))
			e.u16(t.TileWidth)
			e.u16(t.TileHeight)
			e.f32(t.X)
			e.f32(t.Y)
			// The wire carries Columns unsigned; negative values mean
			// the same as zero (no drawable cells) and encode as such.
			cols := t.Columns
			if cols < 0 {
				cols = 0
			}
			e.u32(uint32(cols))
			e.u32(uint32(len(t.Indices)))
			for _, idx := range t.Indices {
				e.u16(idx)
			}
		}
	}
	return e.buf
}

// Decode deserializes a command batch produced by Encode.
func Decode(data []byte) ([]pixelstream.Command, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}
	out := make([]pixelstream.Command, 0, d.Len())
	for d.Next() {
		out = append(out, d.Command())
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// encoder accumulates little-endian fields into a growing buffer.
type encoder struct {
	buf []byte
}

func (e *encoder) u8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *encoder) u16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) f32(v float32) {
	e.u32(math.Float32bits(v))
}

func (e *encoder) bytes(b []byte) {
	e.u32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}
