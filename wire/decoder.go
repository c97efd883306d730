package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixelstream"
)

// Decoder provides sequential decoding of an encoded command batch.
// It validates the header on construction and then yields one command
// per Next call, in batch order.
//
// Example usage:
//
//	dec, err := wire.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	for dec.Next() {
//	    dispatch(dec.Command())
//	}
//	if err := dec.Err(); err != nil {
//	    return err
//	}
type Decoder struct {
	data []byte
	off  int

	remaining int
	cmd       pixelstream.Command
	err       error
}

// NewDecoder validates the batch header and returns a decoder positioned
// at the first command.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < headerSize {
		return nil, ErrHeader
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return nil, ErrHeader
	}
	if v := data[4]; v != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	count := binary.LittleEndian.Uint32(data[5:9])
	// Every record is at least a tag byte, so a count larger than the
	// remaining bytes cannot be satisfied. Rejecting it here also keeps
	// a hostile header from driving a huge batch pre-allocation.
	if int64(count) > int64(len(data)-headerSize) {
		return nil, ErrTruncated
	}
	return &Decoder{
		data:      data,
		off:       headerSize,
		remaining: int(count),
	}, nil
}

// Len returns the number of commands not yet decoded.
func (d *Decoder) Len() int {
	return d.remaining
}

// Next decodes the next command. It returns false at the end of the batch
// or on the first malformed record; check Err to tell the two apart.
func (d *Decoder) Next() bool {
	if d.err != nil || d.remaining == 0 {
		return false
	}
	d.remaining--

	tag, ok := d.u8()
	if !ok {
		return false
	}

	switch pixelstream.CommandType(tag) {
	case pixelstream.CmdBeginFrame:
		d.cmd = d.beginFrame()
	case pixelstream.CmdEndFrame:
		d.cmd = pixelstream.EndFrameCommand{}
	case pixelstream.CmdSetBlend:
		mode, _ := d.u8()
		d.cmd = pixelstream.SetBlendCommand{Mode: pixelstream.BlendMode(mode)}
	case pixelstream.CmdSetCamera:
		d.cmd = d.setCamera()
	case pixelstream.CmdCreateAtlas:
		d.cmd = d.createAtlas()
	case pixelstream.CmdUploadAtlasChunk:
		d.cmd = d.uploadAtlasChunk()
	case pixelstream.CmdFinalizeAtlas:
		id, _ := d.u16()
		d.cmd = pixelstream.FinalizeAtlasCommand{Atlas: pixelstream.AtlasID(id)}
	case pixelstream.CmdDrawSprite:
		d.cmd = d.drawSprite()
	case pixelstream.CmdDrawTiles:
		d.cmd = d.drawTiles()
	default:
		d.err = fmt.Errorf("%w: %d", ErrUnknownTag, tag)
		return false
	}

	return d.err == nil
}

// Command returns the command decoded by the last successful Next.
func (d *Decoder) Command() pixelstream.Command {
	return d.cmd
}

// Err returns the first decode error, or nil if the batch was well-formed
// so far.
func (d *Decoder) Err() error {
	return d.err
}

// --------------------------------------------------------------------------
// Per-command payload readers
// --------------------------------------------------------------------------

func (d *Decoder) beginFrame() pixelstream.Command {
	flag, ok := d.u8()
	if !ok {
		return nil
	}
	var clear *pixelstream.Color
	if flag != 0 {
		packed, ok := d.u32()
		if !ok {
			return nil
		}
		c := pixelstream.UnpackColor(packed)
		clear = &c
	}
	return pixelstream.BeginFrameCommand{Clear: clear}
}

func (d *Decoder) setCamera() pixelstream.Command {
	var cam pixelstream.Camera
	cam.X = d.f32()
	cam.Y = d.f32()
	cam.Zoom = d.f32()
	cam.Rotation = d.f32()
	return pixelstream.SetCameraCommand{Camera: cam}
}

func (d *Decoder) createAtlas() pixelstream.Command {
	var desc pixelstream.AtlasCreate
	id, _ := d.u16()
	desc.ID = pixelstream.AtlasID(id)
	desc.Width, _ = d.u16()
	desc.Height, _ = d.u16()
	format, _ := d.u32()
	desc.Format = gputypes.TextureFormat(format)
	return pixelstream.CreateAtlasCommand{Desc: desc}
}

func (d *Decoder) uploadAtlasChunk() pixelstream.Command {
	var chunk pixelstream.AtlasChunk
	atlas, _ := d.u16()
	chunk.Atlas = pixelstream.AtlasID(atlas)
	chunk.X, _ = d.u16()
	chunk.Y, _ = d.u16()
	chunk.Width, _ = d.u16()
	chunk.Height, _ = d.u16()
	chunk.Pixels = d.blob()
	return pixelstream.UploadAtlasChunkCommand{Chunk: chunk}
}

func (d *Decoder) drawSprite() pixelstream.Command {
	var s pixelstream.Sprite
	atlas, _ := d.u16()
	s.Atlas = pixelstream.AtlasID(atlas)
	s.Src.X, _ = d.u16()
	s.Src.Y, _ = d.u16()
	s.Src.Width, _ = d.u16()
	s.Src.Height, _ = d.u16()
	s.X = d.f32()
	s.Y = d.f32()
	s.Width = d.f32()
	s.Height = d.f32()
	s.Ox = d.f32()
	s.Oy = d.f32()
	s.Rotation = d.f32()
	tint, _ := d.u32()
	s.Tint = pixelstream.UnpackColor(tint)
	flip, _ := d.u8()
	s.Flip = pixelstream.FlipFlags(flip)
	return pixelstream.DrawSpriteCommand{Sprite: s}
}

func (d *Decoder) drawTiles() pixelstream.Command {
	var t pixelstream.Tiles
	atlas, _ := d.u16()
	t.Atlas = pixelstream.AtlasID(atlas)
	t.TileWidth, _ = d.u16()
	t.TileHeight, _ = d.u16()
	t.X = d.f32()
	t.Y = d.f32()
	cols, _ := d.u32()
	t.Columns = int(cols)
	count, ok := d.u32()
	if !ok {
		return nil
	}
	if int(count) > (len(d.data)-d.off)/2 {
		d.err = ErrTruncated
		return nil
	}
	t.Indices = make([]uint16, count)
	for i := range t.Indices {
		t.Indices[i], _ = d.u16()
	}
	return pixelstream.DrawTilesCommand{Tiles: t}
}

// --------------------------------------------------------------------------
// Primitive readers
//
// Readers record ErrTruncated on overrun and return zero values; Next
// surfaces the error after the current record.
// --------------------------------------------------------------------------

func (d *Decoder) u8() (uint8, bool) {
	if d.err != nil || d.off+1 > len(d.data) {
		d.fail()
		return 0, false
	}
	v := d.data[d.off]
	d.off++
	return v, true
}

func (d *Decoder) u16() (uint16, bool) {
	if d.err != nil || d.off+2 > len(d.data) {
		d.fail()
		return 0, false
	}
	v := binary.LittleEndian.Uint16(d.data[d.off:])
	d.off += 2
	return v, true
}

func (d *Decoder) u32() (uint32, bool) {
	if d.err != nil || d.off+4 > len(d.data) {
		d.fail()
		return 0, false
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, true
}

func (d *Decoder) f32() float32 {
	v, _ := d.u32()
	return math.Float32frombits(v)
}

// blob reads a length-prefixed byte slice. The returned slice is a copy,
// so decoded commands do not alias the input buffer.
func (d *Decoder) blob() []byte {
	n, ok := d.u32()
	if !ok {
		return nil
	}
	if d.off+int(n) > len(d.data) {
		d.fail()
		return nil
	}
	out := make([]byte, n)
	copy(out, d.data[d.off:d.off+int(n)])
	d.off += int(n)
	return out
}

func (d *Decoder) fail() {
	if d.err == nil {
		d.err = ErrTruncated
	}
}
