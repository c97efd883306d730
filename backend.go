package pixelstream

import "fmt"

// Backend is the consumer-facing interface: one method per command
// variant. A rasterizer implements Backend and receives a drained batch
// through Playback, in the exact order the producers recorded it.
//
// The queue never validates command ordering, so Backend implementations
// own all semantic checks: a draw arriving outside a BeginFrame/EndFrame
// pair, or a chunk for an unknown atlas, is theirs to reject.
//
// Backends register themselves by name in init() (see Register) so hosts
// can select a rasterizer with a blank import, database/sql style.
type Backend interface {
	// BeginFrame starts a frame. A non-nil clear color means wipe the
	// target to that color before drawing.
	BeginFrame(clear *Color) error

	// EndFrame finishes the current frame and presents it.
	EndFrame() error

	// SetBlend selects the blend mode for subsequent draws.
	SetBlend(mode BlendMode) error

	// SetCamera selects the view transform for subsequent draws.
	SetCamera(cam Camera) error

	// CreateAtlas allocates a texture atlas.
	CreateAtlas(desc AtlasCreate) error

	// UploadAtlasChunk copies a pixel block into an atlas region.
	UploadAtlasChunk(chunk AtlasChunk) error

	// FinalizeAtlas marks an atlas complete and drawable.
	FinalizeAtlas(id AtlasID) error

	// DrawSprite draws one textured quad.
	DrawSprite(s Sprite) error

	// DrawTiles draws a tile batch.
	DrawTiles(t Tiles) error
}

// Playback dispatches a drained command batch to a backend, preserving
// order. It stops at the first backend error and returns it wrapped with
// the position and kind of the failing command.
func Playback(cmds []Command, b Backend) error {
	for i, cmd := range cmds {
		var err error
		switch c := cmd.(type) {
		case BeginFrameCommand:
			err = b.BeginFrame(c.Clear)
		case EndFrameCommand:
			err = b.EndFrame()
		case SetBlendCommand:
			err = b.SetBlend(c.Mode)
		case SetCameraCommand:
			err = b.SetCamera(c.Camera)
		case CreateAtlasCommand:
			err = b.CreateAtlas(c.Desc)
		case UploadAtlasChunkCommand:
			err = b.UploadAtlasChunk(c.Chunk)
		case FinalizeAtlasCommand:
			err = b.FinalizeAtlas(c.Atlas)
		case DrawSpriteCommand:
			err = b.DrawSprite(c.Sprite)
		case DrawTilesCommand:
			err = b.DrawTiles(c.Tiles)
		default:
			err = fmt.Errorf("pixelstream: unhandled command type %v", cmd.Type())
		}
		if err != nil {
			return fmt.Errorf("pixelstream: playback %s at index %d: %w", cmd.Type(), i, err)
		}
	}
	return nil
}
