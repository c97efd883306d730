// Package trace provides a diagnostic backend that logs every command it
// receives and keeps per-kind counts. It rasterizes nothing; use it to
// inspect what a producer actually recorded, or as a stand-in consumer in
// tests and examples.
//
// Import for side effects to make it selectable by name:
//
//	import _ "github.com/gogpu/pixelstream/backends/trace"
//
//	backend := pixelstream.MustBackend("trace")
package trace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gogpu/pixelstream"
)

func init() {
	pixelstream.Register("trace", func() pixelstream.Backend {
		return New()
	})
}

// Backend logs commands through the pixelstream logger and counts them by
// kind. Safe for concurrent use, though batches normally arrive from a
// single consumer goroutine.
type Backend struct {
	mu     sync.Mutex
	counts map[pixelstream.CommandType]int
	frames int
}

// New creates a trace backend with zeroed counters.
func New() *Backend {
	return &Backend{counts: make(map[pixelstream.CommandType]int)}
}

// Count returns how many commands of the given kind have been received.
func (b *Backend) Count(t pixelstream.CommandType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[t]
}

// Frames returns how many complete frames (EndFrame commands) have been
// received.
func (b *Backend) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Reset zeroes all counters.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts = make(map[pixelstream.CommandType]int)
	b.frames = 0
}

func (b *Backend) record(t pixelstream.CommandType, attrs ...slog.Attr) {
	b.mu.Lock()
	b.counts[t]++
	b.mu.Unlock()

	pixelstream.Logger().LogAttrs(context.Background(), slog.LevelInfo, "trace: "+t.String(), attrs...)
}

// BeginFrame implements pixelstream.Backend.
func (b *Backend) BeginFrame(clear *pixelstream.Color) error {
	if clear != nil {
		b.record(pixelstream.CmdBeginFrame, slog.Uint64("clear", uint64(clear.Pack())))
	} else {
		b.record(pixelstream.CmdBeginFrame)
	}
	return nil
}

// EndFrame implements pixelstream.Backend.
func (b *Backend) EndFrame() error {
	b.record(pixelstream.CmdEndFrame)
	b.mu.Lock()
	b.frames++
	b.mu.Unlock()
	return nil
}

// SetBlend implements pixelstream.Backend.
func (b *Backend) SetBlend(mode pixelstream.BlendMode) error {
	b.record(pixelstream.CmdSetBlend, slog.String("mode", mode.String()))
	return nil
}

// SetCamera implements pixelstream.Backend.
func (b *Backend) SetCamera(cam pixelstream.Camera) error {
	b.record(pixelstream.CmdSetCamera,
		slog.Float64("x", float64(cam.X)),
		slog.Float64("y", float64(cam.Y)),
		slog.Float64("zoom", float64(cam.Zoom)))
	return nil
}

// CreateAtlas implements pixelstream.Backend.
func (b *Backend) CreateAtlas(desc pixelstream.AtlasCreate) error {
	b.record(pixelstream.CmdCreateAtlas,
		slog.Int("atlas", int(desc.ID)),
		slog.Int("width", int(desc.Width)),
		slog.Int("height", int(desc.Height)))
	return nil
}

// UploadAtlasChunk implements pixelstream.Backend.
func (b *Backend) UploadAtlasChunk(chunk pixelstream.AtlasChunk) error {
	b.record(pixelstream.CmdUploadAtlasChunk,
		slog.Int("atlas", int(chunk.Atlas)),
		slog.Int("bytes", len(chunk.Pixels)))
	return nil
}

// FinalizeAtlas implements pixelstream.Backend.
func (b *Backend) FinalizeAtlas(id pixelstream.AtlasID) error {
	b.record(pixelstream.CmdFinalizeAtlas, slog.Int("atlas", int(id)))
	return nil
}

// DrawSprite implements pixelstream.Backend.
func (b *Backend) DrawSprite(s pixelstream.Sprite) error {
	b.record(pixelstream.CmdDrawSprite, slog.Int("atlas", int(s.Atlas)))
	return nil
}

// DrawTiles implements pixelstream.Backend.
func (b *Backend) DrawTiles(t pixelstream.Tiles) error {
	b.record(pixelstream.CmdDrawTiles,
		slog.Int("atlas", int(t.Atlas)),
		slog.Int("tiles", len(t.Indices)))
	return nil
}
