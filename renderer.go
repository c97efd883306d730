package pixelstream

import (
	"log/slog"
	"sync"
)

// Renderer is the command queue plus the viewport state it is configured
// for. Any number of producer goroutines may record commands concurrently
// with each other and with the consumer's Drain; one mutex guards the whole
// aggregate so Init's reset-and-resize is atomic with respect to enqueues.
//
// The zero value is ready to use: empty queue, zero viewport.
type Renderer struct {
	mu      sync.Mutex
	width   uint32
	height  uint32
	pending []Command
}

// NewRenderer creates a Renderer with an empty queue and a zero viewport.
// Call Init to configure the viewport.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// enqueue appends cmd to the pending queue. Every producer operation
// funnels through here.
func (r *Renderer) enqueue(cmd Command) {
	r.mu.Lock()
	r.pending = append(r.pending, cmd)
	r.mu.Unlock()
}

// Init configures the viewport and resets the queue, discarding any
// buffered commands from a previous session. Used at renderer
// (re)initialization; both effects happen under one lock acquisition.
func (r *Renderer) Init(width, height uint32) {
	r.mu.Lock()
	dropped := len(r.pending)
	r.width = width
	r.height = height
	r.pending = nil
	r.mu.Unlock()

	if dropped > 0 {
		Logger().Debug("pixelstream: init dropped pending commands",
			slog.Int("dropped", dropped))
	}
}

// Resize updates the viewport without touching the pending queue. Used
// when the display surface changes dimensions mid-stream.
func (r *Renderer) Resize(width, height uint32) {
	r.mu.Lock()
	r.width = width
	r.height = height
	r.mu.Unlock()
}

// Viewport returns the current viewport dimensions.
func (r *Renderer) Viewport() (width, height uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Pending returns the number of buffered commands. Diagnostic only; the
// value may be stale by the time the caller looks at it.
func (r *Renderer) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Drain atomically removes and returns all pending commands in the order
// they were enqueued, leaving the queue empty. Every command enqueued
// before Drain begins, and not returned by an earlier Drain, appears in
// the result exactly once. Commands enqueued concurrently with the call
// may land in this batch or the next.
//
// Ownership of the returned slice transfers to the caller; the queue keeps
// no reference to it.
func (r *Renderer) Drain() []Command {
	r.mu.Lock()
	out := r.pending
	r.pending = nil
	r.mu.Unlock()
	return out
}

// --------------------------------------------------------------------------
// Producer operations
//
// Each wraps its payload in the matching Command variant and enqueues it.
// None of them validates ordering relative to other commands; that is the
// consumer's concern.
// --------------------------------------------------------------------------

// BeginFrame records the start of a frame. A non-nil clear color asks the
// consumer to wipe the target first.
func (r *Renderer) BeginFrame(clear *Color) {
	r.enqueue(BeginFrameCommand{Clear: clear})
}

// EndFrame records the end of the current frame.
func (r *Renderer) EndFrame() {
	r.enqueue(EndFrameCommand{})
}

// SetBlend records a blend mode change.
func (r *Renderer) SetBlend(mode BlendMode) {
	r.enqueue(SetBlendCommand{Mode: mode})
}

// SetCamera records a camera change.
func (r *Renderer) SetCamera(cam Camera) {
	r.enqueue(SetCameraCommand{Camera: cam})
}

// CreateAtlas records an atlas allocation request.
func (r *Renderer) CreateAtlas(desc AtlasCreate) {
	r.enqueue(CreateAtlasCommand{Desc: desc})
}

// UploadAtlasChunk records a pixel chunk upload.
func (r *Renderer) UploadAtlasChunk(chunk AtlasChunk) {
	r.enqueue(UploadAtlasChunkCommand{Chunk: chunk})
}

// FinalizeAtlas records that an atlas's uploads are complete.
func (r *Renderer) FinalizeAtlas(id AtlasID) {
	r.enqueue(FinalizeAtlasCommand{Atlas: id})
}

// DrawSprite records a sprite draw.
func (r *Renderer) DrawSprite(s Sprite) {
	r.enqueue(DrawSpriteCommand{Sprite: s})
}

// DrawTiles records a tile batch draw.
func (r *Renderer) DrawTiles(t Tiles) {
	r.enqueue(DrawTilesCommand{Tiles: t})
}
