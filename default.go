package pixelstream

// std is the process-wide renderer backing the package-level functions.
// Embeddings that expose the renderer across a host boundary export these
// functions directly, so the whole process shares one command stream.
var std = NewRenderer()

// Default returns the process-wide Renderer used by the package-level
// functions.
func Default() *Renderer {
	return std
}

// Init configures the default renderer's viewport and resets its queue.
func Init(width, height uint32) {
	std.Init(width, height)
}

// Resize updates the default renderer's viewport.
func Resize(width, height uint32) {
	std.Resize(width, height)
}

// Viewport returns the default renderer's viewport dimensions.
func Viewport() (width, height uint32) {
	return std.Viewport()
}

// BeginFrame records the start of a frame on the default renderer.
func BeginFrame(clear *Color) {
	std.BeginFrame(clear)
}

// EndFrame records the end of the current frame on the default renderer.
func EndFrame() {
	std.EndFrame()
}

// SetBlend records a blend mode change on the default renderer.
func SetBlend(mode BlendMode) {
	std.SetBlend(mode)
}

// SetCamera records a camera change on the default renderer.
func SetCamera(cam Camera) {
	std.SetCamera(cam)
}

// CreateAtlas records an atlas allocation request on the default renderer.
func CreateAtlas(desc AtlasCreate) {
	std.CreateAtlas(desc)
}

// UploadAtlasChunk records a pixel chunk upload on the default renderer.
func UploadAtlasChunk(chunk AtlasChunk) {
	std.UploadAtlasChunk(chunk)
}

// FinalizeAtlas records an atlas finalization on the default renderer.
func FinalizeAtlas(id AtlasID) {
	std.FinalizeAtlas(id)
}

// DrawSprite records a sprite draw on the default renderer.
func DrawSprite(s Sprite) {
	std.DrawSprite(s)
}

// DrawTiles records a tile batch draw on the default renderer.
func DrawTiles(t Tiles) {
	std.DrawTiles(t)
}

// Commands drains the default renderer: it removes and returns all pending
// commands in FIFO order. This is the consumer-facing entry point, called
// once per rendered frame.
func Commands() []Command {
	return std.Drain()
}
