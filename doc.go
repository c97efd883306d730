// Package pixelstream buffers render commands between a host application
// and a deferred 2D rasterizer.
//
// # Overview
//
// pixelstream is the producer-side half of a split renderer: call sites
// record frame lifecycle, state, resource-upload, and draw instructions,
// and a single consumer collects them once per frame in exact FIFO order.
// The package itself never rasterizes anything; it stores opaque typed
// commands and hands them downstream.
//
// # Quick Start
//
//	import "github.com/gogpu/pixelstream"
//
//	// Configure the renderer for an 800x600 surface.
//	pixelstream.Init(800, 600)
//
//	// Record a frame.
//	pixelstream.BeginFrame(nil)
//	pixelstream.DrawSprite(sprite)
//	pixelstream.EndFrame()
//
//	// Consumer side: collect the whole frame, in order.
//	for _, cmd := range pixelstream.Commands() {
//	    // dispatch to the rasterizer
//	}
//
// The package-level functions operate on a process-wide Renderer, matching
// the usual embedding model of one command stream per renderer instance.
// Construct independent Renderer values with NewRenderer when isolation is
// needed (tests, multiple surfaces).
//
// # Ordering Contract
//
// Commands come back from Drain in the exact order they were enqueued,
// exactly once, with no coalescing. The queue performs no semantic
// validation: a DrawSprite before any BeginFrame, or an UploadAtlasChunk
// for an atlas that was never created, is stored and forwarded as-is.
// Enforcing command legality is the consumer's business.
//
// # Consumers
//
// The Backend interface receives one method call per command variant.
// Rasterizer implementations register themselves by name (see Register),
// and Playback dispatches a drained batch to any Backend. The wire
// subpackage provides a binary codec for batches that cross a process
// boundary.
package pixelstream

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
