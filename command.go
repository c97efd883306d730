package pixelstream

// CommandType identifies the type of a command.
// Each command type corresponds to one renderer operation.
type CommandType uint8

const (
	// Frame lifecycle
	CmdBeginFrame CommandType = iota // Start a frame, optionally clearing
	CmdEndFrame                      // Finish the current frame

	// Render state
	CmdSetBlend  // Select the blend mode for following draws
	CmdSetCamera // Select the view transform for following draws

	// Atlas resources
	CmdCreateAtlas      // Allocate a texture atlas
	CmdUploadAtlasChunk // Upload a pixel block into an atlas region
	CmdFinalizeAtlas    // Mark an atlas complete and drawable

	// Draws
	CmdDrawSprite // Draw one textured quad
	CmdDrawTiles  // Draw a batch of equally sized tiles
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginFrame:       "BeginFrame",
	CmdEndFrame:         "EndFrame",
	CmdSetBlend:         "SetBlend",
	CmdSetCamera:        "SetCamera",
	CmdCreateAtlas:      "CreateAtlas",
	CmdUploadAtlasChunk: "UploadAtlasChunk",
	CmdFinalizeAtlas:    "FinalizeAtlas",
	CmdDrawSprite:       "DrawSprite",
	CmdDrawTiles:        "DrawTiles",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command variants.
// Commands are immutable once constructed; the queue stores and forwards
// them without reading their payloads.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Frame Lifecycle Commands
// --------------------------------------------------------------------------

// BeginFrameCommand starts a frame. If Clear is non-nil the consumer wipes
// the target to that color before drawing.
type BeginFrameCommand struct {
	Clear *Color
}

// Type implements Command.
func (BeginFrameCommand) Type() CommandType { return CmdBeginFrame }

// EndFrameCommand finishes the current frame and presents it.
type EndFrameCommand struct{}

// Type implements Command.
func (EndFrameCommand) Type() CommandType { return CmdEndFrame }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetBlendCommand selects the blend mode for subsequent draw commands.
type SetBlendCommand struct {
	Mode BlendMode
}

// Type implements Command.
func (SetBlendCommand) Type() CommandType { return CmdSetBlend }

// SetCameraCommand selects the view transform for subsequent draw commands.
type SetCameraCommand struct {
	Camera Camera
}

// Type implements Command.
func (SetCameraCommand) Type() CommandType { return CmdSetCamera }

// --------------------------------------------------------------------------
// Atlas Commands
// --------------------------------------------------------------------------

// CreateAtlasCommand asks the consumer to allocate a texture atlas.
type CreateAtlasCommand struct {
	Desc AtlasCreate
}

// Type implements Command.
func (CreateAtlasCommand) Type() CommandType { return CmdCreateAtlas }

// UploadAtlasChunkCommand carries a rectangular pixel block for an atlas.
type UploadAtlasChunkCommand struct {
	Chunk AtlasChunk
}

// Type implements Command.
func (UploadAtlasChunkCommand) Type() CommandType { return CmdUploadAtlasChunk }

// FinalizeAtlasCommand marks an atlas complete. Chunks uploaded for the
// atlas before this command form its final contents.
type FinalizeAtlasCommand struct {
	Atlas AtlasID
}

// Type implements Command.
func (FinalizeAtlasCommand) Type() CommandType { return CmdFinalizeAtlas }

// --------------------------------------------------------------------------
// Draw Commands
// --------------------------------------------------------------------------

// DrawSpriteCommand draws one sprite.
type DrawSpriteCommand struct {
	Sprite Sprite
}

// Type implements Command.
func (DrawSpriteCommand) Type() CommandType { return CmdDrawSprite }

// DrawTilesCommand draws a tile batch.
type DrawTilesCommand struct {
	Tiles Tiles
}

// Type implements Command.
func (DrawTilesCommand) Type() CommandType { return CmdDrawTiles }
