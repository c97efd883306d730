package pixelstream

import "testing"

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdBeginFrame, "BeginFrame"},
		{CmdEndFrame, "EndFrame"},
		{CmdSetBlend, "SetBlend"},
		{CmdSetCamera, "SetCamera"},
		{CmdCreateAtlas, "CreateAtlas"},
		{CmdUploadAtlasChunk, "UploadAtlasChunk"},
		{CmdFinalizeAtlas, "FinalizeAtlas"},
		{CmdDrawSprite, "DrawSprite"},
		{CmdDrawTiles, "DrawTiles"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	// Verify every command variant implements Command with the right type.
	commands := []Command{
		BeginFrameCommand{},
		EndFrameCommand{},
		SetBlendCommand{Mode: BlendAlpha},
		SetCameraCommand{Camera: DefaultCamera()},
		CreateAtlasCommand{Desc: DefaultAtlasCreate(1, 256, 256)},
		UploadAtlasChunkCommand{Chunk: AtlasChunk{Atlas: 1}},
		FinalizeAtlasCommand{Atlas: 1},
		DrawSpriteCommand{Sprite: Sprite{Atlas: 1}},
		DrawTilesCommand{Tiles: Tiles{Atlas: 1}},
	}

	expectedTypes := []CommandType{
		CmdBeginFrame,
		CmdEndFrame,
		CmdSetBlend,
		CmdSetCamera,
		CmdCreateAtlas,
		CmdUploadAtlasChunk,
		CmdFinalizeAtlas,
		CmdDrawSprite,
		CmdDrawTiles,
	}

	for i, cmd := range commands {
		if got := cmd.Type(); got != expectedTypes[i] {
			t.Errorf("command[%d].Type() = %v, want %v", i, got, expectedTypes[i])
		}
	}
}
