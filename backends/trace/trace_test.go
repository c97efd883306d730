package trace

import (
	"testing"

	"github.com/gogpu/pixelstream"
)

func TestRegistered(t *testing.T) {
	if !pixelstream.IsRegistered("trace") {
		t.Fatal("trace backend not registered")
	}
	b, err := pixelstream.NewBackend("trace")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("NewBackend returned %T, want *trace.Backend", b)
	}
}

func TestCountsAfterPlayback(t *testing.T) {
	r := pixelstream.NewRenderer()
	r.Init(64, 64)

	clear := pixelstream.Black
	r.BeginFrame(&clear)
	r.SetBlend(pixelstream.BlendAlpha)
	r.DrawSprite(pixelstream.Sprite{Atlas: 1})
	r.DrawSprite(pixelstream.Sprite{Atlas: 1})
	r.DrawTiles(pixelstream.Tiles{Atlas: 1, Columns: 2, Indices: []uint16{0, 1}})
	r.EndFrame()

	b := New()
	if err := pixelstream.Playback(r.Drain(), b); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	tests := []struct {
		kind pixelstream.CommandType
		want int
	}{
		{pixelstream.CmdBeginFrame, 1},
		{pixelstream.CmdSetBlend, 1},
		{pixelstream.CmdDrawSprite, 2},
		{pixelstream.CmdDrawTiles, 1},
		{pixelstream.CmdEndFrame, 1},
		{pixelstream.CmdCreateAtlas, 0},
	}
	for _, tt := range tests {
		if got := b.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
	if got := b.Frames(); got != 1 {
		t.Errorf("Frames() = %d, want 1", got)
	}

	b.Reset()
	if b.Count(pixelstream.CmdDrawSprite) != 0 || b.Frames() != 0 {
		t.Error("Reset did not zero counters")
	}
}
