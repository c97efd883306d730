package pixelstream

import "testing"

// The package-level functions share one process-wide renderer, so these
// tests reset it with Init and must not run in parallel.

func TestDefaultRendererScenario(t *testing.T) {
	Init(800, 600)

	BeginFrame(nil)
	DrawSprite(Sprite{X: 1})
	DrawSprite(Sprite{X: 2})
	EndFrame()

	got := Commands()
	want := []CommandType{CmdBeginFrame, CmdDrawSprite, CmdDrawSprite, CmdEndFrame}
	if len(got) != len(want) {
		t.Fatalf("Commands() returned %d commands, want %d", len(got), len(want))
	}
	for i, cmd := range got {
		if cmd.Type() != want[i] {
			t.Errorf("command[%d].Type() = %v, want %v", i, cmd.Type(), want[i])
		}
	}
	if s1 := got[1].(DrawSpriteCommand).Sprite; s1.X != 1 {
		t.Errorf("first sprite X = %v, want 1", s1.X)
	}

	if again := Commands(); len(again) != 0 {
		t.Errorf("second Commands() returned %d commands, want 0", len(again))
	}
}

func TestDefaultRendererInitDropsPending(t *testing.T) {
	Init(800, 600)
	SetBlend(BlendAdditive)
	SetCamera(DefaultCamera())

	Init(100, 100)

	if got := Commands(); len(got) != 0 {
		t.Errorf("Commands() after Init returned %d commands, want 0", len(got))
	}
	if w, h := Viewport(); w != 100 || h != 100 {
		t.Errorf("Viewport() = (%d, %d), want (100, 100)", w, h)
	}
}

func TestDefaultRendererResize(t *testing.T) {
	Init(800, 600)
	CreateAtlas(DefaultAtlasCreate(1, 64, 64))
	Resize(1024, 768)

	if w, h := Viewport(); w != 1024 || h != 768 {
		t.Errorf("Viewport() = (%d, %d), want (1024, 768)", w, h)
	}
	if got := Commands(); len(got) != 1 || got[0].Type() != CmdCreateAtlas {
		t.Errorf("Commands() after Resize = %v, want the buffered CreateAtlas", got)
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different renderers")
	}
	Default().FinalizeAtlas(9)
	got := Commands()
	if len(got) != 1 || got[0].(FinalizeAtlasCommand).Atlas != 9 {
		t.Errorf("package-level drain missed command recorded via Default(): %v", got)
	}
}
