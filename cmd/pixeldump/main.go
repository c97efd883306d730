// Command pixeldump inspects encoded pixelstream command batches.
//
// With no arguments it encodes a built-in sample frame and dumps it;
// given a file it decodes and dumps that batch instead. Useful for
// debugging the boundary format between a host and its rasterizer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/pixelstream"
	"github.com/gogpu/pixelstream/wire"
)

func main() {
	var (
		input = flag.String("input", "", "encoded batch to dump (default: built-in sample)")
		out   = flag.String("encode", "", "also write the encoded batch to this file")
	)
	flag.Parse()

	var data []byte
	if *input != "" {
		var err error
		data, err = os.ReadFile(*input)
		if err != nil {
			log.Fatalf("read %s: %v", *input, err)
		}
	} else {
		data = wire.Encode(sampleFrame())
	}

	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
	}

	cmds, err := wire.Decode(data)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Printf("batch: %d bytes, %d commands\n", len(data), len(cmds))
	for i, cmd := range cmds {
		fmt.Printf("%4d  %s%s\n", i, cmd.Type(), detail(cmd))
	}
}

// detail renders the interesting payload fields of a command.
func detail(cmd pixelstream.Command) string {
	switch c := cmd.(type) {
	case pixelstream.BeginFrameCommand:
		if c.Clear != nil {
			return fmt.Sprintf("  clear=#%08x", c.Clear.Pack())
		}
		return "  clear=none"
	case pixelstream.SetBlendCommand:
		return "  mode=" + c.Mode.String()
	case pixelstream.SetCameraCommand:
		return fmt.Sprintf("  pos=(%g, %g) zoom=%g rot=%g",
			c.Camera.X, c.Camera.Y, c.Camera.Zoom, c.Camera.Rotation)
	case pixelstream.CreateAtlasCommand:
		return fmt.Sprintf("  atlas=%d %dx%d", c.Desc.ID, c.Desc.Width, c.Desc.Height)
	case pixelstream.UploadAtlasChunkCommand:
		return fmt.Sprintf("  atlas=%d at=(%d, %d) %dx%d (%d bytes)",
			c.Chunk.Atlas, c.Chunk.X, c.Chunk.Y, c.Chunk.Width, c.Chunk.Height, len(c.Chunk.Pixels))
	case pixelstream.FinalizeAtlasCommand:
		return fmt.Sprintf("  atlas=%d", c.Atlas)
	case pixelstream.DrawSpriteCommand:
		return fmt.Sprintf("  atlas=%d at=(%g, %g)", c.Sprite.Atlas, c.Sprite.X, c.Sprite.Y)
	case pixelstream.DrawTilesCommand:
		return fmt.Sprintf("  atlas=%d tiles=%d cols=%d", c.Tiles.Atlas, len(c.Tiles.Indices), c.Tiles.Columns)
	default:
		return ""
	}
}

// sampleFrame records a small representative frame.
func sampleFrame() []pixelstream.Command {
	r := pixelstream.NewRenderer()
	r.Init(320, 240)

	r.CreateAtlas(pixelstream.DefaultAtlasCreate(1, 128, 128))
	r.UploadAtlasChunk(pixelstream.AtlasChunk{
		Atlas: 1, Width: 2, Height: 2,
		Pixels: []uint8{
			255, 0, 0, 255, 0, 255, 0, 255,
			0, 0, 255, 255, 255, 255, 255, 255,
		},
	})
	r.FinalizeAtlas(1)

	clear := pixelstream.Black
	r.BeginFrame(&clear)
	r.SetBlend(pixelstream.BlendPremultiplied)
	r.DrawSprite(pixelstream.NewSprite(1, pixelstream.TexRect{Width: 2, Height: 2}, 10, 10))
	r.EndFrame()

	return r.Drain()
}
