package pixelstream

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBlendMode_String(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendAlpha, "Alpha"},
		{BlendPremultiplied, "Premultiplied"},
		{BlendAdditive, "Additive"},
		{BlendMultiply, "Multiply"},
		{BlendScreen, "Screen"},
		{BlendOpaque, "Opaque"},
		{BlendMode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendMode_IsValid(t *testing.T) {
	if !BlendAlpha.IsValid() || !BlendOpaque.IsValid() {
		t.Error("defined modes reported invalid")
	}
	if BlendMode(99).IsValid() {
		t.Error("undefined mode reported valid")
	}
}

func TestBlendMode_Factors(t *testing.T) {
	src, dst := BlendAlpha.Factors()
	if src != gputypes.BlendFactorSrcAlpha || dst != gputypes.BlendFactorOneMinusSrcAlpha {
		t.Errorf("BlendAlpha factors = (%v, %v)", src, dst)
	}

	src, dst = BlendOpaque.Factors()
	if src != gputypes.BlendFactorOne || dst != gputypes.BlendFactorZero {
		t.Errorf("BlendOpaque factors = (%v, %v)", src, dst)
	}

	// Unknown modes fall back to alpha blending.
	src, dst = BlendMode(99).Factors()
	if src != gputypes.BlendFactorSrcAlpha || dst != gputypes.BlendFactorOneMinusSrcAlpha {
		t.Errorf("unknown mode factors = (%v, %v)", src, dst)
	}
}
