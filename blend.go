package pixelstream

import "github.com/gogpu/gputypes"

// BlendMode selects how sprite and tile pixels composite onto the target.
// The mode applies to every draw command that follows the SetBlend command
// in the stream, until the next SetBlend.
type BlendMode uint8

const (
	// BlendAlpha is classic source-over with straight alpha.
	BlendAlpha BlendMode = iota
	// BlendPremultiplied is source-over with premultiplied alpha.
	BlendPremultiplied
	// BlendAdditive adds source to destination (light effects, particles).
	BlendAdditive
	// BlendMultiply multiplies destination by source (shadows, tinting).
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again (glow).
	BlendScreen
	// BlendOpaque replaces the destination outright.
	BlendOpaque
)

// blendModeNames maps BlendMode values to their string representation.
var blendModeNames = [...]string{
	BlendAlpha:         "Alpha",
	BlendPremultiplied: "Premultiplied",
	BlendAdditive:      "Additive",
	BlendMultiply:      "Multiply",
	BlendScreen:        "Screen",
	BlendOpaque:        "Opaque",
}

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// IsValid reports whether m is one of the defined blend modes.
func (m BlendMode) IsValid() bool {
	return int(m) < len(blendModeNames)
}

// Factors returns the source and destination blend factors a GPU pipeline
// would use for this mode. Consumers that build wgpu-style pipelines can
// plug these straight into their color blend component.
func (m BlendMode) Factors() (src, dst gputypes.BlendFactor) {
	switch m {
	case BlendPremultiplied:
		return gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendAdditive:
		return gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOne
	case BlendMultiply:
		return gputypes.BlendFactorDst, gputypes.BlendFactorZero
	case BlendScreen:
		return gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc
	case BlendOpaque:
		return gputypes.BlendFactorOne, gputypes.BlendFactorZero
	default: // BlendAlpha
		return gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	}
}
