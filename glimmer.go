package glimmer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlendMode selects the compositing operation used to draw trail strokes.
type BlendMode uint8

const (
	// BlendAdd is additive compositing (ebiten.BlendLighter). Overlapping
	// trails brighten each other, which is what makes them read as light.
	// This is the default.
	BlendAdd BlendMode = iota
	// BlendNormal is standard source-over alpha blending.
	BlendNormal
	// BlendScreen brightens like additive but saturates toward white more
	// gently (1 - (1-src)*(1-dst)).
	BlendScreen
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendLighter
	}
}

// whitePixelImage is the shared 1x1 white source for untextured strokes.
var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Trail ribbons sample it and get their color from per-vertex RGBA.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// normHue wraps a hue in degrees into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
