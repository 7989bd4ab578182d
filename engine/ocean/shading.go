package ocean

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/swell-go/common"
)

// ShadeParams holds the tunable lighting constants for the surface shading
// model. The blend order in Shade is fixed for visual parity with the fragment
// stage; these weights are look controls, not contract.
type ShadeParams struct {
	// LightDirection is the direction light travels, world space. Need not be
	// normalized; Shade normalizes it.
	LightDirection [3]float32
	// LightColor tints the specular and translucency contributions.
	LightColor [3]float32
	// SkyColor is the reflected color mixed in by the fresnel factor.
	SkyColor [3]float32
	// Shininess is the Blinn-Phong specular exponent.
	Shininess float32
	// TranslucencyDistortion bends the light vector toward the surface normal
	// before the scattering dot product.
	TranslucencyDistortion float32
	// TranslucencyPower sharpens the scattering lobe.
	TranslucencyPower float32
	// TranslucencyScale scales the scattering contribution.
	TranslucencyScale float32
	// TranslucencyAmbient is the scattering floor applied regardless of view
	// angle.
	TranslucencyAmbient float32
}

// DefaultShadeParams returns the standard open-ocean look. The values mirror
// the constants in assets/ocean.wgsl so the CPU reference and the fragment
// stage produce the same color for the same inputs.
//
// Returns:
//   - ShadeParams: the default shading constants
func DefaultShadeParams() ShadeParams {
	return ShadeParams{
		LightDirection:         [3]float32{-0.5, -1.0, -0.3},
		LightColor:             [3]float32{1.0, 0.98, 0.9},
		SkyColor:               [3]float32{0.53, 0.72, 0.87},
		Shininess:              64,
		TranslucencyDistortion: 0.4,
		TranslucencyPower:      4,
		TranslucencyScale:      1.2,
		TranslucencyAmbient:    0.05,
	}
}

// NormalizedHeight maps a world-space surface height into the [0, 1] ramp
// coordinate: (worldY + amplitudeSum) / (2 * amplitudeSum), clamped because
// superposition overshoot can transiently push worldY past the amplitude sum.
// A non-positive amplitude sum (empty wave set) short-circuits to the ramp
// midpoint rather than dividing by zero.
//
// Parameters:
//   - worldY: the displaced surface height
//   - amplitudeSum: the wave set's amplitude sum
//
// Returns:
//   - float32: the ramp coordinate in [0, 1]
func NormalizedHeight(worldY, amplitudeSum float32) float32 {
	if amplitudeSum <= 0 {
		return 0.5
	}
	h := (worldY + amplitudeSum) / (2 * amplitudeSum)
	if h < 0 {
		return 0
	}
	if h > 1 {
		return 1
	}
	return h
}

// Shade is the CPU reference of the fragment shading model. It computes, in
// order: the view vector, the Blinn-Phong specular term, the Schlick fresnel
// approximation, the height-indexed underwater color, and the crest
// translucency term, then mixes underwater+translucency against the sky color
// by the fresnel factor and adds specular.
//
// Pure per-fragment function; safe to map over any number of samples
// concurrently.
//
// Parameters:
//   - p: the shading constants
//   - normal: the interpolated unit surface normal
//   - worldPos: the displaced world-space position
//   - cameraPos: the world-space camera position
//   - ramp: the underwater color gradient
//   - amplitudeSum: the wave set's amplitude sum
//
// Returns:
//   - [3]float32: the final linear RGB color
func Shade(p ShadeParams, normal, worldPos, cameraPos [3]float32, ramp *Ramp, amplitudeSum float32) [3]float32 {
	n := normal
	common.Normalize3(&n)

	view := [3]float32{
		cameraPos[0] - worldPos[0],
		cameraPos[1] - worldPos[1],
		cameraPos[2] - worldPos[2],
	}
	common.Normalize3(&view)

	lightDir := p.LightDirection
	common.Normalize3(&lightDir)
	light := [3]float32{-lightDir[0], -lightDir[1], -lightDir[2]}

	halfway := [3]float32{view[0] + light[0], view[1] + light[1], view[2] + light[2]}
	common.Normalize3(&halfway)
	specular := clamp01(math32.Pow(math32.Max(dot3(n, halfway), 0), p.Shininess))

	fresnel := clamp01(math32.Pow(1-dot3(view, n), 4))

	height := NormalizedHeight(worldPos[1], amplitudeSum)
	underwater := ramp.Sample(height)

	distorted := [3]float32{
		lightDir[0] + n[0]*p.TranslucencyDistortion,
		lightDir[1] + n[1]*p.TranslucencyDistortion,
		lightDir[2] + n[2]*p.TranslucencyDistortion,
	}
	common.Normalize3(&distorted)
	heightFactor := smoothstep01(height)
	translucency := (math32.Pow(clamp01(-dot3(view, distorted)), p.TranslucencyPower)*
		p.TranslucencyScale + p.TranslucencyAmbient) * heightFactor

	var out [3]float32
	for c := range 3 {
		water := underwater[c] + translucency*p.LightColor[c]
		out[c] = water + (p.SkyColor[c]-water)*fresnel + specular*p.LightColor[c]
	}
	return out
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep01 is the cubic hermite smoothstep over [0, 1].
func smoothstep01(t float32) float32 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}
