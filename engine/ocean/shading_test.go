package ocean

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNormalizedHeight(t *testing.T) {
	tests := []struct {
		name         string
		worldY       float32
		amplitudeSum float32
		want         float32
	}{
		{name: "baseline maps to midpoint", worldY: 0, amplitudeSum: 1, want: 0.5},
		{name: "crest maps to one", worldY: 1, amplitudeSum: 1, want: 1},
		{name: "trough maps to zero", worldY: -1, amplitudeSum: 1, want: 0},
		{name: "overshoot clamps high", worldY: 3, amplitudeSum: 1, want: 1},
		{name: "overshoot clamps low", worldY: -3, amplitudeSum: 1, want: 0},
		{name: "quarter height", worldY: -0.25, amplitudeSum: 0.5, want: 0.25},
		{name: "zero amplitude sum", worldY: 0.7, amplitudeSum: 0, want: 0.5},
		{name: "negative amplitude sum", worldY: 0.7, amplitudeSum: -1, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizedHeight(tt.worldY, tt.amplitudeSum), 1e-6)
		})
	}
}

func TestShadeDeterministic(t *testing.T) {
	p := DefaultShadeParams()
	ramp := DefaultRamp()
	normal := [3]float32{0.1, 0.95, -0.2}
	worldPos := [3]float32{3, 0.2, -1}
	cameraPos := [3]float32{10, 8, 10}

	a := Shade(p, normal, worldPos, cameraPos, ramp, 0.5)
	b := Shade(p, normal, worldPos, cameraPos, ramp, 0.5)
	assert.Equal(t, a, b)
}

func TestShadeOutputIsFinite(t *testing.T) {
	p := DefaultShadeParams()
	ramp := DefaultRamp()

	positions := [][3]float32{{0, 0, 0}, {5, 0.5, 5}, {-3, -0.5, 2}}
	normals := [][3]float32{{0, 1, 0}, {0.3, 0.9, 0.1}, {-0.2, 0.97, 0.2}}
	cameras := [][3]float32{{0, 10, 0}, {15, 5, 15}, {0, 0.5, 30}}

	for _, pos := range positions {
		for _, n := range normals {
			for _, cam := range cameras {
				out := Shade(p, n, pos, cam, ramp, 0.5)
				for c := range 3 {
					assert.False(t, math32.IsNaN(out[c]) || math32.IsInf(out[c], 0),
						"channel %d at pos=%v n=%v cam=%v", c, pos, n, cam)
					assert.GreaterOrEqual(t, out[c], float32(0))
				}
			}
		}
	}
}

func TestShadeGrazingAngleReflectsSky(t *testing.T) {
	p := DefaultShadeParams()
	ramp := DefaultRamp()
	normal := [3]float32{0, 1, 0}
	worldPos := [3]float32{0, 0, 0}

	headOn := Shade(p, normal, worldPos, [3]float32{0, 10, 0}, ramp, 1)
	grazing := Shade(p, normal, worldPos, [3]float32{0, 0.2, 30}, ramp, 1)

	// The fresnel factor pulls a grazing view toward the sky color.
	distSq := func(c [3]float32) float32 {
		var d float32
		for i := range 3 {
			diff := c[i] - p.SkyColor[i]
			d += diff * diff
		}
		return d
	}
	assert.Less(t, distSq(grazing), distSq(headOn))
}

func TestShadeCrestsBrighterThanTroughs(t *testing.T) {
	p := DefaultShadeParams()
	ramp := DefaultRamp()
	normal := [3]float32{0, 1, 0}
	cameraPos := [3]float32{0, 15, 0}
	amplitudeSum := float32(0.5)

	crest := Shade(p, normal, [3]float32{0, amplitudeSum, 0}, cameraPos, ramp, amplitudeSum)
	trough := Shade(p, normal, [3]float32{0, -amplitudeSum, 0}, cameraPos, ramp, amplitudeSum)

	luminance := func(c [3]float32) float32 {
		return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
	}
	assert.Greater(t, luminance(crest), luminance(trough))
}

func TestDefaultShadeParamsMirrorShaderConstants(t *testing.T) {
	p := DefaultShadeParams()
	assert.InDelta(t, 64, p.Shininess, 1e-6)
	assert.InDelta(t, 0.4, p.TranslucencyDistortion, 1e-6)
	assert.InDelta(t, 4, p.TranslucencyPower, 1e-6)
	assert.Negative(t, p.LightDirection[1], "light travels downward")
}
