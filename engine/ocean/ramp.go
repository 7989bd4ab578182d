package ocean

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/swell-go/common"
)

// defaultRampWidth is the pixel width of the generated underwater gradient.
// 256 texels is plenty for a smooth ramp at any wave amplitude.
const defaultRampWidth = 256

// Ramp is a 1D RGBA color gradient sampled by normalized surface height. The
// same pixels back both the CPU shading reference (Sample) and the GPU lookup
// texture (StagingData), so the two paths always agree on color.
type Ramp struct {
	pixels []byte // RGBA8, width*4 bytes
	width  int
}

// rampStop is a control point for building a gradient.
type rampStop struct {
	at    float32
	color [3]float32
}

// NewRamp builds a Ramp of the given width by linearly interpolating the
// control points. Stops must be sorted by position in [0, 1]; coverage outside
// the first and last stop clamps to their colors.
//
// Parameters:
//   - width: the pixel width of the ramp, minimum 2
//   - stops: the gradient control points in ascending position order
//
// Returns:
//   - *Ramp: the generated ramp
func NewRamp(width int, stops ...rampStop) *Ramp {
	if width < 2 {
		width = 2
	}
	r := &Ramp{
		pixels: make([]byte, width*4),
		width:  width,
	}
	for x := range width {
		u := float32(x) / float32(width-1)
		c := evalStops(stops, u)
		r.pixels[x*4+0] = floatToByte(c[0])
		r.pixels[x*4+1] = floatToByte(c[1])
		r.pixels[x*4+2] = floatToByte(c[2])
		r.pixels[x*4+3] = 255
	}
	return r
}

// DefaultRamp returns the standard deep-water-to-foam gradient: near-black
// deep blue at the troughs rising through mid blues and greens to a pale foam
// tint at the crests.
//
// Returns:
//   - *Ramp: the default underwater gradient
func DefaultRamp() *Ramp {
	return NewRamp(defaultRampWidth,
		rampStop{at: 0.0, color: [3]float32{0.00, 0.03, 0.10}},
		rampStop{at: 0.35, color: [3]float32{0.00, 0.13, 0.27}},
		rampStop{at: 0.60, color: [3]float32{0.02, 0.30, 0.40}},
		rampStop{at: 0.85, color: [3]float32{0.10, 0.55, 0.55}},
		rampStop{at: 1.0, color: [3]float32{0.65, 0.85, 0.80}},
	)
}

// Sample reads the ramp at the given coordinate with clamp-to-edge addressing
// and linear filtering, mirroring how the GPU sampler reads the uploaded
// texture. Coordinates outside [0, 1] clamp to the edge texels rather than
// wrapping.
//
// Parameters:
//   - u: the sample coordinate, normally in [0, 1]
//
// Returns:
//   - [3]float32: the filtered RGB color in [0, 1]
func (r *Ramp) Sample(u float32) [3]float32 {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}

	pos := u * float32(r.width-1)
	lo := int(math32.Floor(pos))
	hi := lo + 1
	if hi > r.width-1 {
		hi = r.width - 1
	}
	frac := pos - float32(lo)

	var out [3]float32
	for c := range 3 {
		a := float32(r.pixels[lo*4+c]) / 255
		b := float32(r.pixels[hi*4+c]) / 255
		out[c] = a + (b-a)*frac
	}
	return out
}

// Width returns the pixel width of the ramp.
//
// Returns:
//   - int: the ramp width in texels
func (r *Ramp) Width() int {
	return r.width
}

// StagingData returns the ramp pixels as texture staging data for GPU upload,
// shaped as a width x 1 RGBA8 image.
//
// Returns:
//   - common.TextureStagingData: the upload-ready pixel data
func (r *Ramp) StagingData() common.TextureStagingData {
	px := make([]byte, len(r.pixels))
	copy(px, r.pixels)
	return common.TextureStagingData{
		Pixels: px,
		Width:  uint32(r.width),
		Height: 1,
	}
}

// evalStops interpolates the control points at u, clamping outside the
// covered range.
func evalStops(stops []rampStop, u float32) [3]float32 {
	if len(stops) == 0 {
		return [3]float32{}
	}
	if u <= stops[0].at {
		return stops[0].color
	}
	last := stops[len(stops)-1]
	if u >= last.at {
		return last.color
	}
	for i := 1; i < len(stops); i++ {
		if u <= stops[i].at {
			a, b := stops[i-1], stops[i]
			span := b.at - a.at
			t := float32(0)
			if span > 0 {
				t = (u - a.at) / span
			}
			return [3]float32{
				a.color[0] + (b.color[0]-a.color[0])*t,
				a.color[1] + (b.color[1]-a.color[1])*t,
				a.color[2] + (b.color[2]-a.color[2])*t,
			}
		}
	}
	return last.color
}

func floatToByte(f float32) byte {
	v := f * 255
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return byte(v + 0.5)
}
