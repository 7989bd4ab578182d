package ocean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// byteTol covers the RGBA8 quantization error of a ramp texel.
const byteTol = 0.0025

func TestNewRampMinimumWidth(t *testing.T) {
	r := NewRamp(0, rampStop{at: 0, color: [3]float32{0, 0, 0}}, rampStop{at: 1, color: [3]float32{1, 1, 1}})
	assert.Equal(t, 2, r.Width())
}

func TestRampSampleEndpoints(t *testing.T) {
	low := [3]float32{0.1, 0.2, 0.3}
	high := [3]float32{0.9, 0.8, 0.7}
	r := NewRamp(64, rampStop{at: 0, color: low}, rampStop{at: 1, color: high})

	for c := range 3 {
		assert.InDelta(t, low[c], r.Sample(0)[c], byteTol)
		assert.InDelta(t, high[c], r.Sample(1)[c], byteTol)
	}
}

func TestRampSampleClampsOutOfRange(t *testing.T) {
	r := DefaultRamp()
	assert.Equal(t, r.Sample(0), r.Sample(-5))
	assert.Equal(t, r.Sample(1), r.Sample(2))
}

func TestRampSampleInterpolates(t *testing.T) {
	r := NewRamp(256, rampStop{at: 0, color: [3]float32{0, 0, 0}}, rampStop{at: 1, color: [3]float32{1, 1, 1}})

	mid := r.Sample(0.5)
	for c := range 3 {
		assert.InDelta(t, 0.5, mid[c], byteTol)
	}

	// Increasing coordinate never darkens a monotonic gradient.
	prev := r.Sample(0)
	for i := 1; i <= 20; i++ {
		cur := r.Sample(float32(i) / 20)
		for c := range 3 {
			assert.GreaterOrEqual(t, cur[c]+byteTol, prev[c])
		}
		prev = cur
	}
}

func TestRampSampleMatchesPixels(t *testing.T) {
	r := DefaultRamp()
	data := r.StagingData()

	// At exact texel centers the filtered sample is the stored pixel.
	for _, x := range []int{0, 1, 63, 128, 255} {
		u := float32(x) / float32(r.Width()-1)
		got := r.Sample(u)
		for c := range 3 {
			want := float32(data.Pixels[x*4+c]) / 255
			assert.InDelta(t, want, got[c], 1e-5, "texel %d channel %d", x, c)
		}
	}
}

func TestRampStagingDataShape(t *testing.T) {
	r := DefaultRamp()
	data := r.StagingData()

	assert.Equal(t, uint32(r.Width()), data.Width)
	assert.Equal(t, uint32(1), data.Height)
	assert.Len(t, data.Pixels, r.Width()*4)

	for x := range r.Width() {
		assert.Equal(t, byte(255), data.Pixels[x*4+3], "alpha at texel %d", x)
	}

	// The returned pixels are a copy; mutating them must not affect sampling.
	before := r.Sample(0)
	data.Pixels[0] = 255
	assert.Equal(t, before, r.Sample(0))
}
