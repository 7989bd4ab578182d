package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test_pipeline")

	assert.Equal(t, "test_pipeline", p.PipelineKey())
	assert.Equal(t, "vs_main", p.VertexEntryPoint())
	assert.Equal(t, "fs_main", p.FragmentEntryPoint())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Nil(t, p.Pipeline())
}

func TestPipelineBuilderOptions(t *testing.T) {
	layouts := []wgpu.VertexBufferLayout{{ArrayStride: 32}}
	descriptor := wgpu.BindGroupLayoutDescriptor{Label: "test"}

	p := NewPipeline("configured",
		WithSource("@vertex fn main() {}"),
		WithEntryPoints("vert", "frag"),
		WithVertexLayouts(layouts),
		WithBindGroupLayouts(descriptor),
	)

	assert.Equal(t, "@vertex fn main() {}", p.Source())
	assert.Equal(t, "vert", p.VertexEntryPoint())
	assert.Equal(t, "frag", p.FragmentEntryPoint())
	assert.Equal(t, layouts, p.VertexLayouts())
	assert.Len(t, p.BindGroupLayouts(), 1)
	assert.Equal(t, "test", p.BindGroupLayouts()[0].Label)
}
