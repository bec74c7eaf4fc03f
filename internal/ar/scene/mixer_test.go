package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoeNode() *Node {
	root := NewNode("shoe")
	root.Add(
		&Node{Name: "upper", Mesh: true, Material: SlotPrimary, Scale: mgl64.Vec3{1, 1, 1}},
		&Node{Name: "sole", Mesh: true, Material: SlotSole, Scale: mgl64.Vec3{1, 1, 1}},
	)
	return root
}

func TestMixerRotate(t *testing.T) {
	clip, ok := BuiltinClip("rotate")
	require.True(t, ok)

	node := shoeNode()
	var m Mixer
	m.Play(clip, node)

	m.Update(0.5, node)
	assert.InDelta(t, mgl64.DegToRad(22.5), node.Rotation.Y(), 1e-9)

	m.Update(0.5, node)
	assert.InDelta(t, mgl64.DegToRad(45), node.Rotation.Y(), 1e-9)

	name, active := m.Active()
	assert.True(t, active, "rotate loops")
	assert.Equal(t, "rotate", name)
}

func TestMixerScaleUpEndsAndStopRestores(t *testing.T) {
	clip, _ := BuiltinClip("scaleUp")
	node := shoeNode()
	node.Scale = mgl64.Vec3{0.02, 0.02, 0.02}

	var m Mixer
	m.Play(clip, node)
	m.Update(1.0, node)

	assert.InDelta(t, 0.021, node.Scale.X(), 1e-9)
	_, active := m.Active()
	assert.False(t, active)

	m.Play(clip, node)
	m.Update(0.4, node)
	m.Stop(node)
	assert.InDelta(t, 0.021, node.Scale.X(), 1e-9)
}

func TestMixerPulseAndGlowSwapsMaterials(t *testing.T) {
	clip, _ := BuiltinClip("pulseAndGlow")
	node := shoeNode()
	upper := node.Children[0]

	var m Mixer
	m.Play(clip, node)

	m.Update(0.8, node)
	assert.Equal(t, SlotGlow, upper.Material)
	assert.Equal(t, SlotSole, node.Children[1].Material)

	m.Update(0.8, node)
	assert.Equal(t, SlotPrimary, upper.Material)
	assert.InDelta(t, 1.0, node.Scale.X(), 1e-9)

	m.Update(0.8, node)
	m.Stop(node)
	assert.Equal(t, SlotPrimary, upper.Material, "stop restores bindings")
}

func TestMixerHoverIsEased(t *testing.T) {
	clip, _ := BuiltinClip("hover")
	node := shoeNode()

	var m Mixer
	m.Play(clip, node)
	m.Update(0.25, node)
	assert.Less(t, node.Position.Y(), 0.05*0.25)

	m.Update(0.75, node)
	assert.InDelta(t, 0.05, node.Position.Y(), 1e-9)

	m.Update(1.0, node)
	assert.InDelta(t, 0.0, node.Position.Y(), 1e-9)
}

func TestMixerEmbeddedClip(t *testing.T) {
	node := shoeNode()
	var m Mixer
	m.Play(Clip{Name: "Walk", Duration: 2}, node)

	m.Update(1.5, node)
	assert.InDelta(t, 1.5, m.Time(), 1e-9)

	m.Update(1.0, node)
	_, active := m.Active()
	assert.False(t, active)
}

func TestBuiltinClipLengths(t *testing.T) {
	tests := map[string]float64{
		"rotate":         1.0,
		"hover":          2.0,
		"pulseAndGlow":   1.6,
		"floatAndRotate": 2.0,
		"showcase":       1.0 + 0.8 + 0.8 + 1.0 + 1.0,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			clip, ok := BuiltinClip(name)
			require.True(t, ok)
			assert.InDelta(t, want, clip.Length(), 1e-9)
		})
	}
}
