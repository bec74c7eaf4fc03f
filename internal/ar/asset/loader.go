package asset

import (
	"context"
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/qmuntal/gltf"

	"github.com/tair/virtual-tryon/internal/ar/scene"
	"github.com/tair/virtual-tryon/pkg/logger"
)

// glTF materials are bound to the shared shoe slots in document order
var slotOrder = []string{scene.SlotPrimary, scene.SlotSecondary, scene.SlotSole, scene.SlotLaces}

// Loader fetches glTF/GLB models and converts them into scene nodes
type Loader struct {
	fetcher   Fetcher
	materials *scene.MaterialLibrary
}

// NewLoader creates a loader. Materials found in an asset are registered in
// materials for slots that are not already defined; materials may be nil.
func NewLoader(fetcher Fetcher, materials *scene.MaterialLibrary) *Loader {
	return &Loader{fetcher: fetcher, materials: materials}
}

// Load fetches and parses the model at ref
func (l *Loader) Load(ctx context.Context, ref string) (*scene.Node, error) {
	switch strings.ToLower(path.Ext(ref)) {
	case ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ref)
	}

	r, err := l.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var doc gltf.Document
	if err := gltf.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", ref, err)
	}

	root := Convert(&doc, path.Base(ref))

	if l.materials != nil {
		for i, m := range doc.Materials {
			l.materials.SetDefault(slotName(i), convertMaterial(m))
		}
	}

	logger.Debug(ctx).
		Str("model", ref).
		Int("nodes", len(doc.Nodes)).
		Int("materials", len(doc.Materials)).
		Int("animations", len(doc.Animations)).
		Msg("Parsed model")
	return root, nil
}

// Convert builds a scene graph from the default scene of doc
func Convert(doc *gltf.Document, name string) *scene.Node {
	root := scene.NewNode(name)

	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		// no scene: treat every node as a root
		for i := range doc.Nodes {
			roots = append(roots, i)
		}
	}

	visited := make(map[int]bool)
	for _, idx := range roots {
		if n := convertNode(doc, idx, visited); n != nil {
			root.Add(n)
		}
	}

	for i, anim := range doc.Animations {
		root.Clips = append(root.Clips, convertAnimation(doc, i, anim))
	}
	return root
}

func convertNode(doc *gltf.Document, idx int, visited map[int]bool) *scene.Node {
	if idx < 0 || idx >= len(doc.Nodes) || visited[idx] {
		return nil
	}
	visited[idx] = true
	src := doc.Nodes[idx]

	n := scene.NewNode(src.Name)
	n.Position = mgl64.Vec3(src.Translation)
	if s := mgl64.Vec3(src.Scale); s != (mgl64.Vec3{}) {
		n.Scale = s
	}
	n.Rotation = quatToEuler(src.Rotation)

	if src.Mesh != nil && *src.Mesh < len(doc.Meshes) {
		attachMesh(n, doc.Meshes[*src.Mesh])
	}

	for _, child := range src.Children {
		if c := convertNode(doc, child, visited); c != nil {
			n.Add(c)
		}
	}
	return n
}

// attachMesh binds n, or one child per primitive, to material slots
func attachMesh(n *scene.Node, mesh *gltf.Mesh) {
	slots := make([]string, 0, len(mesh.Primitives))
	for _, p := range mesh.Primitives {
		slot := scene.SlotPrimary
		if p.Material != nil {
			slot = slotName(*p.Material)
		}
		slots = append(slots, slot)
	}

	switch len(slots) {
	case 0:
		return
	case 1:
		n.Mesh = true
		n.Material = slots[0]
	default:
		for i, slot := range slots {
			part := scene.NewNode(fmt.Sprintf("%s/%d", mesh.Name, i))
			part.Mesh = true
			part.Material = slot
			n.Add(part)
		}
	}
}

func convertAnimation(doc *gltf.Document, i int, anim *gltf.Animation) scene.Clip {
	name := anim.Name
	if name == "" {
		name = fmt.Sprintf("animation_%d", i)
	}

	var duration float64
	for _, s := range anim.Samplers {
		if s.Input < 0 || s.Input >= len(doc.Accessors) {
			continue
		}
		if bounds := doc.Accessors[s.Input].Max; len(bounds) > 0 {
			duration = math.Max(duration, bounds[0])
		}
	}
	return scene.Clip{Name: name, Duration: duration, Loop: true}
}

func convertMaterial(m *gltf.Material) scene.Material {
	out := scene.Material{
		Lighting:  scene.LightingPBR,
		Color:     "#ffffff",
		Metalness: 1,
		Roughness: 1,
		Opacity:   1,
	}
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		if c := pbr.BaseColorFactor; c != nil {
			out.Color = colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped().Hex()
			out.Opacity = c[3]
		}
		if pbr.MetallicFactor != nil {
			out.Metalness = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			out.Roughness = *pbr.RoughnessFactor
		}
	}
	if e := m.EmissiveFactor; e != [3]float64{} {
		out.Emissive = colorful.Color{R: e[0], G: e[1], B: e[2]}.Clamped().Hex()
		out.EmissiveIntensity = 1
	}
	return out
}

func slotName(i int) string {
	if i >= 0 && i < len(slotOrder) {
		return slotOrder[i]
	}
	return fmt.Sprintf("material_%d", i)
}

// quatToEuler converts an xyzw quaternion to XYZ Euler angles
func quatToEuler(q [4]float64) mgl64.Vec3 {
	if q == [4]float64{} {
		return mgl64.Vec3{}
	}
	m := mgl64.Quat{W: q[3], V: mgl64.Vec3{q[0], q[1], q[2]}}.Normalize().Mat4()

	m13 := math.Max(-1, math.Min(1, m.At(0, 2)))
	y := math.Asin(m13)
	if math.Abs(m13) < 0.9999999 {
		return mgl64.Vec3{math.Atan2(-m.At(1, 2), m.At(2, 2)), y, math.Atan2(-m.At(0, 1), m.At(0, 0))}
	}
	return mgl64.Vec3{math.Atan2(m.At(2, 1), m.At(1, 1)), y, 0}
}
