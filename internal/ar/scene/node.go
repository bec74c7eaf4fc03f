package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Node is an element of the scene graph. Mesh nodes reference a material
// slot by name; the slot is resolved against the controller's material
// library at render time.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles in radians, XYZ order
	Scale    mgl64.Vec3
	Mesh     bool
	Material string
	Children []*Node
	Clips    []Clip
}

// NewNode returns a node with identity transform
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl64.Vec3{1, 1, 1}}
}

// Add appends children and returns n
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth first
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// MaterialSlots lists the distinct material slots used by mesh descendants
func (n *Node) MaterialSlots() []string {
	seen := make(map[string]bool)
	var slots []string
	n.Walk(func(node *Node) {
		if node.Mesh && node.Material != "" && !seen[node.Material] {
			seen[node.Material] = true
			slots = append(slots, node.Material)
		}
	})
	return slots
}

// Clip returns the embedded clip with the given name
func (n *Node) Clip(name string) (Clip, bool) {
	for _, c := range n.Clips {
		if c.Name == name {
			return c, true
		}
	}
	return Clip{}, false
}

// Transform is the local position, rotation and scale of a node
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

func (n *Node) transform() Transform {
	return Transform{Position: n.Position, Rotation: n.Rotation, Scale: n.Scale}
}
