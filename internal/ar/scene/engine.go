package scene

import "context"

// Frame is everything a renderer needs to draw one frame
type Frame struct {
	Seq       uint64
	Camera    PerspectiveCamera
	Lights    []Light
	Nodes     []*Node
	Materials map[string]Material
	Shadow    float64
}

// Engine is the 3D collaborator the controller drives. LoadAsset may block on
// I/O; the other methods are called with the controller lock held and must not.
type Engine interface {
	LoadAsset(ctx context.Context, ref string) (*Node, error)
	Attach(node *Node)
	Detach(node *Node)
	RenderFrame(frame Frame) error
}

// Loader fetches and parses a model asset into a scene node
type Loader interface {
	Load(ctx context.Context, ref string) (*Node, error)
}
