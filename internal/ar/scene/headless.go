package scene

import (
	"context"
	"sync"
)

// HeadlessEngine satisfies Engine without a GPU. It keeps the attached nodes
// and the last rendered frame so callers can inspect or rasterize them.
type HeadlessEngine struct {
	loader Loader

	mu       sync.Mutex
	attached []*Node
	last     Frame
	frames   uint64
}

// NewHeadlessEngine creates an engine that loads assets through loader
func NewHeadlessEngine(loader Loader) *HeadlessEngine {
	return &HeadlessEngine{loader: loader}
}

func (e *HeadlessEngine) LoadAsset(ctx context.Context, ref string) (*Node, error) {
	return e.loader.Load(ctx, ref)
}

func (e *HeadlessEngine) Attach(node *Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attached = append(e.attached, node)
}

func (e *HeadlessEngine) Detach(node *Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, n := range e.attached {
		if n == node {
			e.attached = append(e.attached[:i], e.attached[i+1:]...)
			return
		}
	}
}

func (e *HeadlessEngine) RenderFrame(frame Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = frame
	e.frames++
	return nil
}

// Attached returns the nodes currently in the scene
func (e *HeadlessEngine) Attached() []*Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Node(nil), e.attached...)
}

// LastFrame returns the most recent frame and the number rendered so far
func (e *HeadlessEngine) LastFrame() (Frame, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.frames
}
