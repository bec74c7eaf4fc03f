package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mixer plays one clip at a time against a target node
type Mixer struct {
	clip     *Clip
	step     int
	elapsed  float64 // seconds into the current step
	time     float64 // seconds into the clip
	base     Transform
	bindings map[*Node]string
}

// Play starts clip on target, replacing any running clip
func (m *Mixer) Play(clip Clip, target *Node) {
	m.Stop(target)
	m.clip = &clip
	m.step, m.elapsed, m.time = 0, 0, 0
	if target == nil {
		return
	}
	m.base = target.transform()
	m.bindings = make(map[*Node]string)
	target.Walk(func(n *Node) {
		if n.Mesh {
			m.bindings[n] = n.Material
		}
	})
}

// Stop ends the running clip and restores the position, scale and material
// bindings the clip started from. Rotation is left as is.
func (m *Mixer) Stop(target *Node) {
	if m.clip == nil {
		return
	}
	if target != nil && len(m.clip.Steps) > 0 {
		target.Position = m.base.Position
		target.Scale = m.base.Scale
		for n, slot := range m.bindings {
			n.Material = slot
		}
	}
	m.clip = nil
	m.bindings = nil
}

// Active returns the running clip name
func (m *Mixer) Active() (string, bool) {
	if m.clip == nil {
		return "", false
	}
	return m.clip.Name, true
}

// Time returns the playback position of the running clip in seconds
func (m *Mixer) Time() float64 {
	return m.time
}

// Update advances the running clip by dt seconds
func (m *Mixer) Update(dt float64, target *Node) {
	if m.clip == nil || dt <= 0 {
		return
	}
	clip := m.clip
	length := clip.Length()
	if length <= 0 {
		m.clip = nil
		return
	}

	if len(clip.Steps) == 0 {
		m.time += dt
		if m.time >= length {
			if clip.Loop {
				m.time = math.Mod(m.time, length)
			} else {
				m.clip = nil
			}
		}
		return
	}

	for dt > 0 && m.clip != nil {
		step := clip.Steps[m.step]
		stepLen := step.duration()
		take := math.Min(dt, stepLen-m.elapsed)

		if target != nil {
			for _, t := range step {
				m.apply(t, m.elapsed, m.elapsed+take, target)
			}
		}

		m.elapsed += take
		m.time += take
		dt -= take

		if m.elapsed >= stepLen {
			m.elapsed = 0
			m.step++
			if m.step == len(clip.Steps) {
				if !clip.Loop {
					m.clip = nil
					m.bindings = nil
					return
				}
				m.step = 0
				m.time = 0
			}
		}
	}
}

func (m *Mixer) apply(t Tween, from, to float64, target *Node) {
	before := progress(from, t.Duration, t.Ease)
	after := progress(to, t.Duration, t.Ease)
	if after == before {
		return
	}

	switch t.Property {
	case PropRotateY:
		target.Rotation[1] += mgl64.DegToRad(t.Delta) * (after - before)
	case PropPositionY:
		target.Position[1] += t.Delta * (after - before)
	case PropScale:
		target.Scale = target.Scale.Add(m.base.Scale.Mul(t.Delta * (after - before)))
	case PropMaterial:
		if after >= 1 {
			target.Walk(func(n *Node) {
				if n.Mesh && n.Material == t.From {
					n.Material = t.To
				}
			})
		}
	}
}

func progress(at, duration float64, ease bool) float64 {
	if duration <= 0 {
		return 1
	}
	p := math.Min(math.Max(at/duration, 0), 1)
	if ease {
		return p * p * (3 - 2*p)
	}
	return p
}

// Rebase makes target's current transform the one Stop restores
func (m *Mixer) Rebase(target *Node) {
	if m.clip != nil && target != nil {
		m.base = target.transform()
	}
}
