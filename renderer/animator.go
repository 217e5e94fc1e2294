package renderer

import (
	"fmt"

	"gloom-engine/animation"
	"gloom-engine/math"
	"gloom-engine/scene"
)

// Animator flies every helicopter in a graph along the flight path and
// spins its rotors.
type Animator struct {
	graph *scene.Graph
	rigs  []scene.Rig
	homes []math.Vec3

	// PhaseOffset shifts instance i along the path by i*PhaseOffset seconds.
	PhaseOffset    float32
	MainRotorSpeed float32
	TailRotorSpeed float32
}

// NewAnimator collects the helicopters in g. Each body's current position
// becomes the centre of its flight path.
func NewAnimator(g *scene.Graph) (*Animator, error) {
	a := &Animator{graph: g}
	for _, body := range g.Helicopters() {
		rig, err := g.RigOf(body)
		if err != nil {
			return nil, fmt.Errorf("animator: %w", err)
		}
		a.rigs = append(a.rigs, rig)
		a.homes = append(a.homes, g.Node(body).Position)
	}
	return a, nil
}

// Len is the number of animated helicopters.
func (a *Animator) Len() int { return len(a.rigs) }

// Update poses every helicopter at elapsed seconds since start.
func (a *Animator) Update(elapsed float32) {
	for i, rig := range a.rigs {
		t := elapsed + float32(i)*a.PhaseOffset
		h := animation.FlightPath(t)

		body := a.graph.Node(rig.Body)
		body.Position = a.homes[i].Add(math.Vec3{h.X, 0, h.Z})
		body.Rotation = math.Vec3{h.Pitch, h.Yaw, h.Roll}

		a.graph.Node(rig.MainRotor).Rotation = math.Vec3{0, animation.Spin(t, a.MainRotorSpeed), 0}
		a.graph.Node(rig.TailRotor).Rotation = math.Vec3{animation.Spin(t, a.TailRotorSpeed), 0, 0}
	}
}
