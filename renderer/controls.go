package renderer

import (
	"gloom-engine/input"
	"gloom-engine/scene"
)

// Controls maps held keys and mouse motion onto the camera. Key effects are
// continuous and scale with the frame's delta time.
type Controls struct {
	MoveSpeed        float32
	TurnSpeed        float32
	MouseSensitivity float32
}

// Apply updates cam for one frame. Unbound keys are ignored.
func (c Controls) Apply(cam *scene.Camera, keys []input.Key, dx, dy, dt float32) {
	var forward, right, up, pitch, yaw float32
	for _, k := range keys {
		switch k {
		case input.KeyW:
			forward++
		case input.KeyS:
			forward--
		case input.KeyD:
			right++
		case input.KeyA:
			right--
		case input.KeySpace:
			up++
		case input.KeyLeftShift:
			up--
		case input.KeyUp:
			pitch++
		case input.KeyDown:
			pitch--
		case input.KeyLeft:
			yaw++
		case input.KeyRight:
			yaw--
		}
	}

	move := c.MoveSpeed * dt
	cam.Move(forward*move, right*move, up*move)

	turn := c.TurnSpeed * dt
	// screen y grows downward; moving the mouse right turns right
	cam.Turn(pitch*turn-dy*c.MouseSensitivity, yaw*turn-dx*c.MouseSensitivity)
}
