package input

import "strconv"

// Key identifies a keyboard key. Values match GLFW key codes so the window
// layer converts with a plain integer cast.
type Key int

const (
	KeyUnknown   Key = -1
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyD         Key = 68
	KeyE         Key = 69
	KeyQ         Key = 81
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyLeftShift Key = 340
)

var keyNames = map[Key]string{
	KeySpace:     "Space",
	KeyA:         "A",
	KeyD:         "D",
	KeyE:         "E",
	KeyQ:         "Q",
	KeyS:         "S",
	KeyW:         "W",
	KeyEscape:    "Escape",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyDown:      "Down",
	KeyUp:        "Up",
	KeyLeftShift: "LeftShift",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
