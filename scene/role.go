package scene

// Role tags a node with what it is, so code can find a part by name
// instead of by its position in a child list.
type Role int

const (
	RoleNone Role = iota
	RoleRoot
	RoleTerrain
	RoleBody
	RoleDoor
	RoleMainRotor
	RoleTailRotor
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleRoot:
		return "root"
	case RoleTerrain:
		return "terrain"
	case RoleBody:
		return "body"
	case RoleDoor:
		return "door"
	case RoleMainRotor:
		return "main-rotor"
	case RoleTailRotor:
		return "tail-rotor"
	}
	return "unknown"
}
