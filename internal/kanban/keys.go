package kanban

import "strings"

// Key is a board key the controller understands.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeySpace
	KeyEscape
	KeyLeft
	KeyRight
)

// ParseKey maps a key name ("enter", "space", "esc", "left", "right", and
// their common aliases) to a Key. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "enter", "return":
		return KeyEnter
	case "space", " ":
		return KeySpace
	case "esc", "escape":
		return KeyEscape
	case "left", "arrowleft":
		return KeyLeft
	case "right", "arrowright":
		return KeyRight
	default:
		return KeyOther
	}
}

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "esc"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// DropEffect mirrors the drag-transfer intent reported on drag start.
type DropEffect string

// EffectMove is the only effect boards use.
const EffectMove DropEffect = "move"
