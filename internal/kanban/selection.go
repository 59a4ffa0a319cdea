package kanban

// Mode identifies what, if anything, the user currently holds.
type Mode int

const (
	ModeNone Mode = iota
	ModeDragging
	ModeKeyboard
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeKeyboard:
		return "keyboard"
	default:
		return "none"
	}
}

// Selection is the single transient selection of a board. A drag and a
// keyboard pick can never coexist: setting one replaces the other.
// For keyboard picks the held item carries the cached status used to
// compose consecutive steps.
type Selection[T Item[T]] struct {
	mode Mode
	item T
}

// NoSelection returns the empty selection.
func NoSelection[T Item[T]]() Selection[T] {
	return Selection[T]{}
}

// Dragging returns a pointer-drag selection of item.
func Dragging[T Item[T]](item T) Selection[T] {
	return Selection[T]{mode: ModeDragging, item: item}
}

// Picked returns a keyboard selection of item.
func Picked[T Item[T]](item T) Selection[T] {
	return Selection[T]{mode: ModeKeyboard, item: item}
}

// Mode returns the selection mode.
func (s Selection[T]) Mode() Mode {
	return s.mode
}

// Item returns the held item and whether anything is held.
func (s Selection[T]) Item() (T, bool) {
	return s.item, s.mode != ModeNone
}

// Holds reports whether the selection is in mode and refers to id.
func (s Selection[T]) Holds(mode Mode, id string) bool {
	return s.mode == mode && s.mode != ModeNone && s.item.GetID() == id
}

// IsEmpty reports whether nothing is selected.
func (s Selection[T]) IsEmpty() bool {
	return s.mode == ModeNone
}
