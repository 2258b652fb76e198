package domain

// InputKind discriminates viewer input events. The set is closed:
// anything else is rejected at dispatch instead of silently dropped.
type InputKind string

const (
	PointerMove   InputKind = "pointerMove"
	PointerClick  InputKind = "pointerClick"
	PointerScroll InputKind = "pointerScroll"
	PointerDrag   InputKind = "pointerDrag"
	KeyDown       InputKind = "keyDown"
	KeyUp         InputKind = "keyUp"
	KeyType       InputKind = "keyType"
)

// InputEvent is a viewer action expressed in logical canvas coordinates.
// It is constructed at the boundary, translated, dispatched and discarded.
type InputEvent struct {
	Kind   InputKind `json:"kind"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Button string    `json:"button,omitempty"` // left | right | middle
	Amount int       `json:"amount,omitempty"` // scroll delta
	Key    string    `json:"key,omitempty"`    // key symbol or text for keyType
}

// PhysicalEvent is an InputEvent translated into host-display coordinates.
type PhysicalEvent struct {
	Kind   InputKind
	X      int
	Y      int
	Button string
	Amount int
	Key    string
}
