package events

// ScrollPayload carries the ambient scroll offset at event time
type ScrollPayload struct {
	Offset int
}

// PointerMovePayload carries the pointer's vertical viewport position
type PointerMovePayload struct {
	Y int
}

// TouchPayload carries a touch point's vertical position
// Used by both touch-start and touch-move events
type TouchPayload struct {
	Y int
}

// ViewportResizePayload carries new viewport dimensions
type ViewportResizePayload struct {
	Width  int
	Height int
}
