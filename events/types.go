package events

// EventType identifies a bar input or notification event
type EventType int

const (
	// EventScroll carries a new content scroll offset
	// Producer: input layer | Consumer: bar controller | Payload: *ScrollPayload
	EventScroll EventType = iota

	// EventPointerMove carries the pointer's vertical viewport position
	// Producer: input layer | Consumer: bar controller | Payload: *PointerMovePayload
	EventPointerMove

	// EventTouchStart marks the start of a touch gesture
	// Producer: input layer | Consumer: bar controller | Payload: *TouchPayload
	EventTouchStart

	// EventTouchMove carries touch motion within a gesture
	// Producer: input layer | Consumer: bar controller | Payload: *TouchPayload
	EventTouchMove

	// EventViewportResize carries new viewport dimensions
	// Producer: input layer | Consumer: bar controller | Payload: *ViewportResizePayload
	EventViewportResize

	// EventBarShown signals the bar leaving the hidden state
	// Producer: apply step | Consumer: audio cues | Payload: nil
	EventBarShown

	// EventBarHidden signals the bar entering the hidden state
	// Producer: apply step | Consumer: audio cues | Payload: nil
	EventBarHidden
)

// Event pairs a type with an optional payload
type Event struct {
	Type    EventType
	Payload any
}

// String returns human-readable event type name
func (t EventType) String() string {
	switch t {
	case EventScroll:
		return "Scroll"
	case EventPointerMove:
		return "PointerMove"
	case EventTouchStart:
		return "TouchStart"
	case EventTouchMove:
		return "TouchMove"
	case EventViewportResize:
		return "ViewportResize"
	case EventBarShown:
		return "BarShown"
	case EventBarHidden:
		return "BarHidden"
	default:
		return "Unknown"
	}
}
