package constants

import "time"

// Scroll Visibility Thresholds
//
// All distances are in the host surface's vertical units (pixels for a
// browser-like surface, rows for a terminal document). Config can override
// each of them.
const (
	// ScrollThreshold is the minimum offset delta that counts as movement.
	// Smaller jitters leave the visibility state and anchor offset untouched
	ScrollThreshold = 5

	// TopZone is the offset below which the bar is always fully shown
	TopZone = 10

	// ProximityZone is the distance from the top edge within which pointer
	// motion or a downward touch gesture forces the bar out of hiding
	ProximityZone = 100

	// HideDepth is the minimum offset before the bar may fully hide
	HideDepth = 200

	// CompactWidth is the widest viewport that still allows full hiding.
	// Wider viewports only ever minimize
	CompactWidth = 768
)

// Scroll Timing Constants (in milliseconds)
const (
	// ScrollSettleMs is the quiet period after the last scroll event before
	// the burst is evaluated (trailing-edge debounce)
	ScrollSettleMs = 50

	// ScrollSettleDelay is the settle period as a duration
	ScrollSettleDelay = ScrollSettleMs * time.Millisecond
)

// Event Queue Constants
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
