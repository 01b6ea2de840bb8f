package bar

import (
	"time"

	"github.com/lixenwraith/chromebar/constants"
)

// Params configures the controller's distance thresholds and settle timing.
// Distances are in the host surface's vertical units. The zero value of any
// field is replaced by the package default, so Params{} means stock behavior
type Params struct {
	ScrollThreshold int           // Minimum offset delta that counts as movement
	TopZone         int           // Offset below which the bar is always fully shown
	ProximityZone   int           // Top-edge distance for pointer/touch reveal
	HideDepth       int           // Minimum offset before the bar may fully hide
	CompactWidth    int           // Widest viewport that still allows full hiding
	SettleDelay     time.Duration // Quiet period before a scroll burst is evaluated
}

// DefaultParams returns the package default thresholds
func DefaultParams() Params {
	return Params{
		ScrollThreshold: constants.ScrollThreshold,
		TopZone:         constants.TopZone,
		ProximityZone:   constants.ProximityZone,
		HideDepth:       constants.HideDepth,
		CompactWidth:    constants.CompactWidth,
		SettleDelay:     constants.ScrollSettleDelay,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.ScrollThreshold == 0 {
		p.ScrollThreshold = d.ScrollThreshold
	}
	if p.TopZone == 0 {
		p.TopZone = d.TopZone
	}
	if p.ProximityZone == 0 {
		p.ProximityZone = d.ProximityZone
	}
	if p.HideDepth == 0 {
		p.HideDepth = d.HideDepth
	}
	if p.CompactWidth == 0 {
		p.CompactWidth = d.CompactWidth
	}
	if p.SettleDelay == 0 {
		p.SettleDelay = d.SettleDelay
	}
	return p
}

// Controller derives bar visibility flags from scroll position, scroll
// direction, and proximity gestures, and pushes them to a single Applier.
//
// Architecture:
//   - Single-threaded: every method runs on the UI thread, handlers run to
//     completion before the next can start, no locking
//   - Scroll input is debounced trailing-edge: each OnScroll overwrites the
//     pending sample and restarts the settle deadline, so only the last
//     sample of a burst is evaluated. Evaluation happens cooperatively in
//     Update, called once per UI tick
//   - Pointer and touch input is evaluated immediately in the same turn as
//     the triggering event
//
// A Controller built with a nil Applier is inert: there is no surface to
// drive, so every operation is a silent no-op. This is the normal mode when
// the target element is absent, not an error
type Controller struct {
	target Applier
	clock  TimeProvider
	params Params

	flags         Flags
	lastOffset    int
	viewportWidth int

	touchStartY int
	touchActive bool

	// Single-slot pending-task register for the scroll debounce
	pendingOffset   int
	pendingDeadline time.Time
	pendingValid    bool
}

// NewController creates a controller driving the given target.
// A nil target yields an inert controller. A nil clock defaults to the
// monotonic system clock
func NewController(target Applier, clock TimeProvider, params Params) *Controller {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Controller{
		target: target,
		clock:  clock,
		params: params.withDefaults(),
	}
}

// Inert reports whether the controller has no target to drive
func (c *Controller) Inert() bool {
	return c.target == nil
}

// Flags returns the current visibility flags
func (c *Controller) Flags() Flags {
	return c.flags
}

// SetViewportWidth updates the viewport width used by the hide decision.
// Call on resize. Width 0 (never set) counts as compact
func (c *Controller) SetViewportWidth(w int) {
	if c.target == nil {
		return
	}
	c.viewportWidth = w
}

// OnScroll records a scroll sample and restarts the settle deadline.
// The previous pending sample, if any, is discarded
func (c *Controller) OnScroll(offset int) {
	if c.target == nil {
		return
	}
	c.pendingOffset = offset
	c.pendingDeadline = c.clock.Now().Add(c.params.SettleDelay)
	c.pendingValid = true
}

// Update evaluates a settled scroll burst, if one is due. Call once per UI
// tick. At most one evaluation runs per burst
func (c *Controller) Update() {
	if c.target == nil || !c.pendingValid {
		return
	}
	if c.clock.Now().Before(c.pendingDeadline) {
		return
	}
	c.pendingValid = false
	c.evaluateScroll(c.pendingOffset)
}

// evaluateScroll applies the settled-burst decision. Branch order matters:
// the top-of-page check runs before the direction check, so a jump straight
// into the top zone always restores the bar regardless of direction
func (c *Controller) evaluateScroll(offset int) {
	if offset < c.params.TopZone {
		c.setFlags(Flags{})
		c.lastOffset = offset
		return
	}

	delta := offset - c.lastOffset
	if delta < 0 {
		delta = -delta
	}
	if delta <= c.params.ScrollThreshold {
		// Jitter: no state change, anchor offset stays put
		return
	}

	if offset > c.lastOffset {
		// Scrolling down: minimize, and hide outright on compact viewports
		// once deep enough into the content
		next := c.flags
		next.Minimal = true
		if c.viewportWidth <= c.params.CompactWidth && offset > c.params.HideDepth {
			next.Hidden = true
		}
		c.setFlags(next)
	} else {
		// Scrolling up: restore fully
		c.setFlags(Flags{})
	}
	c.lastOffset = offset
}

// OnPointerMove reacts to pointer motion immediately, without debounce.
// Motion near the top edge pulls the bar out of hiding but leaves the
// minimal state alone
func (c *Controller) OnPointerMove(y int) {
	if c.target == nil {
		return
	}
	if y < c.params.ProximityZone {
		next := c.flags
		next.Hidden = false
		c.setFlags(next)
	}
}

// OnTouchStart records the starting vertical position of a touch gesture.
// No visibility effect
func (c *Controller) OnTouchStart(y int) {
	if c.target == nil {
		return
	}
	c.touchStartY = y
	c.touchActive = true
}

// OnTouchMove reacts to touch motion immediately, without debounce.
// A downward swipe that began near the top edge pulls the bar out of
// hiding. The gesture origin is only reset by the next OnTouchStart
func (c *Controller) OnTouchMove(y int) {
	if c.target == nil || !c.touchActive {
		return
	}
	if c.touchStartY < c.params.ProximityZone && y > c.touchStartY {
		next := c.flags
		next.Hidden = false
		c.setFlags(next)
	}
}

// setFlags stores the flags and runs the single apply step. Apply is
// invoked unconditionally: the presentation layer treats it as idempotent,
// matching class-marker add/remove semantics
func (c *Controller) setFlags(f Flags) {
	c.flags = f
	c.target.Apply(f)
}
