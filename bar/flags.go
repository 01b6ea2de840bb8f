package bar

// Flags holds the two visibility markers derived by the controller.
// Minimal and Hidden are independent: different input paths set and clear
// them in different combinations, and only forced-visible transitions
// (top of page, upward scroll) clear both together.
type Flags struct {
	Minimal bool
	Hidden  bool
}

// Visible reports whether the bar is drawn at all
func (f Flags) Visible() bool {
	return !f.Hidden
}

// Applier receives the controller's flags after every handler that may have
// changed them. Implementations map the flags onto a concrete presentation
// (full, minimal, hidden). Apply is always invoked on the UI thread
type Applier interface {
	Apply(Flags)
}
