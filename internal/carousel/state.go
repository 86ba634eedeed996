package carousel

// State is a read-only snapshot of everything a renderer needs.
type State struct {
	CurrentIndex int
	MaxIndex     int
	ItemCount    int
	VisibleCount int
	DotCount     int
	CanGoPrev    bool
	CanGoNext    bool
	SingleView   bool
	Autoplay     bool
}

// State captures the controller's derived outputs.
func (c Controller) State() State {
	return State{
		CurrentIndex: c.index,
		MaxIndex:     c.maxIndex,
		ItemCount:    c.cfg.ItemCount,
		VisibleCount: c.VisibleCount(),
		DotCount:     c.DotCount(),
		CanGoPrev:    c.CanGoPrev(),
		CanGoNext:    c.CanGoNext(),
		SingleView:   c.IsSingleView(),
		Autoplay:     c.AutoplayEligible(),
	}
}

// ShowControls reports whether arrows and dots belong on screen.
func (s State) ShowControls() bool {
	return s.ItemCount > 0 && !s.SingleView
}
