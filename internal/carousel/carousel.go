// Package carousel implements the index controller shared by every slider on
// the home page: a bounded, optionally cyclic offset into an ordered list of
// cards, shown through a window of VisibleCount cards at a time.
//
// The controller never fails. Every input is clamped so the invariant
// 0 <= CurrentIndex <= MaxIndex holds after every call, including right after
// the visible count changes on a resize.
package carousel

import "time"

// DefaultAutoplayInterval is the autoplay period used by the events and news
// sliders when none is configured.
const DefaultAutoplayInterval = 5 * time.Second

// Config is the caller-supplied shape of a carousel.
type Config struct {
	ItemCount        int
	VisibleCount     int
	AutoplayInterval time.Duration // zero disables autoplay
	Loop             bool
}

// normalize clamps the configuration to sane minimums.
func (c Config) normalize() Config {
	c.ItemCount = max(c.ItemCount, 0)
	c.VisibleCount = max(c.VisibleCount, 1)
	c.AutoplayInterval = max(c.AutoplayInterval, 0)
	return c
}

// Controller owns the current index of one carousel.
// The zero value is an empty, non-looping carousel.
type Controller struct {
	cfg      Config
	index    int
	maxIndex int
}

// New returns a controller at index 0 for the given configuration.
func New(cfg Config) Controller {
	c := Controller{cfg: cfg.normalize()}
	c.maxIndex = maxIndexFor(c.cfg.ItemCount, c.cfg.VisibleCount)
	return c
}

func maxIndexFor(itemCount, visibleCount int) int {
	return max(0, itemCount-visibleCount)
}

// Next advances one position. Looping carousels wrap from MaxIndex to 0,
// others stop at MaxIndex.
func (c *Controller) Next() int {
	c.advance(c.cfg.Loop)
	return c.index
}

// Prev moves back one position. Looping carousels wrap from 0 to MaxIndex,
// others stop at 0.
func (c *Controller) Prev() int {
	if c.maxIndex == 0 {
		return c.index
	}
	switch {
	case c.index > 0:
		c.index--
	case c.cfg.Loop:
		c.index = c.maxIndex
	}
	return c.index
}

// GoTo jumps to index, clamped into [0, MaxIndex].
func (c *Controller) GoTo(index int) int {
	c.index = clamp(index, 0, c.maxIndex)
	return c.index
}

// Tick is one autoplay step. Autoplay always wraps, whatever Loop says.
func (c *Controller) Tick() int {
	c.advance(true)
	return c.index
}

func (c *Controller) advance(wrap bool) {
	if c.maxIndex == 0 {
		return
	}
	switch {
	case c.index < c.maxIndex:
		c.index++
	case wrap:
		c.index = 0
	}
}

// Reconfigure applies a new item count and visible count, typically after a
// breakpoint change. The current index is pulled down to the new MaxIndex if
// it no longer fits. Calling it twice with the same arguments is a no-op the
// second time. It reports whether anything changed.
func (c *Controller) Reconfigure(itemCount, visibleCount int) bool {
	before := *c
	c.cfg.ItemCount = itemCount
	c.cfg.VisibleCount = visibleCount
	c.cfg = c.cfg.normalize()
	c.maxIndex = maxIndexFor(c.cfg.ItemCount, c.cfg.VisibleCount)
	if c.index > c.maxIndex {
		c.index = c.maxIndex
	}
	return before != *c
}

// SetLoop changes the manual-navigation wrap mode.
func (c *Controller) SetLoop(loop bool) {
	c.cfg.Loop = loop
}

// SetAutoplayInterval changes the autoplay period. Negative values disable
// autoplay.
func (c *Controller) SetAutoplayInterval(d time.Duration) {
	c.cfg.AutoplayInterval = max(d, 0)
}

// Config returns the normalized configuration.
func (c Controller) Config() Config { return c.cfg.normalize() }

// CurrentIndex returns the first visible card.
func (c Controller) CurrentIndex() int { return c.index }

// MaxIndex returns the last valid CurrentIndex.
func (c Controller) MaxIndex() int { return c.maxIndex }

// ItemCount returns the number of cards.
func (c Controller) ItemCount() int { return c.cfg.ItemCount }

// VisibleCount returns the window size.
func (c Controller) VisibleCount() int { return max(c.cfg.VisibleCount, 1) }

// Loop reports whether manual navigation wraps.
func (c Controller) Loop() bool { return c.cfg.Loop }

// IsEmpty reports whether there is nothing to render at all.
func (c Controller) IsEmpty() bool { return c.cfg.ItemCount == 0 }

// IsSingleView reports whether every card fits in the window. Navigation
// controls and autoplay are suppressed in that case.
func (c Controller) IsSingleView() bool {
	return c.cfg.ItemCount <= c.VisibleCount()
}

// CanGoPrev reports whether a previous control should be offered.
func (c Controller) CanGoPrev() bool {
	return c.maxIndex > 0 && (c.index > 0 || c.cfg.Loop)
}

// CanGoNext reports whether a next control should be offered.
func (c Controller) CanGoNext() bool {
	return c.maxIndex > 0 && (c.index < c.maxIndex || c.cfg.Loop)
}

// DotCount is the number of page indicators: one per reachable index.
func (c Controller) DotCount() int { return c.maxIndex + 1 }

// AutoplayEligible reports whether an autoplay timer should be running.
func (c Controller) AutoplayEligible() bool {
	return c.cfg.AutoplayInterval > 0 && !c.IsSingleView()
}

// Bounds returns the half-open range [start, end) of visible cards.
func (c Controller) Bounds() (start, end int) {
	start = c.index
	end = min(c.index+c.VisibleCount(), c.cfg.ItemCount)
	return start, max(end, start)
}

// OffsetPercent is the track translation, in percent of the window width,
// that brings CurrentIndex to the left edge.
func (c Controller) OffsetPercent() float64 {
	return float64(c.index) * 100 / float64(c.VisibleCount())
}

// Window returns the slice of items currently scrolled into view. The items
// are expected to be the ones the controller was configured with; a shorter
// slice yields a shorter window rather than a panic.
func Window[T any](c Controller, items []T) []T {
	start, end := c.Bounds()
	end = min(end, len(items))
	if start >= end {
		return nil
	}
	return items[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
