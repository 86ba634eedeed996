package carousel

import (
	"errors"
	"fmt"
)

// Breakpoint maps every width strictly below MaxWidth to Visible cards.
type Breakpoint struct {
	MaxWidth int `mapstructure:"max_width" yaml:"max_width"`
	Visible  int `mapstructure:"visible" yaml:"visible"`
}

// Ladder is an ordered list of breakpoints plus the visible count used for
// every width at or above the last rung. Widths are in CSS pixels; terminal
// callers convert columns first.
type Ladder struct {
	Rungs []Breakpoint `mapstructure:"rungs" yaml:"rungs"`
	Max   int          `mapstructure:"max" yaml:"max"`
}

// Default ladders, as the site ships them.
var (
	// HeroLadder shows one full-bleed slide at every width.
	HeroLadder = Ladder{Max: 1}

	// EventsLadder shows one card below the md breakpoint, two above.
	EventsLadder = Ladder{
		Rungs: []Breakpoint{{MaxWidth: 768, Visible: 1}},
		Max:   2,
	}

	// NewsLadder shows one card on phones, two on tablets, three on desktops.
	NewsLadder = Ladder{
		Rungs: []Breakpoint{
			{MaxWidth: 640, Visible: 1},
			{MaxWidth: 1024, Visible: 2},
		},
		Max: 3,
	}
)

// VisibleFor returns the visible count for a viewport width. Always >= 1.
func (l Ladder) VisibleFor(width int) int {
	for _, r := range l.Rungs {
		if width < r.MaxWidth {
			return max(r.Visible, 1)
		}
	}
	return max(l.Max, 1)
}

// RungFor returns the index into Describe() of the range width falls in.
func (l Ladder) RungFor(width int) int {
	for i, r := range l.Rungs {
		if width < r.MaxWidth {
			return i
		}
	}
	return len(l.Rungs)
}

// ErrInvalidLadder is returned (wrapped) by Validate.
var ErrInvalidLadder = errors.New("invalid breakpoint ladder")

// Validate checks that rungs ascend strictly and every count is positive.
func (l Ladder) Validate() error {
	var errs []error
	prev := 0
	for i, r := range l.Rungs {
		if r.MaxWidth <= prev {
			errs = append(errs, fmt.Errorf("%w: rung %d max_width %d does not ascend (previous %d)", ErrInvalidLadder, i, r.MaxWidth, prev))
		}
		if r.Visible < 1 {
			errs = append(errs, fmt.Errorf("%w: rung %d visible must be at least 1, got %d", ErrInvalidLadder, i, r.Visible))
		}
		prev = r.MaxWidth
	}
	if l.Max < 1 {
		errs = append(errs, fmt.Errorf("%w: max must be at least 1, got %d", ErrInvalidLadder, l.Max))
	}
	return errors.Join(errs...)
}

// Describe returns one human-readable range per rung, e.g. "< 640px",
// "640-1023px", ">= 1024px", paired with its visible count.
func (l Ladder) Describe() []RangeDesc {
	out := make([]RangeDesc, 0, len(l.Rungs)+1)
	lo := 0
	for _, r := range l.Rungs {
		label := fmt.Sprintf("< %dpx", r.MaxWidth)
		if lo > 0 {
			label = fmt.Sprintf("%d-%dpx", lo, r.MaxWidth-1)
		}
		out = append(out, RangeDesc{Label: label, Visible: max(r.Visible, 1)})
		lo = r.MaxWidth
	}
	label := "any width"
	if lo > 0 {
		label = fmt.Sprintf(">= %dpx", lo)
	}
	return append(out, RangeDesc{Label: label, Visible: max(l.Max, 1)})
}

// RangeDesc is one printable rung of a ladder.
type RangeDesc struct {
	Label   string
	Visible int
}
