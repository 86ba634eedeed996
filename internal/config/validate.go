package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ValidationError describes one invalid settings value.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks decoded settings and returns every problem joined.
func Validate(s Settings) error {
	var errs []error
	add := func(field, msg string, value any) {
		errs = append(errs, &ValidationError{Field: field, Message: msg, Value: value})
	}

	if s.Display.PixelsPerColumn < 1 {
		add("display.pixels_per_column", "must be at least 1", s.Display.PixelsPerColumn)
	}
	if s.Header.TopBarHeight < 0 {
		add("header.top_bar_height", "must not be negative", s.Header.TopBarHeight)
	}
	if s.Typewriter.TypingSpeed < 0 {
		add("typewriter.typing_speed", "must not be negative", s.Typewriter.TypingSpeed)
	}
	if s.Typewriter.DeletingSpeed < 0 {
		add("typewriter.deleting_speed", "must not be negative", s.Typewriter.DeletingSpeed)
	}
	if s.Typewriter.PauseTime < 0 {
		add("typewriter.pause_time", "must not be negative", s.Typewriter.PauseTime)
	}
	if s.Logging.MaxSizeMB < 0 {
		add("logging.max_size_mb", "must not be negative", s.Logging.MaxSizeMB)
	}

	names := make([]string, 0, len(s.Carousels))
	for name := range s.Carousels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := s.Carousels[name]
		field := "carousels." + name
		if !slices.Contains(CarouselNames(), name) {
			add(field, "unknown carousel", nil)
			continue
		}
		if c.AutoplayInterval < 0 {
			add(field+".autoplay_interval", "must not be negative", c.AutoplayInterval)
		}
		if err := c.Ladder().Validate(); err != nil {
			add(field+".breakpoints", err.Error(), nil)
		}
	}

	return errors.Join(errs...)
}
