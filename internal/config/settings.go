package config

import (
	"time"

	"github.com/novezhyttia/sanctuary/internal/carousel"
	"github.com/novezhyttia/sanctuary/internal/typewriter"
)

// Carousel names recognised under the carousels key.
const (
	CarouselHero   = "hero"
	CarouselEvents = "events"
	CarouselNews   = "news"
)

// CarouselNames lists the carousels in page order.
func CarouselNames() []string {
	return []string{CarouselHero, CarouselEvents, CarouselNews}
}

// Settings is the decoded settings.yaml.
type Settings struct {
	ContentFile string                      `mapstructure:"content_file" yaml:"content_file,omitempty"`
	Logging     LoggingSettings             `mapstructure:"logging" yaml:"logging,omitempty"`
	Display     DisplaySettings             `mapstructure:"display" yaml:"display,omitempty"`
	Header      HeaderSettings              `mapstructure:"header" yaml:"header,omitempty"`
	Typewriter  typewriter.Config           `mapstructure:"typewriter" yaml:"typewriter,omitempty"`
	Carousels   map[string]CarouselSettings `mapstructure:"carousels" yaml:"carousels,omitempty"`
}

// LoggingSettings configures the rotated log file.
type LoggingSettings struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
}

// DisplaySettings maps terminal cells onto the pixel widths breakpoints use.
type DisplaySettings struct {
	PixelsPerColumn int `mapstructure:"pixels_per_column" yaml:"pixels_per_column,omitempty"`
}

// WidthPx converts a terminal width in columns to CSS pixels.
func (d DisplaySettings) WidthPx(columns int) int {
	return columns * max(d.PixelsPerColumn, 1)
}

// HeaderSettings configures the sticky header.
type HeaderSettings struct {
	// TopBarHeight is how many rows of scroll hide the top bar.
	TopBarHeight int `mapstructure:"top_bar_height" yaml:"top_bar_height,omitempty"`
}

// CarouselSettings configures one carousel.
type CarouselSettings struct {
	// AutoplayInterval of zero disables autoplay.
	AutoplayInterval time.Duration         `mapstructure:"autoplay_interval" yaml:"autoplay_interval,omitempty"`
	Loop             bool                  `mapstructure:"loop" yaml:"loop,omitempty"`
	Breakpoints      []carousel.Breakpoint `mapstructure:"breakpoints" yaml:"breakpoints,omitempty"`
	MaxVisible       int                   `mapstructure:"max_visible" yaml:"max_visible,omitempty"`
}

// Ladder returns the breakpoint ladder these settings describe.
func (c CarouselSettings) Ladder() carousel.Ladder {
	return carousel.Ladder{Rungs: c.Breakpoints, Max: c.MaxVisible}
}

// Carousel returns the settings for name, falling back to the built-in
// defaults for any name the file does not mention.
func (s Settings) Carousel(name string) CarouselSettings {
	if c, ok := s.Carousels[name]; ok {
		return c
	}
	return DefaultSettings().Carousels[name]
}
