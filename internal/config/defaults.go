package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/novezhyttia/sanctuary/internal/carousel"
	"github.com/novezhyttia/sanctuary/internal/header"
	"github.com/novezhyttia/sanctuary/internal/typewriter"
)

// DefaultPixelsPerColumn approximates one terminal cell of a desktop
// browser font, so a 100-column terminal lands in the tablet range.
const DefaultPixelsPerColumn = 8

// DefaultHeroInterval is the hero slider's autoplay interval on the home page.
const DefaultHeroInterval = 6 * time.Second

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	fileEnabled := true
	return Settings{
		Logging: LoggingSettings{
			FileEnabled: &fileEnabled,
			MaxSizeMB:   10,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
		Display: DisplaySettings{PixelsPerColumn: DefaultPixelsPerColumn},
		Header:  HeaderSettings{TopBarHeight: header.DefaultTopBarHeight},
		Typewriter: typewriter.Config{
			TypingSpeed:   typewriter.DefaultTypingSpeed,
			DeletingSpeed: typewriter.DefaultDeletingSpeed,
			PauseTime:     typewriter.DefaultPauseTime,
		},
		Carousels: map[string]CarouselSettings{
			CarouselHero:   fromLadder(DefaultHeroInterval, carousel.HeroLadder),
			CarouselEvents: fromLadder(carousel.DefaultAutoplayInterval, carousel.EventsLadder),
			CarouselNews:   fromLadder(carousel.DefaultAutoplayInterval, carousel.NewsLadder),
		},
	}
}

func fromLadder(interval time.Duration, l carousel.Ladder) CarouselSettings {
	return CarouselSettings{
		AutoplayInterval: interval,
		Loop:             true,
		Breakpoints:      append([]carousel.Breakpoint(nil), l.Rungs...),
		MaxVisible:       l.Max,
	}
}

// setDefaults registers every leaf key so env overrides and partial files
// both resolve against the defaults.
func setDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault("content_file", d.ContentFile)
	v.SetDefault("logging.file_enabled", *d.Logging.FileEnabled)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("display.pixels_per_column", d.Display.PixelsPerColumn)
	v.SetDefault("header.top_bar_height", d.Header.TopBarHeight)
	v.SetDefault("typewriter.typing_speed", d.Typewriter.TypingSpeed)
	v.SetDefault("typewriter.deleting_speed", d.Typewriter.DeletingSpeed)
	v.SetDefault("typewriter.pause_time", d.Typewriter.PauseTime)

	for name, c := range d.Carousels {
		prefix := "carousels." + name + "."
		v.SetDefault(prefix+"autoplay_interval", c.AutoplayInterval)
		v.SetDefault(prefix+"loop", c.Loop)
		v.SetDefault(prefix+"max_visible", c.MaxVisible)

		rungs := make([]map[string]any, 0, len(c.Breakpoints))
		for _, b := range c.Breakpoints {
			rungs = append(rungs, map[string]any{"max_width": b.MaxWidth, "visible": b.Visible})
		}
		v.SetDefault(prefix+"breakpoints", rungs)
	}
}
