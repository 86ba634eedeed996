// Package content holds the home page's static section data and turns it
// into the cards the carousels render. The carousels themselves never look
// inside a card; only the count matters to them.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/novezhyttia/sanctuary/internal/header"
)

//go:embed site.yaml
var defaultSite []byte

// Site is the full page content.
type Site struct {
	Name   string           `yaml:"name"`
	TopBar TopBar           `yaml:"top_bar"`
	Nav    []header.NavItem `yaml:"nav"`
	Hero   HeroSection      `yaml:"hero"`
	Typist TypistSection    `yaml:"typist"`
	Events EventsSection    `yaml:"events"`
	News   NewsSection      `yaml:"news"`
}

// TopBar is the contact strip above the navigation.
type TopBar struct {
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
	Hours string `yaml:"hours"`
}

// HeroSlide is one full-width hero slide.
type HeroSlide struct {
	ID                  string `yaml:"id"`
	Image               string `yaml:"image"`
	PreTitle            string `yaml:"pre_title"`
	Title               string `yaml:"title"`
	Subtitle            string `yaml:"subtitle"`
	ButtonText          string `yaml:"button_text"`
	ButtonHref          string `yaml:"button_href"`
	SecondaryButtonText string `yaml:"secondary_button_text"`
	SecondaryButtonHref string `yaml:"secondary_button_href"`
	Align               string `yaml:"align"`
}

// HeroSection is the top-of-page slider.
type HeroSection struct {
	Slides []HeroSlide `yaml:"slides"`
}

// TypistSection is the rotating-word hero.
type TypistSection struct {
	PreTitle string   `yaml:"pre_title"`
	Static   string   `yaml:"static"`
	Words    []string `yaml:"words"`
}

// Heading is the centered pre-title/title/description block above a slider.
type Heading struct {
	PreTitle    string `yaml:"pre_title"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Event is one announcement in the events slider.
type Event struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Href        string `yaml:"href"`
	Tag         string `yaml:"tag"`
}

// EventsSection is the events slider.
type EventsSection struct {
	Heading `yaml:",inline"`
	Items   []Event `yaml:"items"`
}

// NewsItem is one post in the news slider. Text may contain markdown.
type NewsItem struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Date         string   `yaml:"date"`
	MainCategory string   `yaml:"main_category"`
	Categories   []string `yaml:"categories"`
	Text         string   `yaml:"text"`
	Image        string   `yaml:"image"`
	Href         string   `yaml:"href"`
}

// NewsSection is the news slider.
type NewsSection struct {
	Heading `yaml:",inline"`
	Items   []NewsItem `yaml:"items"`
}

// Default returns the embedded site content.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads site content from path. An empty path yields the embedded
// default content.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML site content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// ValidationError describes one invalid item.
type ValidationError struct {
	Section string
	Index   int
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Section, e.Index, e.Reason)
}

// Validate checks that every carousel item has a unique id and a title.
func (s *Site) Validate() error {
	var errs []error
	check := func(section string, i int, id, title string, seen map[string]bool) {
		switch {
		case id == "":
			errs = append(errs, &ValidationError{Section: section, Index: i, Reason: "missing id"})
		case seen[id]:
			errs = append(errs, &ValidationError{Section: section, Index: i, Reason: fmt.Sprintf("duplicate id %q", id)})
		}
		seen[id] = true
		if title == "" {
			errs = append(errs, &ValidationError{Section: section, Index: i, Reason: "missing title"})
		}
	}

	seen := map[string]bool{}
	for i, sl := range s.Hero.Slides {
		check("hero", i, sl.ID, sl.Title, seen)
	}
	seen = map[string]bool{}
	for i, ev := range s.Events.Items {
		check("events", i, ev.ID, ev.Title, seen)
	}
	seen = map[string]bool{}
	for i, n := range s.News.Items {
		check("news", i, n.ID, n.Title, seen)
	}
	return errors.Join(errs...)
}
