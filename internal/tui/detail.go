package tui

import (
	"strings"

	"github.com/novezhyttia/sanctuary/internal/content"
	"github.com/novezhyttia/sanctuary/internal/iostreams"
	"github.com/novezhyttia/sanctuary/internal/text"
)

// NewDetail builds the scrollable pane that shows one card in full.
func NewDetail(ios *iostreams.IOStreams, card content.Card, width, height int) ViewportModel {
	v := NewViewport(ViewportConfig{Title: card.Title}).SetSize(width, height)
	return v.SetContent(renderDetail(ios, card, width))
}

// renderDetail renders every field of a card: metadata, the full
// markdown body, labels and links with their targets.
func renderDetail(ios *iostreams.IOStreams, card content.Card, width int) string {
	var parts []string

	var meta []string
	if card.Tag != "" {
		meta = append(meta, iostreams.TagStyle.Render(card.Tag))
	}
	if card.Date != "" {
		meta = append(meta, iostreams.CardDateStyle.Render(card.Date))
	}
	for _, l := range card.Labels {
		meta = append(meta, iostreams.LabelBadgeStyle.Render(l))
	}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, " "))
	}
	if card.PreTitle != "" {
		parts = append(parts, iostreams.PreTitleStyle.Render(card.PreTitle))
	}

	if strings.TrimSpace(card.Body) != "" {
		body, err := ios.RenderMarkdown(card.Body, width)
		if err != nil {
			body = strings.Join(text.WrapLines(card.Body, width), "\n")
		}
		parts = append(parts, body)
	}

	if len(card.Actions) > 0 {
		links := make([]string, len(card.Actions))
		for i, a := range card.Actions {
			links[i] = iostreams.LinkStyle.Render(a.Text) + iostreams.MutedStyle.Render(" → "+a.Href)
		}
		parts = append(parts, strings.Join(links, "\n"))
	}

	return iostreams.Stack(1, parts...)
}
