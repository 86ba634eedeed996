package iostreams

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type rendererKey struct {
	style string
	width int
}

var (
	renderers   = map[rendererKey]*glamour.TermRenderer{}
	renderersMu sync.Mutex
)

// documentMargin is the left margin every standard glamour style applies.
const documentMargin = 2

// maxRenderers bounds the renderer cache. Every resize produces new card
// widths; the cache starts over once it is full.
const maxRenderers = 8

// renderMarkdown serializes all rendering; TermRenderer is not safe for
// concurrent use.
func renderMarkdown(md, style string, width int) (string, error) {
	renderersMu.Lock()
	defer renderersMu.Unlock()

	key := rendererKey{style: style, width: width}
	r, ok := renderers[key]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width+documentMargin),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		if len(renderers) >= maxRenderers {
			clear(renderers)
		}
		renderers[key] = r
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// MarkdownStyle picks the glamour style for this terminal.
func (s *IOStreams) MarkdownStyle() string {
	switch {
	case !s.ColorEnabled():
		return styles.NoTTYStyle
	case s.HasDarkBackground():
		return styles.DarkStyle
	default:
		return styles.LightStyle
	}
}

// RenderMarkdown renders a card body wrapped to width cells. The document
// margin glamour adds is removed so the result nests inside a card border.
func (s *IOStreams) RenderMarkdown(md string, width int) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	out, err := renderMarkdown(md, s.MarkdownStyle(), max(width, 1))
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(strings.TrimPrefix(l, strings.Repeat(" ", documentMargin)), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}
