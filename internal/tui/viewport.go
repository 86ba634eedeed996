package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/novezhyttia/sanctuary/internal/iostreams"
)

// ViewportConfig configures a viewport component.
type ViewportConfig struct {
	Width   int
	Height  int
	Title   string
	Content string
}

// ViewportModel wraps a bubbles viewport. Keys are handled by the owning
// model through the scroll methods so they never clash with carousel
// bindings; Update only forwards mouse wheel events.
type ViewportModel struct {
	viewport viewport.Model
	title    string
}

// NewViewport creates a new viewport with the given configuration.
func NewViewport(cfg ViewportConfig) ViewportModel {
	vp := viewport.New(cfg.Width, cfg.Height)
	vp.KeyMap = viewport.KeyMap{}
	if cfg.Content != "" {
		vp.SetContent(cfg.Content)
	}
	return ViewportModel{
		viewport: vp,
		title:    cfg.Title,
	}
}

// SetContent sets the viewport content, keeping the scroll offset when
// the new content is still long enough.
func (v ViewportModel) SetContent(s string) ViewportModel {
	v.viewport.SetContent(s)
	return v
}

// SetSize sets the viewport dimensions. The title line, if any, is
// taken from height.
func (v ViewportModel) SetSize(width, height int) ViewportModel {
	if v.title != "" {
		height--
	}
	v.viewport.Width = max(width, 0)
	v.viewport.Height = max(height, 0)
	return v
}

// SetTitle sets the viewport title.
func (v ViewportModel) SetTitle(title string) ViewportModel {
	v.title = title
	return v
}

// ScrollToTop scrolls to the top of the content.
func (v ViewportModel) ScrollToTop() ViewportModel {
	v.viewport.GotoTop()
	return v
}

// ScrollToBottom scrolls to the bottom of the content.
func (v ViewportModel) ScrollToBottom() ViewportModel {
	v.viewport.GotoBottom()
	return v
}

// ScrollUp moves the view up n lines.
func (v ViewportModel) ScrollUp(n int) ViewportModel {
	v.viewport.ScrollUp(n)
	return v
}

// ScrollDown moves the view down n lines.
func (v ViewportModel) ScrollDown(n int) ViewportModel {
	v.viewport.ScrollDown(n)
	return v
}

// PageUp moves the view up one page.
func (v ViewportModel) PageUp() ViewportModel {
	v.viewport.PageUp()
	return v
}

// PageDown moves the view down one page.
func (v ViewportModel) PageDown() ViewportModel {
	v.viewport.PageDown()
	return v
}

// SetYOffset scrolls so line n is at the top, clamped to the content.
func (v ViewportModel) SetYOffset(n int) ViewportModel {
	v.viewport.SetYOffset(n)
	return v
}

// YOffset is the index of the first visible content line.
func (v ViewportModel) YOffset() int {
	return v.viewport.YOffset
}

// AtTop returns true if the viewport is scrolled to the top.
func (v ViewportModel) AtTop() bool {
	return v.viewport.AtTop()
}

// AtBottom returns true if the viewport is scrolled to the bottom.
func (v ViewportModel) AtBottom() bool {
	return v.viewport.AtBottom()
}

// ScrollPercent returns the scroll position as a percentage (0.0 to 1.0).
func (v ViewportModel) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// Title returns the viewport title.
func (v ViewportModel) Title() string {
	return v.title
}

// Width returns the viewport width.
func (v ViewportModel) Width() int {
	return v.viewport.Width
}

// Height returns the content height, excluding the title line.
func (v ViewportModel) Height() int {
	return v.viewport.Height
}

// Init implements tea.Model.
func (v ViewportModel) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update forwards mouse wheel events to the viewport.
func (v ViewportModel) Update(msg tea.Msg) (ViewportModel, tea.Cmd) {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the viewport.
func (v ViewportModel) View() string {
	content := v.viewport.View()
	if v.title != "" {
		header := iostreams.TitleStyle.Render(v.title)
		return iostreams.Stack(0, header, content)
	}
	return content
}
