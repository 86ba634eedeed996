package iostreams

import "github.com/charmbracelet/lipgloss"

// ─── Named Colors ─────────────────────────────────────────────────
var (
	ColorNavy     = lipgloss.Color("#1F3A5F") // header and top bar
	ColorGold     = lipgloss.Color("#D4A64A") // brand accent
	ColorCream    = lipgloss.Color("#F5EFE0")
	ColorBurgundy = lipgloss.Color("#8C2F39")
	ColorSage     = lipgloss.Color("#5F8D6B")
	ColorAmber    = lipgloss.Color("#E8A33D")
	ColorRose     = lipgloss.Color("#E0607E")
	ColorSlate    = lipgloss.Color("#6B7280")
	ColorSky      = lipgloss.Color("#7FB3D5")
	ColorCharcoal = lipgloss.Color("#3A3A3A")
	ColorMidnight = lipgloss.Color("#15202E")
	ColorSilver   = lipgloss.Color("#A0A0A0")
	ColorWhite    = lipgloss.Color("#FFFFFF")
)

// ─── Semantic Theme ───────────────────────────────────────────────
var (
	ColorPrimary   = ColorGold
	ColorSecondary = ColorSky
	ColorSuccess   = ColorSage
	ColorWarning   = ColorAmber
	ColorError     = ColorRose
	ColorMuted     = ColorSlate
	ColorBorder    = ColorCharcoal
	ColorAccent    = ColorBurgundy
	ColorBg        = ColorMidnight
	ColorBgAlt     = ColorNavy
	ColorSubtle    = ColorSilver
)

// Text styles.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	CyanStyle     = lipgloss.NewStyle().Foreground(ColorSecondary)
	BoldStyle     = lipgloss.NewStyle().Bold(true)
)

// Header styles. The top bar scrolls away; the nav bar sticks.
var (
	TopBarStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorCream).
			Padding(0, 1)

	NavBarStyle = lipgloss.NewStyle().
			Foreground(ColorCream).
			Padding(0, 1)

	NavBarStickyStyle = lipgloss.NewStyle().
				Background(ColorMidnight).
				Foreground(ColorCream).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorGold)

	BrandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGold)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorCream).
			Padding(0, 1)

	NavItemOpenStyle = lipgloss.NewStyle().
				Foreground(ColorGold).
				Underline(true).
				Padding(0, 1)

	NavChildStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			PaddingLeft(4)
)

// Hero and typewriter styles.
var (
	HeroTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCream)

	HeroSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Italic(true)

	TypewriterStaticStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCream)

	TypewriterWordStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGold)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Blink(true)
)

// Section heading styles.
var (
	PreTitleStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Italic(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCream)
)

// Card styles.
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCream)

	CardDateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TagStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorAccent).
			Foreground(ColorWhite)

	LabelBadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSage).
			Foreground(ColorWhite)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorGold).
			Foreground(ColorMidnight).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)
)

// Carousel control styles.
var (
	ArrowStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	ArrowDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorBorder).
				Padding(0, 1)

	DotStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DotActiveStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Help bar styles.
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)
)

// StatusBarStyle for status bar backgrounds.
var StatusBarStyle = lipgloss.NewStyle().
	Background(ColorBgAlt).
	Foreground(ColorWhite).
	Padding(0, 1)

// DividerStyle for horizontal rules.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder)

// EmptyStateStyle for empty state messages.
var EmptyStateStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true)

// TableHeaderStyle for table column headers.
var TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

// Style is re-exported so packages that must not import lipgloss can
// still hold and pass styles around.
type Style = lipgloss.Style

// RenderFixedWidth renders text at a fixed width.
func RenderFixedWidth(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// Width returns the cell width of the widest line in s.
func Width(s string) int { return lipgloss.Width(s) }

// Height returns the number of lines in s.
func Height(s string) int { return lipgloss.Height(s) }
