package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	MarqueeGold = lipgloss.Color("#E5A00D")
	SlateDark   = lipgloss.Color("#1F2937")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	NormalStyle = lipgloss.NewStyle().
			Foreground(LightGray)
)

// Panel styles
var (
	ResultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DimGray).
				Padding(0, 1)
)

// Match highlight style for keyword results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)
