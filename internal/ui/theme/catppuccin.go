package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111b")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Bar = lipgloss.NewStyle().Background(Mantle).Foreground(Text)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)

	Button         = lipgloss.NewStyle().Foreground(Text).Background(Surface1).Padding(0, 1)
	ButtonDisabled = lipgloss.NewStyle().Foreground(Overlay0).Background(Surface0).Padding(0, 1)

	Ruler      = lipgloss.NewStyle().Background(Crust).Foreground(Subtext0)
	RulerMajor = lipgloss.NewStyle().Background(Crust).Foreground(Text)
	Gutter     = lipgloss.NewStyle().Background(Mantle).Foreground(Subtext0)
	RowEven    = lipgloss.NewStyle().Background(Base)
	RowOdd     = lipgloss.NewStyle().Background(Mantle)
	Playhead   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Ghost      = lipgloss.NewStyle().Background(Surface0).Foreground(Overlay0)
)

// Clip colors the body of a clip with its own color.
func Clip(color string) lipgloss.Style {
	if color == "" {
		color = string(Lavender)
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Foreground(Crust)
}

// Preview is the floating copy of a dragged clip.
func Preview(color string) lipgloss.Style {
	if color == "" {
		color = string(Lavender)
	}
	return lipgloss.NewStyle().Background(Surface1).Foreground(lipgloss.Color(color)).Bold(true)
}
