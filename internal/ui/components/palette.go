package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackline/internal/ui/theme"
)

// PaletteSubmitMsg carries the resolved command name, or the raw input when
// nothing matched.
type PaletteSubmitMsg struct{ Input string }

type PaletteCancelMsg struct{}

// PaletteCommand is one entry the palette can run.
type PaletteCommand struct {
	Name string
	Help string
}

// PaletteCommands are the editor commands in display order. Names match the
// editor's command values, plus "quit" which the host handles itself.
var PaletteCommands = []PaletteCommand{
	{Name: "play", Help: "start playback"},
	{Name: "pause", Help: "stop playback"},
	{Name: "toggle", Help: "play or pause"},
	{Name: "zoom-in", Help: "zoom in one step"},
	{Name: "zoom-out", Help: "zoom out one step"},
	{Name: "cancel-drag", Help: "drop nothing, return the clip"},
	{Name: "quit", Help: "leave the editor"},
}

const paletteRows = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
	helpStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// MatchCommands returns the commands whose name starts with prefix, ignoring
// case and surrounding space.
func MatchCommands(prefix string) []PaletteCommand {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []PaletteCommand
	for _, c := range PaletteCommands {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// ResolveCommand expands input to a command name. An exact name or a prefix
// shared by exactly one command resolves; anything else is returned as typed.
func ResolveCommand(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}
	matches := MatchCommands(input)
	for _, c := range matches {
		if c.Name == input {
			return c.Name, true
		}
	}
	if len(matches) == 1 {
		return matches[0].Name, true
	}
	return input, false
}

// Palette is the ":" overlay. Tab completes to the first match.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 32
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "tab":
			if matches := MatchCommands(p.input.Value()); len(matches) > 0 {
				p.input.SetValue(matches[0].Name)
				p.input.CursorEnd()
			}
			return p, nil
		case "enter":
			name, _ := ResolveCommand(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: name} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Commands") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")

	matches := MatchCommands(p.input.Value())
	if len(matches) == 0 {
		sb.WriteString("\n" + helpStyle.Render("  no matching command"))
	} else {
		sb.WriteString("\n")
		for i, c := range matches {
			if i == paletteRows {
				break
			}
			sb.WriteString("  " + nameStyle.Render(c.Name) + "  " + helpStyle.Render(c.Help) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 48
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
