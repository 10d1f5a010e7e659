package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	editordto "trackline/internal/modules/editor/dto"
	"trackline/internal/ui/components"
	"trackline/internal/ui/theme"
	timelineview "trackline/internal/ui/views/timeline"
)

// ─── port ────────────────────────────────────────────────────────────────────

// EditorPort is what the host needs from the editor. Pointer coordinates are
// viewport pixels.
type EditorPort interface {
	Press(ctx context.Context, x, y float64) error
	Motion(ctx context.Context, x, y float64) error
	Release(ctx context.Context, x, y float64) error
	Frame(ctx context.Context, epoch uint64, at time.Time) error
	Command(ctx context.Context, cmd editordto.Command) error
	Resize(ctx context.Context, width float64) error
	State(ctx context.Context) (editordto.StateOutput, error)
}

// Options carries the terminal geometry and frame pacing.
type Options struct {
	CellWidth     float64
	CellHeight    float64
	FrameInterval time.Duration
}

const (
	gutterCols  = 16
	toolbarRows = 2
	footerRows  = 2
)

// ─── messages ────────────────────────────────────────────────────────────────

// frameMsg is one animation frame scheduled while playback ran under epoch.
type frameMsg struct {
	epoch uint64
	at    time.Time
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Cancel  key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.ZoomIn, k.ZoomOut},
		{k.Cancel, k.Palette},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model hosts the editor in a terminal. Every input is forwarded to the
// editor synchronously from Update so events are handled in arrival order;
// the cached state is refreshed after each one.
type Model struct {
	ctx      context.Context
	editor   EditorPort
	log      *zap.Logger
	geometry timelineview.Geometry
	interval time.Duration

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette

	state  editordto.StateOutput
	status string
	failed bool
	width  int
	height int
}

func NewModel(ctx context.Context, editor EditorPort, opts Options, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	m := Model{
		ctx:    ctx,
		editor: editor,
		log:    log,
		geometry: timelineview.Geometry{
			CellWidth:  opts.CellWidth,
			CellHeight: opts.CellHeight,
			Gutter:     gutterCols,
			Top:        toolbarRows,
		},
		interval: opts.FrameInterval,
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(),
		status:   "ready",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case frameMsg, tea.WindowSizeMsg:
		// frames keep flowing under the palette
	default:
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(m.width-4, 60))
		m.apply(m.editor.Resize(m.ctx, m.geometry.ViewportWidth(msg.Width)))
		return m, nil

	case frameMsg:
		m.apply(m.editor.Frame(m.ctx, msg.epoch, msg.at))
		if m.state.IsPlaying && m.state.Epoch == msg.epoch {
			return m, m.frameCmd(msg.epoch)
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.mouse(msg)

	case components.PaletteSubmitMsg:
		return m.runPalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		m.failed = false

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Toggle):
			return m, m.command(editordto.CommandToggle)
		case key.Matches(msg, m.keys.ZoomIn):
			return m, m.command(editordto.CommandZoomIn)
		case key.Matches(msg, m.keys.ZoomOut):
			return m, m.command(editordto.CommandZoomOut)
		case key.Matches(msg, m.keys.Cancel):
			return m, m.command(editordto.CommandCancelDrag)
		}
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	x, y := m.geometry.Pixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.geometry.InCanvas(msg.X, msg.Y) {
			return nil
		}
		before := m.state.Epoch
		m.apply(m.editor.Press(m.ctx, x, y))
		return m.startFrames(before)
	case tea.MouseActionMotion:
		m.apply(m.editor.Motion(m.ctx, x, y))
	case tea.MouseActionRelease:
		m.apply(m.editor.Release(m.ctx, x, y))
	}
	return nil
}

func (m *Model) command(cmd editordto.Command) tea.Cmd {
	before := m.state.Epoch
	m.apply(m.editor.Command(m.ctx, cmd))
	return m.startFrames(before)
}

// startFrames begins a frame chain when the last event put playback into a
// new running epoch. Chains from earlier epochs stop on their own.
func (m *Model) startFrames(before uint64) tea.Cmd {
	if !m.state.IsPlaying || m.state.Epoch == before {
		return nil
	}
	return m.frameCmd(m.state.Epoch)
}

func (m Model) frameCmd(epoch uint64) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg{epoch: epoch, at: t}
	})
}

// apply records the outcome of one editor call and refreshes the cached
// state.
func (m *Model) apply(err error) {
	if err != nil {
		m.log.Warn("editor event rejected", zap.Error(err))
		m.status = err.Error()
		m.failed = true
	}
	m.refresh()
}

func (m *Model) refresh() {
	st, err := m.editor.State(m.ctx)
	if err != nil {
		m.log.Error("editor state", zap.Error(err))
		m.status = err.Error()
		m.failed = true
		return
	}
	if st.Status != "" && st.Status != m.state.Status {
		m.status = st.Status
		m.failed = false
	}
	m.state = st
}

func (m Model) runPalette(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	name, ok := components.ResolveCommand(input)
	switch {
	case !ok:
		m.status = "unknown command: " + input
		m.failed = true
		return m, nil
	case name == "quit":
		return m, tea.Quit
	}
	return m, m.command(editordto.Command(name))
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	toolbar := timelineview.Toolbar(m.state, m.width) + "\n"
	footer := m.renderFooter()
	contentH := max(1, m.height-toolbarRows-footerRows)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = timelineview.Canvas(m.state, m.geometry, m.width, contentH)
	}
	return lipgloss.JoinVertical(lipgloss.Left, toolbar, content, footer)
}

func (m Model) renderFooter() string {
	status := theme.Muted.Render(m.status)
	if m.failed {
		status = theme.Error.Render(m.status)
	}
	bar := theme.Bar.Width(m.width).Render(status)
	return bar + "\n" + m.help.View(m.keys)
}
