package editor

import (
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/kanapad/buffer"
	"github.com/iw2rmb/kanapad/ime"
)

// Model is a Bubble Tea component that renders and edits a buffer.State.
type Model struct {
	cfg   Config
	state *buffer.State

	matcher *ime.Matcher
	imeOn   bool
	// composing holds text of an active composition session.
	composing string

	focused bool

	viewport viewport.Model
	layout   layoutCache

	lastVersion uint64
	lastIME     bool

	mouseDragging bool
	mouseAnchor   buffer.Pos

	log *log.Logger
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Table == nil {
		cfg.Table = ime.DefaultTable()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:      cfg,
		state:    buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		matcher:  ime.NewMatcher(cfg.Table),
		imeOn:    cfg.IME,
		focused:  true,
		viewport: viewport.New(0, 0),
		log:      logger,
	}
	m.lastVersion = m.state.Version()
	m.lastIME = m.imeOn
	m.rebuildContent()
	return m
}

// State returns the editing state. Hosts may mutate it directly; the next
// Update re-renders.
func (m Model) State() *buffer.State { return m.state }

// Text returns the document content.
func (m Model) Text() string { return m.state.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// IME reports whether keys are composed through the input-method table.
func (m Model) IME() bool { return m.imeOn }

// SetIME switches IME mode. Any queued keys are discarded.
func (m Model) SetIME(on bool) Model {
	if m.imeOn == on {
		return m
	}
	m.imeOn = on
	m.matcher.Reset()
	m.log.Debug("ime", "enabled", on)
	m.rebuildContent()
	return m
}

// Pending returns the key codes waiting for a composition match.
func (m Model) Pending() []ime.Code { return m.matcher.Pending() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case CompositionMsg:
		m = m.updateComposition(msg)
	case SetIMEMsg:
		m = m.SetIME(msg.On)
	}

	if m.syncFromState() {
		m.followCursor()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.state, m.imeOn))
		}
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromState rebuilds the content when the state or the IME mode changed
// since the last render.
func (m *Model) syncFromState() bool {
	ver := m.state.Version()
	if ver == m.lastVersion && m.imeOn == m.lastIME {
		return false
	}
	m.lastVersion = ver
	m.lastIME = m.imeOn
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.state.CurrentLine() - 1
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
