// Package tui implements the terminal chat window of the lookup service.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/model"
)

// Conversation is the chat session driven by the terminal UI.
type Conversation interface {
	Ask(ctx context.Context, text string) (model.Turn, error)
	History() []model.Turn
	Clear()
	ExportCSV(w io.Writer) error
}

// answerMsg is sent when Conversation.Ask returns.
type answerMsg struct {
	turn model.Turn
	err  error
}

// exportedMsg is sent when the chat log has been written.
type exportedMsg struct {
	path string
	err  error
}

const (
	headerHeight = 2
	footerHeight = 3
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#86AAEC")).Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2C14E")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

// Model is the Bubble Tea model of the chat window.
type Model struct {
	ctx        context.Context
	conv       Conversation
	settings   config.ScoringSettings
	exportPath string

	input    textinput.Model
	viewport viewport.Model

	pending     bool
	status      string
	err         error
	suggestions []model.Suggestion
	nextHint    int // index of the suggestion Tab inserts next

	width  int
	height int
	ready  bool
}

// New creates the chat window model. exportPath is where Ctrl+E writes the log.
func New(ctx context.Context, conv Conversation, settings config.ScoringSettings, exportPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "Ketik kode atau nama klasifikasi, misalnya: PP.01 atau surat edaran"
	ti.Prompt = "┃ "
	ti.CharLimit = 200
	ti.Focus()

	if exportPath == "" {
		exportPath = chat.ExportFileName
	}

	return Model{
		ctx:        ctx,
		conv:       conv,
		settings:   settings,
		exportPath: exportPath,
		input:      ti,
		viewport:   viewport.New(0, 0),
	}
}

// Run starts the chat window and blocks until the user quits.
func Run(ctx context.Context, conv Conversation, settings config.ScoringSettings, exportPath string) error {
	p := tea.NewProgram(New(ctx, conv, settings, exportPath), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.ready = true
		m.refresh()
		return m, nil

	case answerMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.suggestions = msg.turn.Suggestions
		m.nextHint = 0
		m.status = ""
		if len(m.suggestions) > 0 {
			m.status = "Tab: gunakan saran"
		}
		m.refresh()
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Log tersimpan di " + msg.path
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.pending {
			return m, nil
		}
		m.pending = true
		m.status = "Mencari..."
		m.input.Reset()
		return m, m.ask(text)

	case tea.KeyTab:
		if len(m.suggestions) == 0 {
			return m, nil
		}
		m.input.SetValue(m.suggestions[m.nextHint].Word)
		m.input.CursorEnd()
		m.nextHint = (m.nextHint + 1) % len(m.suggestions)
		return m, nil

	case tea.KeyCtrlL:
		m.conv.Clear()
		m.suggestions = nil
		m.err = nil
		m.status = "Riwayat dihapus"
		m.refresh()
		return m, nil

	case tea.KeyCtrlE:
		return m, m.export()

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) ask(text string) tea.Cmd {
	conv, ctx := m.conv, m.ctx
	return func() tea.Msg {
		turn, err := conv.Ask(ctx, text)
		return answerMsg{turn: turn, err: err}
	}
}

func (m Model) export() tea.Cmd {
	conv, path := m.conv, m.exportPath
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{err: fmt.Errorf("failed to create %s: %w", path, err)}
		}
		if err := conv.ExportCSV(f); err != nil {
			_ = f.Close()
			return exportedMsg{err: err}
		}
		if err := f.Close(); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

// refresh re-renders the history into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m Model) renderHistory() string {
	var b strings.Builder
	for i, turn := range m.conv.History() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch turn.Role {
		case model.RoleUser:
			b.WriteString(userStyle.Render("Anda"))
			b.WriteString("\n")
			b.WriteString(turn.Content)
		default:
			b.WriteString(assistantStyle.Render("Asisten"))
			b.WriteString("\n")
			b.WriteString(chat.FormatTurn(turn, m.settings))
		}
	}
	return lipgloss.NewStyle().Width(max(m.width, 1)).Render(b.String())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Memuat..."
	}

	status := statusStyle.Render("Enter: kirim • Ctrl+L: hapus • Ctrl+E: ekspor CSV • Esc: keluar")
	switch {
	case m.err != nil:
		status = errorStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		status = statusStyle.Render(m.status)
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n%s",
		titleStyle.Render("Klasifikasi Surat"),
		m.viewport.View(),
		m.input.View(),
		status,
	)
}
