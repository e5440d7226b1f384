// ============================================================================
// boolex - Boolean logic toolkit
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive expression REPL
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/boolex/foundation/core/log"
	"github.com/msto63/boolex/foundation/logic"
	"github.com/msto63/boolex/internal/history"
	"github.com/msto63/boolex/internal/report"
	"github.com/msto63/boolex/internal/tui"
)

// Recorder stores processed expressions
type Recorder interface {
	Record(ctx context.Context, entry *history.Entry) error
}

// Config holds REPL configuration
type Config struct {
	Engine   *logic.Engine
	Logger   *mdwlog.Logger
	Recorder Recorder // optional
	Style    string   // report.StylePlain or report.StyleStyled
	ShowAST  bool
	Version  string
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool
	count  int // expressions processed
	status string

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Output
	blocks  []string
	history []string
	histPos int

	// Configuration
	engine   *logic.Engine
	logger   *mdwlog.Logger
	recorder Recorder
	style    string
	showAST  bool
	version  string
}

// New creates a new REPL model
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.Style == "" {
		cfg.Style = report.StylePlain
	}

	ti := textinput.New()
	ti.Placeholder = "A AND (B OR NOT C)"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input:    ti,
		engine:   cfg.Engine,
		logger:   cfg.Logger.WithField("component", "repl"),
		recorder: cfg.Recorder,
		style:    cfg.Style,
		showAST:  cfg.ShowAST,
		version:  cfg.Version,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, cmd := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank
		footerHeight := 5 // Input box + help
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = max(msg.Width-6, 10)
		m.updateViewportContent()

	case evaluatedMsg:
		m.blocks = append(m.blocks, m.renderResult(msg))
		m.updateViewportContent()
		m.viewport.GotoBottom()
		if msg.err != nil {
			m.status = "error"
			break
		}
		m.count += len(msg.docs)
		m.status = fmt.Sprintf("%d expression(s)", m.count)
		if m.recorder != nil {
			cmds = append(cmds, m.record(msg.results))
		}

	case recordedMsg:
		if msg.err != nil {
			m.logger.WarnWithErr("History record failed", msg.err)
			m.status = "history error"
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	// Keys belong to the input; the viewport scrolls with PgUp/PgDn and the mouse
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keys owned by the REPL; everything else goes to
// the text input
func (m Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true, m, tea.Quit

	case tea.KeyCtrlL:
		m.blocks = nil
		m.count = 0
		m.status = ""
		m.updateViewportContent()
		return true, m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return true, m, nil
		}
		m.input.Reset()
		m.history = append(m.history, line)
		m.histPos = len(m.history)

		switch line {
		case ":ast":
			m.showAST = !m.showAST
			m.status = fmt.Sprintf("ast %s", onOff(m.showAST))
			return true, m, nil
		case ":style":
			if m.style == report.StyleStyled {
				m.style = report.StylePlain
			} else {
				m.style = report.StyleStyled
			}
			m.status = "style " + m.style
			return true, m, nil
		case ":quit", ":q":
			return true, m, tea.Quit
		}
		return true, m, m.evaluate(line)

	case tea.KeyUp:
		if m.histPos > 0 {
			m.histPos--
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
		}
		return true, m, nil

	case tea.KeyDown:
		if m.histPos < len(m.history)-1 {
			m.histPos++
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
		} else {
			m.histPos = len(m.history)
			m.input.Reset()
		}
		return true, m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return true, m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return true, m, nil
	}

	return false, m, nil
}

// evaluate processes one input line off the update loop
func (m Model) evaluate(input string) tea.Cmd {
	engine := m.engine
	showAST := m.showAST
	return func() tea.Msg {
		results, err := engine.Process(input)
		if err != nil {
			return evaluatedMsg{input: input, err: err}
		}
		return evaluatedMsg{input: input, results: results, docs: report.Build(results, showAST)}
	}
}

// record writes processed expressions to the history store
func (m Model) record(results []logic.Result) tea.Cmd {
	recorder := m.recorder
	return func() tea.Msg {
		for _, r := range results {
			entry := history.NewEntry(r)
			if err := recorder.Record(context.Background(), &entry); err != nil {
				return recordedMsg{err: err}
			}
		}
		return recordedMsg{count: len(results)}
	}
}

// renderResult renders one processed input line for the viewport
func (m Model) renderResult(msg evaluatedMsg) string {
	var b strings.Builder
	b.WriteString(tui.HelpKeyStyle.Render("> ") + tui.SourceStyle.Render(msg.input))
	b.WriteString("\n")

	if msg.err != nil {
		b.WriteString(tui.ErrorMessageStyle.Render(report.DescribeError(msg.err, msg.input)))
		return b.String()
	}

	if m.style == report.StyleStyled {
		for _, d := range msg.docs {
			b.WriteString(report.StyledDocument(d))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	if err := report.Write(&b, msg.docs, report.Options{Format: report.FormatText, Style: report.StylePlain}); err != nil {
		b.WriteString(tui.RenderError(err.Error()))
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(tui.FocusedInputStyle.Width(max(m.width-2, 10)).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title line with status
func (m Model) renderHeader() string {
	title := tui.RenderTitle("boolex REPL")
	if m.version != "" {
		title += " " + tui.SubtitleStyle.Render("v"+m.version)
	}
	if m.status == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", tui.HelpDescStyle.Render(m.status))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		tui.RenderKeyHint("Enter", "Evaluate"),
		tui.RenderKeyHint(":ast", "Tree "+onOff(m.showAST)),
		tui.RenderKeyHint(":style", m.style),
		tui.RenderKeyHint("PgUp/PgDn", "Scroll"),
		tui.RenderKeyHint("Ctrl+L", "Clear"),
		tui.RenderKeyHint("Esc", "Quit"),
	}
	return tui.HelpDescStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with all result blocks
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	if len(m.blocks) == 0 {
		m.viewport.SetContent(tui.SubtitleStyle.Render("Type an expression and press Enter."))
		return
	}
	m.viewport.SetContent(strings.Join(m.blocks, "\n\n"))
}

// Blocks returns the rendered output blocks
func (m Model) Blocks() []string {
	return m.blocks
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
