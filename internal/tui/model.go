package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minigrep/internal/domain"
	"minigrep/internal/search"
)

// SearchPort is the TUI-facing subset of the grep service.
type SearchPort interface {
	Search(document domain.Document, query string, caseInsensitive bool) []string
}

// Model is the Bubble Tea model for the interactive match browser.
type Model struct {
	service         SearchPort
	document        domain.Document
	input           textinput.Model
	viewport        viewport.Model
	matches         []string
	caseInsensitive bool
	ready           bool
	lastQuery       string
}

// New creates a model over a loaded document, seeded with an initial query.
func New(service SearchPort, document domain.Document, query string, caseInsensitive bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type to search"
	ti.Focus()
	ti.CharLimit = 0
	ti.SetValue(query)
	m := Model{
		service:         service,
		document:        document,
		input:           ti,
		viewport:        viewport.New(0, 0),
		caseInsensitive: caseInsensitive,
	}
	m.refresh()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, query box, spacer
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.renderMatches())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.caseInsensitive = !m.caseInsensitive
			m.refresh()
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.lastQuery {
		m.refresh()
	}
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("minigrep  " + m.document.Path)
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.Status())
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

// Matches returns the lines matching the current query.
func (m Model) Matches() []string { return m.matches }

// CaseInsensitive reports the current matching mode.
func (m Model) CaseInsensitive() bool { return m.caseInsensitive }

// Status describes the current result for the status line.
func (m Model) Status() string {
	mode := "case-sensitive"
	if m.caseInsensitive {
		mode = "ignore case"
	}
	return fmt.Sprintf("%d matching lines  [%s]  ctrl+t toggle case  esc quit", len(m.matches), mode)
}

func (m *Model) refresh() {
	m.lastQuery = m.input.Value()
	m.matches = m.service.Search(m.document, m.lastQuery, m.caseInsensitive)
	m.viewport.SetContent(m.renderMatches())
	m.viewport.GotoTop()
}

func (m Model) renderMatches() string {
	if len(m.matches) == 0 {
		return "No matches."
	}
	var b strings.Builder
	for i, line := range m.matches {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(highlight(line, m.lastQuery, m.caseInsensitive))
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func highlight(line, query string, caseInsensitive bool) string {
	spans := search.Spans(line, query, caseInsensitive)
	if len(spans) == 0 {
		return line
	}
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(line[prev:sp.Start])
		b.WriteString(highlightStyle.Render(line[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(line[prev:])
	return b.String()
}
