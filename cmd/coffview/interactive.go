package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/coffview/coff"
)

// header and footer lines around the symbol viewport
const browserChrome = 9

type browserModel struct {
	err      error
	details  *coff.Details
	st       *styles
	filename string
	filter   textinput.Model
	view     viewport.Model
	matches  []int
}

type loadedMsg struct {
	err     error
	details *coff.Details
}

func newBrowserModel(filename string, width, height int) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "substring"
	ti.Prompt = "filter: "
	ti.Width = 40
	ti.Focus()

	return &browserModel{
		filename: filename,
		st:       stylesFor(lipgloss.DefaultRenderer()),
		filter:   ti,
		view:     viewport.New(width, max(height-browserChrome, 1)),
	}
}

func (m *browserModel) Init() tea.Cmd {
	return tea.Batch(m.load, textinput.Blink)
}

func (m *browserModel) load() tea.Msg {
	d, err := coff.Read(m.filename)
	return loadedMsg{details: d, err: err}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
		if m.err != nil {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-browserChrome, 1)
		return m, nil

	case loadedMsg:
		m.err = msg.err
		m.details = msg.details
		m.refresh()
		return m, nil
	}

	prev := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != prev {
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes the matching entries and resets the viewport.
func (m *browserModel) refresh() {
	if m.details == nil {
		return
	}
	m.matches = filterSymbols(m.details, m.filter.Value())

	width := len(fmt.Sprint(m.details.Len()))
	rows := make([]string, len(m.matches))
	for i, idx := range m.matches {
		rows[i] = renderRow(m.st, m.details, idx, width)
	}
	m.view.SetContent(strings.Join(rows, "\n"))
	m.view.GotoTop()
}

func (m *browserModel) View() string {
	if m.err != nil {
		return m.st.err.Render(fmt.Sprintf("Error: %v\n\nPress any key to quit.", m.err))
	}
	if m.details == nil {
		return "Loading object file..."
	}

	d := m.details
	var b strings.Builder

	b.WriteString(m.st.title.Render("COFF Symbols"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d   %s %d\n",
		m.st.label.Render("symbol table:"), d.SymbolTableOffset(),
		m.st.label.Render("entries:"), d.NumberOfSymbols())
	fmt.Fprintf(&b, "%s %d   %s %d\n\n",
		m.st.label.Render("string table:"), d.StringTableOffset(),
		m.st.label.Render("size:"), d.StringTableSize())
	b.WriteString(m.filter.View())
	fmt.Fprintf(&b, "  %s\n\n", m.st.help.Render(fmt.Sprintf("%d/%d", len(m.matches), d.Len())))
	b.WriteString(m.view.View())
	b.WriteString("\n\n")
	b.WriteString(m.st.help.Render("type to filter • ↑/↓ pgup/pgdn scroll • esc quit"))

	return b.String()
}

// filterSymbols returns the indexes of the entries whose name contains query,
// in entry order. An empty query matches every entry.
func filterSymbols(d *coff.Details, query string) []int {
	out := make([]int, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		if query == "" || strings.Contains(d.SymbolName(i), query) {
			out = append(out, i)
		}
	}
	return out
}

func runInteractive(filename string) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	p := tea.NewProgram(newBrowserModel(filename, width, height), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
