// Package tui provides Bubble Tea models for termhist.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/termhist/internal/history"
)

const (
	focusFilter = "filter"
	focusList   = "list"

	listWindow   = 10
	maxItemWidth = 60
)

// HistoryPickerModel is a Bubble Tea model for choosing one command from the
// merged history list.
type HistoryPickerModel struct {
	// Commands is the merged history, newest first.
	Commands []string

	// Filtered holds indices into Commands that match the filter.
	Filtered []int

	// cursor is the current cursor position in the filtered list.
	cursor int

	// FilterInput is the text input for filtering.
	FilterInput textinput.Model

	// Viewport shows the full text of the command under the cursor.
	Viewport viewport.Model

	// ShowHelp controls whether the key help line is rendered.
	ShowHelp bool

	// Focused indicates which component is focused ("filter" or "list").
	Focused string

	// Quit indicates whether the user quit without choosing.
	Quit bool

	// Confirmed indicates whether the user chose a command.
	Confirmed bool

	normalStyle  lipgloss.Style
	cursorStyle  lipgloss.Style
	previewStyle lipgloss.Style
	dimStyle     lipgloss.Style
	warnStyle    lipgloss.Style
}

// NewHistoryPickerModel creates a new history picker model.
func NewHistoryPickerModel(commands []string, showHelp bool) HistoryPickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter commands..."
	ti.Focus()

	filtered := make([]int, len(commands))
	for i := range commands {
		filtered[i] = i
	}

	m := HistoryPickerModel{
		Commands:    commands,
		Filtered:    filtered,
		FilterInput: ti,
		Viewport:    viewport.New(maxItemWidth, 4),
		ShowHelp:    showHelp,
		Focused:     focusFilter,
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		previewStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
	m.syncPreview()
	return m
}

// Init implements tea.Model.
func (m HistoryPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m HistoryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Viewport.Width = max(min(msg.Width-4, maxItemWidth*2), 10)
		m.syncPreview()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if len(m.Filtered) == 0 {
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit

		case "up", "ctrl+p":
			m.moveCursor(-1)
			return m, nil

		case "down", "ctrl+n":
			m.moveCursor(1)
			return m, nil

		case "tab":
			m.toggleFocus()
			return m, nil
		}

		if m.Focused == focusList {
			switch msg.String() {
			case "q":
				m.Quit = true
				return m, tea.Quit
			case "k":
				m.moveCursor(-1)
			case "j":
				m.moveCursor(1)
			case "home", "g":
				m.cursor = 0
				m.syncPreview()
			case "end", "G":
				m.cursor = max(0, len(m.Filtered)-1)
				m.syncPreview()
			case "/":
				m.toggleFocus()
			}
			return m, nil
		}
	}

	if m.Focused != focusFilter {
		return m, nil
	}

	var cmd tea.Cmd
	oldFilter := m.FilterInput.Value()
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	if newFilter := m.FilterInput.Value(); newFilter != oldFilter {
		m.applyFilter(newFilter)
	}
	return m, cmd
}

// View implements tea.Model.
func (m HistoryPickerModel) View() string {
	if len(m.Commands) == 0 {
		return "\n  No commands found in history.\n"
	}

	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("History"))
	b.WriteString("\n\n")

	b.WriteString("  Filter: ")
	b.WriteString(m.FilterInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")

	if len(m.Filtered) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.Viewport.View()))
		b.WriteString("\n")
		if cmd, ok := m.current(); ok {
			if d := history.CheckDanger(cmd); d != nil {
				b.WriteString("  " + m.warnStyle.Render("! "+d.Warning()) + "\n")
			}
		}
	}

	if m.ShowHelp {
		b.WriteString("  ")
		b.WriteString(m.helpText())
		b.WriteString("\n")
	}

	return b.String()
}

// renderList renders a window of the filtered list around the cursor.
func (m HistoryPickerModel) renderList() string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(m.dimStyle.Render(fmt.Sprintf("%d of %d commands", len(m.Filtered), len(m.Commands))))
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("  (no matches)\n")
		return b.String()
	}

	start := max(0, m.cursor-listWindow)
	end := min(len(m.Filtered), m.cursor+listWindow+1)

	for i := start; i < end; i++ {
		text := truncate(m.Commands[m.Filtered[i]], maxItemWidth)
		if i == m.cursor {
			b.WriteString("> " + m.cursorStyle.Render(text) + "\n")
		} else {
			b.WriteString("  " + m.normalStyle.Render(text) + "\n")
		}
	}

	return b.String()
}

// helpText returns the help text.
func (m HistoryPickerModel) helpText() string {
	var parts []string

	if m.Focused == focusFilter {
		parts = append(parts, "[Enter] Choose", "[Up/Down] Move", "[Tab] Focus list", "[Esc] Quit")
	} else {
		parts = append(parts, "[Enter] Choose", "[j/k] Move", "[/] Filter", "[q] Quit")
	}

	return m.dimStyle.Render(strings.Join(parts, " | "))
}

// applyFilter filters the command list based on a case-insensitive substring.
func (m *HistoryPickerModel) applyFilter(query string) {
	query = strings.ToLower(query)

	m.Filtered = make([]int, 0, len(m.Commands))
	for i, cmd := range m.Commands {
		if strings.Contains(strings.ToLower(cmd), query) {
			m.Filtered = append(m.Filtered, i)
		}
	}

	if m.cursor >= len(m.Filtered) {
		m.cursor = max(0, len(m.Filtered)-1)
	}
	m.syncPreview()
}

func (m *HistoryPickerModel) moveCursor(delta int) {
	if len(m.Filtered) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.Filtered)-1)
	m.syncPreview()
}

func (m *HistoryPickerModel) toggleFocus() {
	if m.Focused == focusFilter {
		m.Focused = focusList
		m.FilterInput.Blur()
		return
	}
	m.Focused = focusFilter
	m.FilterInput.Focus()
}

// syncPreview loads the command under the cursor into the viewport.
func (m *HistoryPickerModel) syncPreview() {
	cmd, ok := m.current()
	if !ok {
		m.Viewport.SetContent("")
		return
	}
	m.Viewport.SetContent(m.previewStyle.Width(m.Viewport.Width).Render(cmd))
	m.Viewport.GotoTop()
}

func (m HistoryPickerModel) current() (string, bool) {
	if len(m.Filtered) == 0 || m.cursor >= len(m.Filtered) {
		return "", false
	}
	return m.Commands[m.Filtered[m.cursor]], true
}

// Chosen returns the confirmed command.
func (m HistoryPickerModel) Chosen() (string, bool) {
	if !m.Confirmed {
		return "", false
	}
	return m.current()
}

// DidQuit returns true if the user quit without choosing.
func (m HistoryPickerModel) DidQuit() bool {
	return m.Quit
}

// DidConfirm returns true if the user chose a command.
func (m HistoryPickerModel) DidConfirm() bool {
	return m.Confirmed
}

// RunHistoryPicker shows the picker on stderr and returns the chosen command.
// Stdout is left free for the result.
func RunHistoryPicker(commands []string, showHelp bool) (string, bool, error) {
	p := tea.NewProgram(NewHistoryPickerModel(commands, showHelp), tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("history picker failed: %w", err)
	}

	m, ok := final.(HistoryPickerModel)
	if !ok {
		return "", false, nil
	}
	cmd, chosen := m.Chosen()
	return cmd, chosen, nil
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
