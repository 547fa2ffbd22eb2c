package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ospv"
	"github.com/wippyai/ospv/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// visibleRows caps the list height so the detail pane stays on screen.
const visibleRows = 20

type pane int

const (
	paneTypes pane = iota
	paneEntries
)

type row struct {
	key    string
	label  string
	detail string
}

type browserModel struct {
	err      error
	filename string
	artifact *schema.Artifact
	filter   textinput.Model
	types    []row
	entries  []row
	visible  []int
	selected int
	pane     pane
}

type loadedMsg struct {
	err      error
	artifact *schema.Artifact
}

func newBrowserModel(filename string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()
	return &browserModel{filename: filename, filter: ti}
}

func (m *browserModel) Init() tea.Cmd {
	return tea.Batch(m.load, textinput.Blink)
}

func (m *browserModel) load() tea.Msg {
	a, err := loadArtifact(m.filename)
	return loadedMsg{err: err, artifact: a}
}

// loadArtifact reads a rendered artifact, or converts a module when the
// extension is not an artifact format.
func loadArtifact(path string) (*schema.Artifact, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".ospv":
		return ospv.ReadArtifact(path)
	default:
		return ospv.ConvertFile(path)
	}
}

func (m *browserModel) setArtifact(a *schema.Artifact) {
	m.artifact = a
	m.types = typeRows(a)
	m.entries = entryRows(a)
	m.refresh()
}

func (m *browserModel) rows() []row {
	if m.pane == paneEntries {
		return m.entries
	}
	return m.types
}

// refresh recomputes the rows matching the filter and clamps the selection.
func (m *browserModel) refresh() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, r := range m.rows() {
		if query == "" || strings.Contains(r.key, query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.filter.Value() == "" {
				return m, tea.Quit
			}
			m.filter.SetValue("")
			m.refresh()
			return m, nil

		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "tab":
			if m.pane == paneTypes {
				m.pane = paneEntries
			} else {
				m.pane = paneTypes
			}
			m.selected = 0
			m.refresh()
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.setArtifact(msg.artifact)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.artifact != nil {
		m.refresh()
	}
	return m, cmd
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}
	if m.artifact == nil {
		return "Loading " + m.filename + "..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ospv"))
	b.WriteString(" ")
	b.WriteString(m.artifact.SourceFile)
	b.WriteString("\n\n")

	if m.pane == paneTypes {
		fmt.Fprintf(&b, "Types (%d)  entries (%d)\n", len(m.types), len(m.entries))
	} else {
		fmt.Fprintf(&b, "types (%d)  Entries (%d)\n", len(m.types), len(m.entries))
	}
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	rows := m.rows()
	start := 0
	if m.selected >= visibleRows {
		start = m.selected - visibleRows + 1
	}
	for i := start; i < len(m.visible) && i < start+visibleRows; i++ {
		r := rows[m.visible[i]]
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + r.label))
		} else {
			b.WriteString("  " + r.label)
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no matches"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(rows[m.visible[m.selected]].detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • type to filter • tab types/entries • esc clear/quit"))
	return b.String()
}

func typeRows(a *schema.Artifact) []row {
	rows := make([]row, len(a.Types))
	for i, t := range a.Types {
		sd, decorated := a.Decoration[strconv.Itoa(i)]
		key := fmt.Sprintf("%d %s", i, t.Kind())
		label := fmt.Sprintf("%4d %s", i, kindStyle.Render(string(t.Kind())))
		if decorated && sd.Decoration.Name != nil {
			key += " " + *sd.Decoration.Name
			label += " " + nameStyle.Render(*sd.Decoration.Name)
		}

		var d strings.Builder
		d.WriteString(indented(t))
		for _, ref := range schema.Refs(t) {
			fmt.Fprintf(&d, "\n-> %s", describeRef(a, ref))
		}
		if decorated {
			d.WriteString("\n\ndecoration ")
			d.WriteString(indented(sd))
		}
		rows[i] = row{key: strings.ToLower(key), label: label, detail: d.String()}
	}
	return rows
}

func entryRows(a *schema.Artifact) []row {
	rows := make([]row, len(a.Entries))
	for i, e := range a.Entries {
		key := strings.ToLower(string(e.Model) + " " + e.Name)
		label := fmt.Sprintf("%s %s", kindStyle.Render(string(e.Model)), nameStyle.Render(e.Name))

		var d strings.Builder
		fmt.Fprintf(&d, "%s %s, %d parameters", e.Model, e.Name, len(e.Parameters))
		for _, p := range e.Parameters {
			fmt.Fprintf(&d, "\n-> %s", describeRef(a, p))
		}
		rows[i] = row{key: key, label: label, detail: d.String()}
	}
	return rows
}

func describeRef(a *schema.Artifact, ref uint32) string {
	if ref == schema.InvalidIndex || int(ref) >= len(a.Types) {
		return "unresolved"
	}
	s := fmt.Sprintf("%d %s", ref, a.Types[ref].Kind())
	if sd, ok := a.Decoration[strconv.FormatUint(uint64(ref), 10)]; ok && sd.Decoration.Name != nil {
		s += " " + *sd.Decoration.Name
	}
	return s
}

func indented(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
