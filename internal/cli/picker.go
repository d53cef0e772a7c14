package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Theme.PrimaryDark).
			MarginTop(1).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(Theme.Text)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(Theme.Primary).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(Theme.TextSubtle).
			MarginTop(1)

	searchStyle = lipgloss.NewStyle().
			Foreground(Theme.PrimaryDark)
)

// presetEntry is one selectable preset with its swatch pre-rendered.
type presetEntry struct {
	name   string
	swatch string
}

// PresetPickerModel is the interactive preset selection UI.
type PresetPickerModel struct {
	entries     []presetEntry
	filtered    []presetEntry
	cursor      int
	searchInput textinput.Model
	searching   bool
	selected    string
	cancelled   bool
}

// NewPresetPickerModel builds the picker from preset name -> hex list.
func NewPresetPickerModel(presets map[string][]string) PresetPickerModel {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]presetEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, presetEntry{name: name, swatch: Swatch(presets[name])})
	}

	ti := textinput.New()
	ti.Placeholder = "Search presets..."
	ti.CharLimit = 30

	return PresetPickerModel{
		entries:     entries,
		filtered:    entries,
		searchInput: ti,
	}
}

func (m PresetPickerModel) Init() tea.Cmd {
	return nil
}

func (m PresetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				m.filtered = m.entries
				m.cursor = 0
				return m, nil

			case "enter":
				m.searching = false
				m.searchInput.Blur()
				return m, nil

			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.filterEntries()
				m.cursor = 0
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}

		case "enter":
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].name
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetPickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Choose a color preset"))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(searchStyle.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(itemStyle.Render("No presets match"))
		b.WriteString("\n")
	}
	for i, e := range m.filtered {
		line := fmt.Sprintf("%-14s %s", e.name, e.swatch)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter select · / search · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *PresetPickerModel) filterEntries() {
	query := strings.ToLower(m.searchInput.Value())
	if query == "" {
		m.filtered = m.entries
		return
	}
	var filtered []presetEntry
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.name), query) {
			filtered = append(filtered, e)
		}
	}
	m.filtered = filtered
}

// Selected returns the chosen preset name, or "" when cancelled.
func (m PresetPickerModel) Selected() string {
	if m.cancelled {
		return ""
	}
	return m.selected
}

// RunPresetPicker shows the picker and returns the chosen preset name.
// An empty name means the user cancelled.
func RunPresetPicker(presets map[string][]string) (string, error) {
	p := tea.NewProgram(NewPresetPickerModel(presets))
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run preset picker: %w", err)
	}
	result, ok := finalModel.(PresetPickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	return result.Selected(), nil
}
