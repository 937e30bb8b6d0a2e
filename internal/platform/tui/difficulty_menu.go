package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    - two enemies, quick respawn"},
	{config.DifficultyNormal, "Normal  - three enemies, fire rate ramps up"},
	{config.DifficultyHard, "Hard    - five enemies, slow respawn"},
	{config.DifficultyFixed, "Fixed   - no ramp, config values only"},
}

// menuKeys defines the key bindings for the difficulty menu.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// DifficultyMenuModel lets the player pick a difficulty preset before play.
type DifficultyMenuModel struct {
	cursor   int
	width    int
	height   int
	keys     menuKeys
	chosen   bool
	quitting bool
}

// NewDifficultyMenuModel creates the menu with "normal" preselected.
func NewDifficultyMenuModel(width, height int) DifficultyMenuModel {
	return DifficultyMenuModel{
		cursor: 1,
		width:  width,
		height: height,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G A L A G A"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := "  " + opt.label
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %s", opt.label))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Q/Esc: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyMenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultyMenu shows the difficulty menu and returns the chosen preset.
// ok is false when the player quit instead of choosing.
func RunDifficultyMenu(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyMenuModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isMenu := final.(DifficultyMenuModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
