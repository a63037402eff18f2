package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coinboard/internal/config"
	"github.com/vovakirdan/coinboard/internal/games/coins"
	"github.com/vovakirdan/coinboard/internal/storage"
)

// Dialog input indexes.
const (
	inputWidth = iota
	inputHeight
)

// DialogKeyMap defines the key bindings for the board size dialog.
type DialogKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Preset key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Preset, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Preset, k.Scores, k.Quit},
	}
}

// DefaultDialogKeyMap returns default key bindings.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Preset: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "preset"),
		),
		Scores: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// DialogModel asks for the board size before a board is built.
// It cannot be dismissed into an empty board: the only ways out are a
// valid size, the scoreboard, or quitting.
type DialogModel struct {
	inputs  []textinput.Model
	focus   int
	presets []config.BoardPreset
	preset  int // Index of the last applied preset, -1 if none
	cfg     config.CoinsConfig
	store   *storage.Store
	keys    DialogKeyMap
	help    help.Model
	width   int
	height  int
	err     error
	best    string // Best run on the entered size, if known

	boardW         int
	boardH         int
	submitted      bool
	quitting       bool
	openScoreboard bool
}

// NewDialogModel creates a dialog prefilled with the given board size.
// A zero size falls back to the configured default board.
func NewDialogModel(store *storage.Store, cfg config.CoinsConfig, screenW, screenH, boardW, boardH int) DialogModel {
	if boardW <= 0 || boardH <= 0 {
		boardW, boardH = cfg.Board.Width, cfg.Board.Height
	}

	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 3
		ti.Width = 5
		ti.Prompt = ""
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
		inputs[i] = ti
	}
	inputs[inputWidth].Placeholder = strconv.Itoa(cfg.Board.Width)
	inputs[inputWidth].SetValue(strconv.Itoa(boardW))
	inputs[inputHeight].Placeholder = strconv.Itoa(cfg.Board.Height)
	inputs[inputHeight].SetValue(strconv.Itoa(boardH))
	inputs[inputWidth].Focus()

	h := help.New()
	h.ShowAll = false

	m := DialogModel{
		inputs:  inputs,
		presets: config.BoardPresets(),
		preset:  -1,
		cfg:     cfg,
		store:   store,
		keys:    DefaultDialogKeyMap(),
		help:    h,
		width:   screenW,
		height:  screenH,
	}
	m.refreshBest()
	return m
}

// Init starts the cursor blink.
func (m DialogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the dialog.
func (m DialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))

		case key.Matches(msg, m.keys.Preset):
			m.applyPreset((m.preset + 1) % len(m.presets))
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			w, h, err := m.parse()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.boardW, m.boardH = w, h
			m.submitted = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.err = nil
		m.refreshBest()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to input i.
func (m *DialogModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// applyPreset fills both inputs from preset i.
func (m *DialogModel) applyPreset(i int) {
	if len(m.presets) == 0 {
		return
	}
	m.preset = i
	p := m.presets[i]
	m.inputs[inputWidth].SetValue(strconv.Itoa(p.Width))
	m.inputs[inputHeight].SetValue(strconv.Itoa(p.Height))
	m.err = nil
	m.refreshBest()
}

// parse reads and validates the entered board size.
func (m DialogModel) parse() (width, height int, err error) {
	width, err = parseDimension("width", m.inputs[inputWidth].Value())
	if err != nil {
		return 0, 0, err
	}
	height, err = parseDimension("height", m.inputs[inputHeight].Value())
	if err != nil {
		return 0, 0, err
	}
	if err := coins.ValidateDimensions(width, height, m.cfg.Board.MaxWidth, m.cfg.Board.MaxHeight); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// parseDimension converts one input value to a number.
func parseDimension(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: %s is required", coins.ErrInvalidDimension, name)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", coins.ErrInvalidDimension, name, value)
	}
	return n, nil
}

// refreshBest looks up the best run for the entered size.
func (m *DialogModel) refreshBest() {
	m.best = ""
	if m.store == nil {
		return
	}
	w, h, err := m.parse()
	if err != nil {
		return
	}
	steps, ok, err := m.store.BestSteps(coins.GameID, w, h)
	if err != nil || !ok {
		return
	}
	m.best = fmt.Sprintf("Best on %dx%d: %d steps", w, h, steps)
}

// View renders the dialog.
func (m DialogModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	labelStyle := lipgloss.NewStyle().Width(8)
	focusedLabel := labelStyle.Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bestStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("C O I N   B O A R D"))
	b.WriteString("\n\n")
	b.WriteString("Choose a board size\n\n")

	labels := []string{"Width", "Height"}
	for i, input := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabel
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("[ ")
		b.WriteString(input.View())
		b.WriteString(" ]\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("max %dx%d", m.cfg.Board.MaxWidth, m.cfg.Board.MaxHeight)))
	b.WriteString("\n")

	names := make([]string, len(m.presets))
	for i, p := range m.presets {
		name := fmt.Sprintf("%s %dx%d", p.Name, p.Width, p.Height)
		if i == m.preset {
			name = titleStyle.Render(name)
		}
		names[i] = name
	}
	b.WriteString(dimStyle.Render("presets: ") + strings.Join(names, dimStyle.Render(" · ")))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.best != "":
		b.WriteString("\n")
		b.WriteString(bestStyle.Render(m.best))
		b.WriteString("\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	content := lipgloss.JoinVertical(lipgloss.Center,
		boxStyle.Render(b.String()),
		"",
		dimStyle.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Submitted returns the accepted board size.
func (m DialogModel) Submitted() (width, height int, ok bool) {
	return m.boardW, m.boardH, m.submitted
}

// Err returns the last validation error, if any.
func (m DialogModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit.
func (m DialogModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m DialogModel) WantsScoreboard() bool {
	return m.openScoreboard
}
