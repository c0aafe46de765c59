package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runEditor(config *Config) error {
	editor, err := NewEditor(config.NumLines, config.NumPoints, config.Spacing, config.HitRadius)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		initialModel(config, editor),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

func initialModel(config *Config, editor *Editor) model {
	ti := textinput.New()
	ti.CharLimit = 5
	ti.Width = 8

	return model{
		editor: editor,
		config: config,
		theme:  DefaultTheme(),
		mode:   ModeNormal,
		input:  ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncCanvasSize()
		m.ensureCursorInBounds()
		L().Debug("canvas.resize", "cols", msg.Width, "rows", msg.Height,
			"width", m.editor.Width(), "height", m.editor.Height())
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeNumberInput:
			return m.handleNumberInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}

	if m.mode == ModeNumberInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pt := m.cellPoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		if m.editor.PointerDown(pt) {
			m.cursorX, m.cursorY = msg.X, msg.Y
			m.ensureCursorInBounds()
			sel, _ := m.editor.Selected()
			L().Debug("drag.start", "line", sel.Line, "point", sel.Point, "x", pt.X, "y", pt.Y)
		}
	case tea.MouseActionMotion:
		if m.editor.PointerMove(pt) {
			m.cursorX, m.cursorY = msg.X, msg.Y
			m.ensureCursorInBounds()
		}
	case tea.MouseActionRelease:
		if m.editor.Dragging() {
			L().Debug("drag.end", "y", m.editor.DragStartY())
		}
		m.editor.EndDrag()
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.editor.EndDrag()
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil
	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	case " ", "space", "enter":
		m.toggleGrab()
		return m, nil
	case "n":
		return m.startNumberInput(SettingLines, m.editor.NumLines())
	case "p":
		return m.startNumberInput(SettingPoints, m.editor.NumPoints())
	case "s":
		return m.startNumberInput(SettingSpacing, m.editor.Spacing())
	case "r":
		if err := m.editor.SetNumLines(m.editor.NumLines()); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.successMessage = "Grid reset"
		return m, nil
	case "e":
		m.exportSVG(false)
		return m, nil
	case "E":
		m.exportPNG(false)
		return m, nil
	case "y":
		m.copySVG()
		return m, nil
	case "T":
		path := m.config.GetSavePath(exportFilenameText)
		if err := m.exportVisualTXT(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting text: %v", err)
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported %s", path)
		return m, nil
	}
	return m, nil
}

func (m model) startNumberInput(setting Setting, current int) (tea.Model, tea.Cmd) {
	m.editor.EndDrag()
	m.mode = ModeNumberInput
	m.inputSetting = setting
	m.input.Prompt = settingLabel(setting) + ": "
	m.input.SetValue(strconv.Itoa(current))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func settingLabel(setting Setting) string {
	switch setting {
	case SettingLines:
		return "Lines"
	case SettingPoints:
		return "Control points"
	default:
		return "Spacing"
	}
}

func (m model) handleNumberInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = ModeNormal
		m.input.Blur()
		m.applySetting(m.inputSetting, strings.TrimSpace(m.input.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applySetting validates and applies a typed value. Rejected values leave the
// editor untouched.
func (m *model) applySetting(setting Setting, value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		m.errorMessage = fmt.Sprintf("%s must be a whole number", settingLabel(setting))
		return
	}
	switch setting {
	case SettingLines:
		err = m.editor.SetNumLines(n)
	case SettingPoints:
		err = m.editor.SetNumPoints(n)
	case SettingSpacing:
		m.editor.SetSpacing(n)
	}
	if err != nil {
		L().Warn("config.rejected", "setting", settingLabel(setting), "value", n, "error", err)
		m.errorMessage = err.Error()
		return
	}
	L().Info("config.changed", "setting", settingLabel(setting), "value", n)
	m.successMessage = fmt.Sprintf("%s set to %d", settingLabel(setting), n)
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmOverwriteSVG:
			m.exportSVG(true)
		case ConfirmOverwritePNG:
			m.exportPNG(true)
		case ConfirmQuit:
			return m, tea.Quit
		}
		return m, nil
	case "n", "N", "esc", "q":
		m.mode = ModeNormal
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		maxScroll := len(helpLines) - (m.height - 1)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}
