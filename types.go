package main

import "github.com/charmbracelet/bubbles/textinput"

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	editor         *Editor
	config         *Config
	theme          Theme
	mode           Mode
	help           bool
	helpScroll     int
	input          textinput.Model
	inputSetting   Setting
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
}
