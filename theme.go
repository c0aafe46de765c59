package main

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Line    lipgloss.Style
	Marker  lipgloss.Style
	Active  lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Prompt  lipgloss.Style
	Help    lipgloss.Style
	Title   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Line:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Active:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Status:  lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Prompt:  lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true),
	}
}
