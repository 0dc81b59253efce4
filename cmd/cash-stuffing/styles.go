package main

import "github.com/charmbracelet/lipgloss"

// Colors are dropped when the output is not a terminal.
var (
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
)
