package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E75480"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB3D5"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
	eventStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C71585")).Bold(true)
	taskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")).Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// Event and Task label the two agenda sections.
func Event(text string) string { return eventStyle.Render(text) }
func Task(text string) string  { return taskStyle.Render(text) }
