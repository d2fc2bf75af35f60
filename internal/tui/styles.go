package tui

import (
	"SimpleMercari/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Style — вариант отображения списка.
type Style int

const (
	StylePlain Style = iota
	StyleCard
)

// ParseStyle переводит значение из конфигурации в Style.
func ParseStyle(s string) Style {
	if s == config.StyleCard {
		return StyleCard
	}
	return StylePlain
}

// Tokyo Night
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Width(10)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")).
			Padding(0, 1)

	focusedButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#9ece6a")).
				Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))

	imageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1).
			MarginBottom(1)

	plainStyle = lipgloss.NewStyle().MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")).
			Italic(true).
			MarginTop(1)
)
