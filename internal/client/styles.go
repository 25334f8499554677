package client

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	redSuitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	blackSuitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("220")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	dimCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	team1Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	team2Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	chatAuthorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	chatTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

var suitSymbols = map[string]string{
	"hearts":   "♥",
	"diamonds": "♦",
	"clubs":    "♣",
	"spades":   "♠",
}

var rankSymbols = map[string]string{
	"7":     "7",
	"8":     "8",
	"9":     "9",
	"10":    "10",
	"jack":  "J",
	"queen": "Q",
	"king":  "K",
	"ace":   "A",
}

// renderCardFace draws one card's text with suit coloring.
func renderCardFace(suit, rank string) string {
	face := rankSymbols[rank] + suitSymbols[suit]
	if suit == "hearts" || suit == "diamonds" {
		return redSuitStyle.Render(face)
	}
	return blackSuitStyle.Render(face)
}
