package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.screen {
	case screenJoin:
		return m.viewJoin()
	case screenLobby:
		return m.viewLobby()
	case screenGame:
		return m.viewGame()
	}
	return ""
}

func (m Model) viewJoin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Belote"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.roomInput.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab: switch field • enter: join • ctrl+c: quit"))
	return boxStyle.Render(b.String())
}

func (m Model) viewLobby() string {
	var roster strings.Builder
	roster.WriteString(titleStyle.Render("Lobby"))
	roster.WriteString("\n")
	for _, p := range m.roster {
		line := p.Name
		switch p.Team {
		case 1:
			line = team1Style.Render(line + " [team 1]")
		case 2:
			line = team2Style.Render(line + " [team 2]")
		default:
			line += " [no team]"
		}
		if p.ID == m.playerID {
			line += " (you)"
		}
		roster.WriteString(line)
		roster.WriteString("\n")
	}

	var chat strings.Builder
	chat.WriteString(titleStyle.Render("Chat"))
	chat.WriteString("\n")
	start := 0
	if len(m.chat) > 10 {
		start = len(m.chat) - 10
	}
	for _, c := range m.chat[start:] {
		chat.WriteString(fmt.Sprintf("%s %s %s\n",
			chatTimeStyle.Render(c.Timestamp),
			chatAuthorStyle.Render(c.Author+":"),
			c.Text))
	}
	chat.WriteString(m.chatInput.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(roster.String()),
		boxStyle.Render(chat.String()))

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: chat • ctrl+t: switch team • ctrl+s: start game • esc: leave"))
	return b.String()
}

func (m Model) viewGame() string {
	if m.game == nil {
		return "waiting for game state..."
	}
	g := m.game

	var b strings.Builder
	b.WriteString(titleStyle.Render("Belote"))
	b.WriteString("\n")

	// Other players around the table.
	for _, p := range g.Players {
		if p.ID == m.playerID {
			continue
		}
		style := team1Style
		if p.Team == 2 {
			style = team2Style
		}
		line := style.Render(p.Name) + fmt.Sprintf(": %d cards", p.HandSize)
		if p.ID == g.DealerID {
			line += " (dealer)"
		}
		if p.ID == g.CurrentPlayerID {
			line = turnStyle.Render("▶ ") + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Bidding area.
	switch g.Bidding.Phase {
	case "round1", "round2":
		if g.Bidding.TurnedCard != nil {
			b.WriteString("turned card: ")
			b.WriteString(cardStyle.Render(renderCardFace(g.Bidding.TurnedCard.Suit, g.Bidding.TurnedCard.Rank)))
			b.WriteString("\n")
		}
		b.WriteString(statusStyle.Render("bidding " + g.Bidding.Phase))
		b.WriteString("\n\n")
	case "resolved":
		b.WriteString(fmt.Sprintf("trump: %s%s\n\n", suitSymbols[g.TrumpSuit], g.TrumpSuit))
	}

	// Current trick.
	if len(g.Tricks.CurrentTrick) > 0 {
		plays := make([]string, 0, len(g.Tricks.CurrentTrick))
		for _, t := range g.Tricks.CurrentTrick {
			plays = append(plays, cardStyle.Render(renderCardFace(t.Card.Suit, t.Card.Rank)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, plays...))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Own hand with the cursor.
	cards := make([]string, 0, len(g.MyHand))
	for i, hc := range g.MyHand {
		face := renderCardFace(hc.Suit, hc.Rank)
		style := cardStyle
		if !hc.Playable && g.CurrentPlayerID == m.playerID && g.Bidding.Phase == "resolved" {
			style = dimCardStyle
		}
		if i == m.cursor {
			style = selectedCardStyle
		}
		cards = append(cards, style.Render(face))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cards...))
	b.WriteString("\n")

	if m.myTurn() {
		b.WriteString(turnStyle.Render("your turn"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	help := "←/→: select • enter: play • e: end game • esc: leave"
	switch g.Bidding.Phase {
	case "round1":
		help = "t: take • p: pass • e: end game • esc: leave"
	case "round2":
		help = "h/d/c/s: choose suit • p: pass • e: end game • esc: leave"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
