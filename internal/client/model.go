package client

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
)

type screen int

const (
	screenJoin screen = iota
	screenLobby
	screenGame
)

// serverMsg wraps one frame from the server for the bubbletea loop.
type serverMsg struct {
	msg *protocol.Message
}

// connClosedMsg fires when the connection dies.
type connClosedMsg struct{}

func waitForServer(ws *WSClient) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ws.Receive
		if !ok {
			return connClosedMsg{}
		}
		return serverMsg{msg: msg}
	}
}

// Model is the terminal client: join form, lobby with chat, game table.
type Model struct {
	ws       *WSClient
	screen   screen
	playerID string
	status   string
	width    int
	height   int

	nameInput textinput.Model
	roomInput textinput.Model
	focusRoom bool

	roster    []protocol.RoomPlayerInfo
	chat      []protocol.ChatMessage
	chatInput textinput.Model

	game   *protocol.GameStatePayload
	cursor int
}

// NewModel builds the initial model around a live connection.
func NewModel(ws *WSClient) Model {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 24
	name.Focus()

	room := textinput.New()
	room.Placeholder = "room code"
	room.CharLimit = 32

	chat := textinput.New()
	chat.Placeholder = "say something..."
	chat.CharLimit = 500

	return Model{
		ws:        ws,
		screen:    screenJoin,
		nameInput: name,
		roomInput: room,
		chatInput: chat,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForServer(m.ws))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case connClosedMsg:
		m.ws.Close()
		return m, tea.Quit

	case serverMsg:
		m.applyServer(msg.msg)
		return m, waitForServer(m.ws)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.ws.Close()
			return m, tea.Quit
		}
		switch m.screen {
		case screenJoin:
			return m.updateJoin(msg)
		case screenLobby:
			return m.updateLobby(msg)
		case screenGame:
			return m.updateGame(msg)
		}
	}
	return m, nil
}

func (m Model) updateJoin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focusRoom = !m.focusRoom
		if m.focusRoom {
			m.nameInput.Blur()
			m.roomInput.Focus()
		} else {
			m.roomInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case tea.KeyEnter:
		name := m.nameInput.Value()
		room := m.roomInput.Value()
		if name == "" || room == "" {
			m.status = "enter a name and a room code"
			return m, nil
		}
		m.ws.Send(codec.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
			RoomCode:   room,
			PlayerName: name,
		}))
		m.status = "joining..."
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusRoom {
		m.roomInput, cmd = m.roomInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateLobby(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ws.Send(codec.MustNewMessage(protocol.MsgLeaveRoom, struct{}{}))
		m.leaveToJoin()
		return m, nil

	case tea.KeyCtrlT:
		m.ws.Send(codec.MustNewMessage(protocol.MsgChangeTeam, protocol.ChangeTeamPayload{
			Team: (m.myTeam() + 1) % 3,
		}))
		return m, nil

	case tea.KeyCtrlS:
		m.ws.Send(codec.MustNewMessage(protocol.MsgStartGame, struct{}{}))
		return m, nil

	case tea.KeyEnter:
		text := m.chatInput.Value()
		if text != "" {
			m.ws.Send(codec.MustNewMessage(protocol.MsgSendMessage, protocol.SendMessagePayload{
				Text: text,
			}))
			m.chatInput.Reset()
		}
		return m, nil
	}

	if !m.chatInput.Focused() {
		m.chatInput.Focus()
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.ws.Send(codec.MustNewMessage(protocol.MsgLeaveRoom, struct{}{}))
		m.leaveToJoin()
		return m, nil

	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyRight:
		if m.cursor < len(m.game.MyHand)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.myTurn() && m.game.Bidding.Phase == "resolved" && m.cursor < len(m.game.MyHand) {
			hc := m.game.MyHand[m.cursor]
			m.ws.Send(codec.MustNewMessage(protocol.MsgPlayCard, protocol.PlayCardPayload{
				Card: protocol.CardInfo{Suit: hc.Suit, Rank: hc.Rank},
			}))
		}
		return m, nil
	}

	switch msg.String() {
	case "t":
		if m.myTurn() && m.game.Bidding.Phase == "round1" {
			m.sendBid("take")
		}
	case "p":
		if m.myTurn() && m.bidding() {
			m.sendBid("pass")
		}
	case "h", "d", "c", "s":
		if m.myTurn() && m.game.Bidding.Phase == "round2" {
			suits := map[string]string{"h": "hearts", "d": "diamonds", "c": "clubs", "s": "spades"}
			m.sendBid(suits[msg.String()])
		}
	case "e":
		m.ws.Send(codec.MustNewMessage(protocol.MsgEndGame, struct{}{}))
	}
	return m, nil
}

func (m *Model) sendBid(action string) {
	m.ws.Send(codec.MustNewMessage(protocol.MsgBidAction, protocol.BidActionPayload{
		Action: action,
	}))
}

func (m *Model) applyServer(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgConnected:
		if p, err := codec.ParsePayload[protocol.ConnectedPayload](msg); err == nil {
			m.playerID = p.PlayerID
		}

	case protocol.MsgRoomUpdate:
		if p, err := codec.ParsePayload[protocol.RoomUpdatePayload](msg); err == nil {
			m.roster = p.Players
			m.chat = p.Chat
			if m.screen == screenJoin {
				m.screen = screenLobby
				m.status = ""
				m.chatInput.Focus()
			}
			if m.screen == screenGame && m.game == nil {
				m.screen = screenLobby
			}
		}

	case protocol.MsgNewMessage:
		if p, err := codec.ParsePayload[protocol.NewMessagePayload](msg); err == nil {
			m.chat = append(m.chat, *p)
		}

	case protocol.MsgGameState:
		if p, err := codec.ParsePayload[protocol.GameStatePayload](msg); err == nil {
			m.game = p
			m.screen = screenGame
			if m.cursor >= len(p.MyHand) {
				m.cursor = 0
			}
		}

	case protocol.MsgGameEnd:
		m.game = nil
		m.screen = screenLobby
		m.status = "game over"

	case protocol.MsgError:
		if p, err := codec.ParsePayload[protocol.ErrorPayload](msg); err == nil {
			m.status = errorStyle.Render(fmt.Sprintf("error %d: %s", p.Code, p.Message))
		}
	}
}

func (m *Model) leaveToJoin() {
	m.screen = screenJoin
	m.roster = nil
	m.chat = nil
	m.game = nil
	m.status = ""
	m.chatInput.Reset()
	m.nameInput.Focus()
	m.roomInput.Blur()
	m.focusRoom = false
}

func (m *Model) myTeam() int {
	for _, p := range m.roster {
		if p.ID == m.playerID {
			return p.Team
		}
	}
	return 0
}

func (m *Model) myTurn() bool {
	return m.game != nil && m.game.CurrentPlayerID == m.playerID
}

func (m *Model) bidding() bool {
	phase := m.game.Bidding.Phase
	return phase == "round1" || phase == "round2"
}
