package room

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Izoret/Belote-WS/internal/apperrors"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
	"github.com/Izoret/Belote-WS/internal/types"
)

const maxChatTextLen = 500

// AddChat appends a chat line to the room log and relays it to everyone.
// The log is capped; old lines fall off the front.
func (r *Room) AddChat(client types.ClientInterface, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) > maxChatTextLen {
		// Back off to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := maxChatTextLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	r.mu.Lock()
	player, ok := r.Players[client.GetID()]
	if !ok {
		r.mu.Unlock()
		return apperrors.ErrNotInRoom
	}

	entry := protocol.ChatMessage{
		Author:    player.Name,
		Text:      text,
		Timestamp: time.Now().Format("15:04"),
	}
	r.Chat = append(r.Chat, entry)
	if len(r.Chat) > maxChatSize {
		r.Chat = r.Chat[len(r.Chat)-maxChatSize:]
	}

	r.broadcastLocked(codec.MustNewMessage(protocol.MsgNewMessage, entry))
	r.mu.Unlock()

	r.save()
	return nil
}
