package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Izoret/Belote-WS/internal/protocol"
)

func TestEncodeDecode(t *testing.T) {
	msg := MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomCode:   "tbl1",
		PlayerName: "Ana",
	})

	data, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	defer PutMessage(decoded)

	assert.Equal(t, protocol.MsgJoinRoom, decoded.Type)
	payload, err := ParsePayload[protocol.JoinRoomPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "tbl1", payload.RoomCode)
	assert.Equal(t, "Ana", payload.PlayerName)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestNewMessageNilPayload(t *testing.T) {
	msg, err := NewMessage(protocol.MsgLeaveRoom, nil)
	require.NoError(t, err)
	assert.Empty(t, msg.Payload)

	data, err := Encode(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"leave_room"}`, string(data))
}

func TestParsePayloadEmpty(t *testing.T) {
	msg := &protocol.Message{Type: protocol.MsgPing}

	payload, err := ParsePayload[protocol.PingPayload](msg)
	require.NoError(t, err)
	assert.Zero(t, payload.Timestamp)
}

func TestParsePayloadMismatch(t *testing.T) {
	msg := MustNewMessage(protocol.MsgChangeTeam, protocol.ChangeTeamPayload{Team: 2})

	_, err := ParsePayload[protocol.PingPayload](msg)
	require.NoError(t, err) // unknown fields are ignored, not an error

	msg.Payload = []byte(`{"team":"red"}`)
	_, err = ParsePayload[protocol.ChangeTeamPayload](msg)
	assert.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	msg := NewErrorMessage(protocol.ErrCodeRoomFull)
	payload, err := ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeRoomFull, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeRoomFull], payload.Message)

	msg = NewErrorMessageWithText(protocol.ErrCodeRateLimit, "slow down")
	payload, err = ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "slow down", payload.Message)
}

func TestMessagePoolReuse(t *testing.T) {
	msg := GetMessage()
	msg.Type = protocol.MsgPing
	msg.Payload = []byte(`{"timestamp":1}`)
	PutMessage(msg)

	fresh := GetMessage()
	assert.Empty(t, fresh.Type)
	assert.Nil(t, fresh.Payload)
	PutMessage(fresh)
}
