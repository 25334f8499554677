//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/Izoret/Belote-WS/internal/protocol"
)

// MockClient is a testify mock of types.ClientInterface.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetID(id string) {
	m.Called(id)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetName(name string) {
	m.Called(name)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(roomCode string) {
	m.Called(roomCode)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient is a recording client for tests that only need to inspect
// delivered frames. Safe for concurrent senders.
type SimpleClient struct {
	ID       string
	Name     string
	RoomCode string

	mu       sync.Mutex
	messages []*protocol.Message
}

func (c *SimpleClient) GetID() string       { return c.ID }
func (c *SimpleClient) SetID(id string)     { c.ID = id }
func (c *SimpleClient) GetName() string     { return c.Name }
func (c *SimpleClient) SetName(name string) { c.Name = name }
func (c *SimpleClient) GetRoom() string     { return c.RoomCode }
func (c *SimpleClient) SetRoom(code string) { c.RoomCode = code }
func (c *SimpleClient) Close()              {}

func (c *SimpleClient) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of everything delivered so far.
func (c *SimpleClient) Messages() []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*protocol.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastOfType returns the most recent frame of the given type, or nil.
func (c *SimpleClient) LastOfType(t protocol.MessageType) *protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Type == t {
			return c.messages[i]
		}
	}
	return nil
}

// CountOfType counts delivered frames of the given type.
func (c *SimpleClient) CountOfType(t protocol.MessageType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, m := range c.messages {
		if m.Type == t {
			n++
		}
	}
	return n
}
