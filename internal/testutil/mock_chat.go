//go:build !production

package testutil

import "github.com/stretchr/testify/mock"

// MockChatLimiter is a testify mock of types.ChatLimiter.
type MockChatLimiter struct {
	mock.Mock
}

func (m *MockChatLimiter) AllowChat(clientID string) (allowed bool, reason string) {
	args := m.Called(clientID)
	return args.Bool(0), args.String(1)
}

func (m *MockChatLimiter) RemoveClient(clientID string) {
	m.Called(clientID)
}

// OpenChatLimiter never throttles.
type OpenChatLimiter struct{}

func (OpenChatLimiter) AllowChat(string) (bool, string) { return true, "" }
func (OpenChatLimiter) RemoveClient(string)             {}
