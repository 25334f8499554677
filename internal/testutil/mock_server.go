//go:build !production

package testutil

import (
	"sync"

	"github.com/Izoret/Belote-WS/internal/types"
)

// FakeServer is a minimal types.ServerInterface for handler tests: a
// client table and a maintenance flag.
type FakeServer struct {
	Maintenance bool

	mu      sync.RWMutex
	clients map[string]types.ClientInterface
}

func NewFakeServer() *FakeServer {
	return &FakeServer{clients: make(map[string]types.ClientInterface)}
}

func (s *FakeServer) IsMaintenanceMode() bool { return s.Maintenance }

func (s *FakeServer) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *FakeServer) GetClientByID(id string) types.ClientInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients[id]
}

func (s *FakeServer) RegisterClient(id string, client types.ClientInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = client
}

func (s *FakeServer) UnregisterClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}
