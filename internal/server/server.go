package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/Izoret/Belote-WS/internal/config"
	"github.com/Izoret/Belote-WS/internal/game/room"
	gamesession "github.com/Izoret/Belote-WS/internal/game/session"
	"github.com/Izoret/Belote-WS/internal/server/handler"
	"github.com/Izoret/Belote-WS/internal/server/session"
	"github.com/Izoret/Belote-WS/internal/server/storage"
	"github.com/Izoret/Belote-WS/internal/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: false,
}

// Server is the WebSocket game server.
type Server struct {
	config         *config.Config
	redis          *redis.Client
	redisStore     *storage.RedisStore
	roomManager    *room.Manager
	sessionManager *session.SessionManager
	clients        map[string]*Client
	clientsMu      sync.RWMutex
	handler        *handler.Handler

	rateLimiter    *RateLimiter
	originChecker  *OriginChecker
	messageLimiter *MessageRateLimiter
	chatLimiter    *ChatRateLimiter

	maxConnections int
	semaphore      chan struct{} // bounds concurrent connections

	maintenanceMode bool
	maintenanceMu   sync.RWMutex
}

// NewServer wires the server up and verifies the Redis connection.
func NewServer(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	s := &Server{
		config:     cfg,
		redis:      rdb,
		redisStore: storage.NewRedisStore(rdb),
		clients:    make(map[string]*Client),
		rateLimiter: NewRateLimiter(
			cfg.Security.RateLimit.MaxPerSecond,
			cfg.Security.RateLimit.MaxPerMinute,
			cfg.Security.RateLimit.BanDurationTime(),
		),
		originChecker:  NewOriginChecker(cfg.Security.AllowedOrigins),
		messageLimiter: NewMessageRateLimiter(cfg.Security.MessageLimit.MaxPerSecond),
		chatLimiter: NewChatRateLimiter(
			cfg.Security.ChatLimit.MaxPerSecond,
			cfg.Security.ChatLimit.MaxPerMinute,
			cfg.Security.ChatLimit.CooldownDuration(),
		),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}
	upgrader.CheckOrigin = s.originChecker.Check

	s.sessionManager = session.NewSessionManager(s.redisStore)
	s.roomManager = room.NewManager(s.redisStore, gamesession.Config{
		ShufflePause:  cfg.Game.ShufflePauseDuration(),
		DealStepPause: cfg.Game.DealStepPauseDuration(),
		TrickPause:    cfg.Game.TrickPauseDuration(),
	}, cfg.Game.RoomTimeoutDuration())

	s.handler = handler.NewHandler(handler.HandlerDeps{
		Server:         s,
		RoomManager:    s.roomManager,
		ChatLimiter:    s.chatLimiter,
		SessionManager: s.sessionManager,
	})

	log.Printf("security: conn limit=%d/s, msg limit=%d/s, chat limit=%d/s, max connections=%d",
		cfg.Security.RateLimit.MaxPerSecond, cfg.Security.MessageLimit.MaxPerSecond,
		cfg.Security.ChatLimit.MaxPerSecond, cfg.Server.MaxConnections)

	return s, nil
}

// Start runs the HTTP listener. Blocks until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/health", s.handleHealth)

	go s.monitorStats()

	log.Printf("server listening on ws://%s/ws (%d CPU cores)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           nil,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return server.ListenAndServe()
}

// GetClientByID returns a connected client by ID, or nil.
func (s *Server) GetClientByID(id string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

// RegisterClient adds a client to the connection table.
func (s *Server) RegisterClient(id string, client types.ClientInterface) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if c, ok := client.(*Client); ok {
		s.clients[id] = c
	}
}

// UnregisterClient drops a client from the connection table.
func (s *Server) UnregisterClient(id string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, id)
}
