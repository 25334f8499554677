package client

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Izoret/Belote-WS/internal/logger"
	"github.com/Izoret/Belote-WS/internal/protocol"
	"github.com/Izoret/Belote-WS/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WSClient is the client side of the wire: one connection, a send queue
// and a receive channel the UI drains.
type WSClient struct {
	conn    *websocket.Conn
	send    chan []byte
	Receive chan *protocol.Message
	done    chan struct{}

	closeOnce sync.Once
}

// Dial connects to the server and starts the pumps.
func Dial(url string) (*WSClient, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	c := &WSClient{
		conn:    conn,
		send:    make(chan []byte, 64),
		Receive: make(chan *protocol.Message, 64),
		done:    make(chan struct{}),
	}

	go c.readPump()
	go c.writePump()

	return c, nil
}

// Send queues a message for the server.
func (c *WSClient) Send(msg *protocol.Message) {
	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("encode error: %v", err)
		return
	}
	select {
	case c.send <- data:
	case <-c.done:
	}
}

// Close tears the connection down. Safe to call more than once.
func (c *WSClient) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *WSClient) readPump() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.Close()
		close(c.Receive)
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error: %v", err)
			}
			return
		}

		msg, err := codec.Decode(message)
		if err != nil {
			log.Printf("decode error: %v", err)
			continue
		}

		select {
		case c.Receive <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *WSClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
