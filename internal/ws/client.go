package ws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"careeriq/internal/domain/career"
	"careeriq/internal/usecase"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
)

const (
	FrameSession = "session"
	FrameMessage = "message"
	FrameError   = "error"
)

// Frame is the server-to-client envelope.
type Frame struct {
	Type      string              `json:"type"`
	SessionID string              `json:"sessionId,omitempty"`
	Message   *career.ChatMessage `json:"message,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// Inbound is what a client sends. A frame that is not JSON is taken as the
// message text itself.
type Inbound struct {
	Text string `json:"text"`
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	mentor    MentorService
	owner     string
	sessionID string
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewClient(hub *Hub, conn *websocket.Conn, mentor MentorService, owner, sessionID string, logger *zap.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		mentor:    mentor,
		owner:     owner,
		sessionID: sessionID,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ReadPump turns each inbound frame into a mentor turn. It owns the
// connection teardown: in-flight replies are cancelled and the mentor session
// is ended when the peer goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.cancel()
		c.wg.Wait()
		if err := c.mentor.End(c.owner, c.sessionID); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
			c.logger.Warn("end mentor session", zap.String("session_id", c.sessionID), zap.Error(err))
		}
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read", zap.String("session_id", c.sessionID), zap.Error(err))
			}
			return
		}

		text := parseInbound(raw)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.reply(text)
		}()
	}
}

func (c *Client) reply(text string) {
	_, err := c.mentor.Send(c.ctx, c.owner, c.sessionID, text, func(m career.ChatMessage) {
		c.enqueue(Frame{Type: FrameMessage, SessionID: c.sessionID, Message: &m})
	})
	switch {
	case err == nil, errors.Is(err, usecase.ErrReplyFailed):
		// The final snapshot already carries the outcome.
	case errors.Is(err, usecase.ErrSessionBusy), errors.Is(err, usecase.ErrEmptyMessage):
		c.enqueue(Frame{Type: FrameError, SessionID: c.sessionID, Error: err.Error()})
	default:
		c.logger.Warn("mentor send", zap.String("session_id", c.sessionID), zap.Error(err))
		c.enqueue(Frame{Type: FrameError, SessionID: c.sessionID, Error: usecase.ErrChatUnavailable.Error()})
	}
}

// enqueue blocks until the frame is queued or the client is gone. Fragments
// are never dropped while the connection is alive.
func (c *Client) enqueue(f Frame) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	case <-c.ctx.Done():
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// shutdown aborts in-flight replies and drops the connection; ReadPump then
// runs the usual teardown.
func (c *Client) shutdown() {
	c.cancel()
	_ = c.conn.Close()
}

func parseInbound(raw []byte) string {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err == nil {
		return in.Text
	}
	return strings.TrimSpace(string(raw))
}
