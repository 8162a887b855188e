package web

import (
	"encoding/json"
	"strconv"
	"time"

	"calcpad/internal/input"
	"calcpad/internal/observability"
	"calcpad/internal/widget"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client is one browser tab with a mounted widget. The connection's lifetime
// is the widget's mount lifetime.
type Client struct {
	ID       string
	hub      *Hub
	conn     *websocket.Conn
	send     chan *Message
	widget   *widget.Widget
	keyboard *input.Keyboard
	logger   *zap.Logger
}

// NewClient mounts w on a fresh keyboard fed by conn.
func NewClient(hub *Hub, conn *websocket.Conn, w *widget.Widget) *Client {
	id := uuid.New().String()

	c := &Client{
		ID:       id,
		hub:      hub,
		conn:     conn,
		send:     make(chan *Message, 64),
		widget:   w,
		keyboard: input.NewKeyboard(),
		logger:   observability.Logger.With(zap.String("client_id", id)),
	}
	w.Mount(c.keyboard)

	return c
}

// ReadPump pumps messages from the WebSocket connection into the widget. The
// widget is unmounted when the connection ends for any reason.
func (c *Client) ReadPump() {
	defer func() {
		c.widget.Unmount()
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("invalid websocket message", zap.Error(err))
			c.enqueue(&Message{Type: MessageTypeError, Error: "invalid message"})
			continue
		}

		c.enqueue(c.handleMessage(&msg))
	}
}

// WritePump pumps queued messages to the WebSocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Warn("websocket write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg *Message) *Message {
	switch msg.Type {
	case MessageTypeKey:
		res := c.keyboard.Dispatch(msg.Key)
		keyEvents.WithLabelValues(strconv.FormatBool(res.Handled)).Inc()
		return c.state(res.Handled, res.PreventDefault)

	case MessageTypePress:
		return c.state(c.widget.Press(msg.Label), false)

	case MessageTypeToggleTheme:
		return c.state(c.widget.ToggleTheme(), false)

	default:
		c.logger.Warn("unknown message type", zap.String("type", msg.Type))
		return &Message{Type: MessageTypeError, Error: "unknown message type " + strconv.Quote(msg.Type)}
	}
}

func (c *Client) state(handled, preventDefault bool) *Message {
	v := c.widget.View()
	return &Message{
		Type:           MessageTypeState,
		Display:        v.Display,
		Theme:          v.Theme,
		Variant:        v.Variant,
		Toggleable:     v.Toggleable,
		Handled:        handled,
		PreventDefault: preventDefault,
	}
}

func (c *Client) enqueue(msg *Message) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warn("client send queue full, dropping message", zap.String("type", msg.Type))
	}
}
