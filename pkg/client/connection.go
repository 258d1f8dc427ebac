// Package client connects to a hack.chat server, keeps the connection alive,
// and dispatches decoded server events to registered handlers.
package client

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skeinchat/skein/pkg/protocol"
)

const (
	// Time allowed to complete the opening handshake.
	handshakeTimeout = 10 * time.Second

	// Time allowed to write a message to the server.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the server.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size accepted from the server.
	maxMessageSize = 65536
)

// Credentials is everything needed to (re)join a channel.
type Credentials struct {
	Nick     string
	Channel  string
	Password string
}

// Connection is a single websocket session with a hack.chat server. It is
// safe to send from multiple goroutines; reads belong to one reader.
type Connection struct {
	url  string
	conn *websocket.Conn

	writeMu sync.Mutex

	// sessionID is the id a v2 server handed us, offered back on reconnect.
	sessionID string
	sessionMu sync.Mutex

	pingStop chan struct{}
	pingOnce sync.Once
}

// Dial opens a websocket connection to url and starts the keepalive pings.
func Dial(url string) (*Connection, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", url, err)
	}

	c := &Connection{
		url:      url,
		conn:     conn,
		pingStop: make(chan struct{}),
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.pingLoop()
	return c, nil
}

// pingLoop keeps the connection alive. It stops when Close is called or a
// ping fails to go out.
func (c *Connection) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.pingStop:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				log.Printf("[ws] ping failed: %v", err)
				return
			}
		}
	}
}

// Send encodes and writes a command to the server.
func (c *Connection) Send(cmd protocol.Command) error {
	data, err := protocol.Encode(cmd)
	if err != nil {
		return fmt.Errorf("client: encode %s: %w", cmd.Cmd(), err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("client: send %s: %w", cmd.Cmd(), err)
	}
	return nil
}

// ReadEvent blocks for the next server message and decodes it. A decode
// error is returned alongside the wire cmd so the caller can decide
// whether it is fatal; an unknown cmd is not a reason to drop the link.
func (c *Connection) ReadEvent() (string, any, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", nil, fmt.Errorf("client: read: %w", err)
	}
	return protocol.DecodeEvent(data)
}

// SendOpeningCommands announces the session (offering any previous id) and
// joins the channel. Servers that predate the session command ignore it.
func (c *Connection) SendOpeningCommands(creds Credentials) error {
	c.sessionMu.Lock()
	id := c.sessionID
	c.sessionMu.Unlock()

	if err := c.Send(protocol.NewSession(id, false)); err != nil {
		return err
	}
	return c.Send(protocol.NewJoin(creds.Nick, creds.Channel, creds.Password))
}

// SetSessionID records the id a v2 server assigned, used on reconnect.
func (c *Connection) SetSessionID(id string) {
	c.sessionMu.Lock()
	c.sessionID = id
	c.sessionMu.Unlock()
}

// Reconnect tears down the current socket and dials the same URL again,
// then replays the opening commands. The previous session id is kept so a
// v2 server can resume.
func (c *Connection) Reconnect(creds Credentials) error {
	c.closeSocket()

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("client: redial %s: %w", c.url, err)
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	c.conn = conn
	c.pingStop = make(chan struct{})
	c.pingOnce = sync.Once{}
	go c.pingLoop()

	return c.SendOpeningCommands(creds)
}

// Close sends a close frame and shuts the socket down.
func (c *Connection) Close() error {
	c.writeMu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	c.closeSocket()
	return nil
}

func (c *Connection) closeSocket() {
	c.pingOnce.Do(func() { close(c.pingStop) })
	c.conn.Close()
}
