package client

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/skeinchat/skein/pkg/protocol"
)

// DefaultReconnectWait is how long the client sleeps before redialing a
// dropped connection.
const DefaultReconnectWait = 500 * time.Millisecond

// Client runs the read loop over a Connection: it maintains the roster,
// tracks the session id, dispatches events, and reconnects when the link
// drops.
type Client struct {
	conn     *Connection
	creds    Credentials
	handlers *Handlers
	roster   *Roster

	// ReconnectWait overrides the redial delay when positive.
	ReconnectWait time.Duration
}

// New wraps an established connection. The built-in bookkeeping handlers
// (roster updates, session capture) are registered before any the caller
// adds.
func New(conn *Connection, creds Credentials) *Client {
	c := &Client{
		conn:     conn,
		creds:    creds,
		handlers: &Handlers{},
		roster:   NewRoster(creds.Nick),
	}

	c.handlers.OnOnlineSet(func(ev *protocol.OnlineSetEvent) { c.roster.Reset(ev) })
	c.handlers.OnOnlineAdd(func(ev *protocol.OnlineAddEvent) { c.roster.Add(ev) })
	c.handlers.OnOnlineRemove(func(ev *protocol.OnlineRemoveEvent) { c.roster.Remove(ev) })
	c.handlers.OnSession(func(ev *protocol.SessionEvent) { c.conn.SetSessionID(ev.SessionID) })

	return c
}

// Handlers exposes the registration surface.
func (c *Client) Handlers() *Handlers { return c.handlers }

// Roster exposes the channel membership.
func (c *Client) Roster() *Roster { return c.roster }

// Join sends the opening session and join commands.
func (c *Client) Join() error {
	return c.conn.SendOpeningCommands(c.creds)
}

// Say sends a chat message to the joined channel.
func (c *Client) Say(text string) error {
	return c.conn.Send(protocol.NewChat(c.creds.Channel, text))
}

// Run reads and dispatches events until ctx is canceled. Read failures
// trigger a reconnect after a short wait; decode failures for unknown
// commands are logged and skipped.
func (c *Client) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cmd, event, err := c.conn.ReadEvent()
		if err != nil {
			var unknown *protocol.UnknownEventError
			switch {
			case errors.As(err, &unknown):
				log.Printf("[client] ignoring %v", unknown)
				continue
			case errors.Is(err, protocol.ErrMissingCmd):
				log.Printf("[client] ignoring malformed server message: %v", err)
				continue
			case cmd != "":
				// The socket delivered a frame; only its payload is bad.
				log.Printf("[client] ignoring malformed %s event: %v", cmd, err)
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			wait := c.ReconnectWait
			if wait <= 0 {
				wait = DefaultReconnectWait
			}
			log.Printf("[client] connection lost (%v), reconnecting in %v", err, wait)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}

			if rerr := c.conn.Reconnect(c.creds); rerr != nil {
				log.Printf("[client] reconnect failed: %v", rerr)
				continue
			}
			log.Printf("[client] reconnected")
			continue
		}

		if event != nil {
			c.handlers.Dispatch(event)
		}
	}
}

// Close shuts the underlying connection down.
func (c *Client) Close() error { return c.conn.Close() }
