// Package protocol defines the hack.chat wire commands: the JSON messages a
// client sends, the events a server pushes, and validation of the values
// that travel in them. Every message carries a "cmd" field identifying it.
package protocol

import "encoding/json"

// Command names used on the wire.
const (
	CmdJoin    = "join"
	CmdChat    = "chat"
	CmdSession = "session"
	CmdPing    = "ping"

	CmdServerChat         = "chat"
	CmdServerInfo         = "info"
	CmdServerWarn         = "warn"
	CmdServerOnlineSet    = "onlineSet"
	CmdServerOnlineAdd    = "onlineAdd"
	CmdServerOnlineRemove = "onlineRemove"
	CmdServerEmote        = "emote"
	CmdServerInvite       = "invite"
	CmdServerCaptcha      = "captcha"
	CmdServerSession      = "session"
)

// Command is a client-to-server message.
type Command interface {
	// Cmd returns the wire name of the command.
	Cmd() string
}

// Join enters a channel under a nickname. The password, when present, is the
// tripcode seed and is never displayed.
type Join struct {
	Command  string `json:"cmd"`
	Nick     string `json:"nick"`
	Channel  string `json:"channel"`
	Password string `json:"pass,omitempty"`
}

// NewJoin builds a join command.
func NewJoin(nick, channel, password string) Join {
	return Join{Command: CmdJoin, Nick: nick, Channel: channel, Password: password}
}

func (j Join) Cmd() string { return CmdJoin }

// Chat sends a message to a channel.
type Chat struct {
	Command string `json:"cmd"`
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// NewChat builds a chat command.
func NewChat(channel, text string) Chat {
	return Chat{Command: CmdChat, Channel: channel, Text: text}
}

func (c Chat) Cmd() string { return CmdChat }

// Session announces the client to a v2 server before joining. A previous
// session id may be offered to resume.
type Session struct {
	Command string `json:"cmd"`
	ID      string `json:"id,omitempty"`
	IsBot   bool   `json:"isBot"`
}

// NewSession builds a session command.
func NewSession(id string, isBot bool) Session {
	return Session{Command: CmdSession, ID: id, IsBot: isBot}
}

func (s Session) Cmd() string { return CmdSession }

// Encode marshals a command for the socket.
func Encode(cmd Command) ([]byte, error) {
	return json.Marshal(cmd)
}
