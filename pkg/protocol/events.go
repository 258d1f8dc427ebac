package protocol

import (
	"encoding/json"
	"fmt"
)

// envelope is the part of every server message needed to route it.
type envelope struct {
	Cmd string `json:"cmd"`
}

// ErrMissingCmd reports a server message without a "cmd" field.
var ErrMissingCmd = fmt.Errorf("protocol: server message has no cmd field")

// UnknownEventError reports a cmd value this client does not handle. The
// caller logs and ignores these; new server features must not break old
// clients.
type UnknownEventError struct {
	Cmd string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("protocol: unknown server command %q", e.Cmd)
}

// ChatEvent is a user message relayed by the server.
type ChatEvent struct {
	Nick   string `json:"nick"`
	Trip   string `json:"trip,omitempty"`
	Text   string `json:"text"`
	UserID *int   `json:"userid,omitempty"`
}

// InfoEvent is an informational message from the server itself. v2 servers
// reuse info for emotes and invites and mark them with Type; DecodeEvent
// re-classifies those into EmoteEvent and InviteEvent.
type InfoEvent struct {
	Text          string `json:"text"`
	Type          string `json:"type,omitempty"`
	From          string `json:"from,omitempty"`
	InviteChannel string `json:"inviteChannel,omitempty"`
}

// WarnEvent is a warning from the server (rate limits, bad joins).
type WarnEvent struct {
	Text string `json:"text"`
}

// CaptchaEvent asks the user to solve a captcha before chatting.
type CaptchaEvent struct {
	Text string `json:"text"`
}

// SessionEvent acknowledges a v2 session, carrying the id to resume with.
type SessionEvent struct {
	SessionID string   `json:"id"`
	Channels  []string `json:"channels,omitempty"`
}

// OnlineUser is one entry of an onlineSet listing.
type OnlineUser struct {
	Nick   string `json:"nick"`
	Trip   string `json:"trip,omitempty"`
	UserID *int   `json:"userid,omitempty"`
	IsMe   *bool  `json:"isme,omitempty"`
}

// OnlineSetEvent is the full roster sent on join. v2 servers send Users;
// legacy servers send only Nicks.
type OnlineSetEvent struct {
	Channel string       `json:"channel,omitempty"`
	Nicks   []string     `json:"nicks,omitempty"`
	Users   []OnlineUser `json:"users,omitempty"`
}

// OnlineAddEvent announces a user joining the channel.
type OnlineAddEvent struct {
	Nick   string `json:"nick"`
	Trip   string `json:"trip,omitempty"`
	UserID *int   `json:"userid,omitempty"`
}

// OnlineRemoveEvent announces a user leaving the channel.
type OnlineRemoveEvent struct {
	Nick   string `json:"nick"`
	UserID *int   `json:"userid,omitempty"`
}

// EmoteEvent is a third-person action message.
type EmoteEvent struct {
	Nick   string `json:"nick"`
	Trip   string `json:"trip,omitempty"`
	Text   string `json:"text"`
	UserID *int   `json:"userid,omitempty"`
}

// InviteEvent invites a user to another channel. From and To are server user
// ids when present.
type InviteEvent struct {
	From    *int   `json:"from,omitempty"`
	To      *int   `json:"to,omitempty"`
	Channel string `json:"inviteChannel"`
}

// DecodeEvent routes a raw server message to its concrete event type. The
// returned cmd is the wire name the message carried. Info messages typed as
// emote or invite are returned as those events instead, matching how v2
// servers deliver them.
func DecodeEvent(data []byte) (cmd string, event any, err error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", nil, fmt.Errorf("protocol: invalid server message: %w", err)
	}
	if env.Cmd == "" {
		return "", nil, ErrMissingCmd
	}

	switch env.Cmd {
	case CmdServerChat:
		event, err = decodeAs[ChatEvent](data)
	case CmdServerInfo:
		var info *InfoEvent
		info, err = decodeAs[InfoEvent](data)
		if err != nil {
			break
		}
		switch info.Type {
		case "emote":
			return CmdServerEmote, &EmoteEvent{Nick: info.From, Text: info.Text}, nil
		case "invite":
			return CmdServerInvite, &InviteEvent{Channel: info.InviteChannel}, nil
		}
		event = info
	case CmdServerWarn:
		event, err = decodeAs[WarnEvent](data)
	case CmdServerCaptcha:
		event, err = decodeAs[CaptchaEvent](data)
	case CmdServerSession:
		event, err = decodeAs[SessionEvent](data)
	case CmdServerOnlineSet:
		event, err = decodeAs[OnlineSetEvent](data)
	case CmdServerOnlineAdd:
		event, err = decodeAs[OnlineAddEvent](data)
	case CmdServerOnlineRemove:
		event, err = decodeAs[OnlineRemoveEvent](data)
	case CmdServerEmote:
		event, err = decodeAs[EmoteEvent](data)
	case CmdServerInvite:
		event, err = decodeAs[InviteEvent](data)
	default:
		return env.Cmd, nil, &UnknownEventError{Cmd: env.Cmd}
	}

	if err != nil {
		return env.Cmd, nil, err
	}
	return env.Cmd, event, nil
}

func decodeAs[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("protocol: malformed %T: %w", v, err)
	}
	return &v, nil
}
