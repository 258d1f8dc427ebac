package protocol

import (
	"errors"
	"testing"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantCmd string
		check   func(t *testing.T, event any)
	}{
		{
			name:    "chat",
			data:    `{"cmd":"chat","nick":"alice","trip":"AbCdEf","text":"hello"}`,
			wantCmd: CmdServerChat,
			check: func(t *testing.T, event any) {
				chat := event.(*ChatEvent)
				if chat.Nick != "alice" || chat.Trip != "AbCdEf" || chat.Text != "hello" {
					t.Errorf("chat = %+v", chat)
				}
			},
		},
		{
			name:    "info",
			data:    `{"cmd":"info","text":"you are now chatting"}`,
			wantCmd: CmdServerInfo,
			check: func(t *testing.T, event any) {
				info := event.(*InfoEvent)
				if info.Text != "you are now chatting" {
					t.Errorf("info = %+v", info)
				}
			},
		},
		{
			name:    "info typed emote becomes emote",
			data:    `{"cmd":"info","type":"emote","from":"bob","text":"bob waves"}`,
			wantCmd: CmdServerEmote,
			check: func(t *testing.T, event any) {
				emote := event.(*EmoteEvent)
				if emote.Nick != "bob" || emote.Text != "bob waves" {
					t.Errorf("emote = %+v", emote)
				}
			},
		},
		{
			name:    "info typed invite becomes invite",
			data:    `{"cmd":"info","type":"invite","from":"bob","inviteChannel":"lounge"}`,
			wantCmd: CmdServerInvite,
			check: func(t *testing.T, event any) {
				invite := event.(*InviteEvent)
				if invite.Channel != "lounge" {
					t.Errorf("invite = %+v", invite)
				}
			},
		},
		{
			name:    "warn",
			data:    `{"cmd":"warn","text":"you are joining channels too fast"}`,
			wantCmd: CmdServerWarn,
			check: func(t *testing.T, event any) {
				warn := event.(*WarnEvent)
				if warn.Text == "" {
					t.Errorf("warn = %+v", warn)
				}
			},
		},
		{
			name:    "online set with users",
			data:    `{"cmd":"onlineSet","users":[{"nick":"alice","userid":7,"isme":true},{"nick":"bob","trip":"XyZzYx"}]}`,
			wantCmd: CmdServerOnlineSet,
			check: func(t *testing.T, event any) {
				set := event.(*OnlineSetEvent)
				if len(set.Users) != 2 {
					t.Fatalf("users = %+v", set.Users)
				}
				if set.Users[0].UserID == nil || *set.Users[0].UserID != 7 {
					t.Errorf("userid = %v", set.Users[0].UserID)
				}
				if set.Users[0].IsMe == nil || !*set.Users[0].IsMe {
					t.Errorf("isme = %v", set.Users[0].IsMe)
				}
			},
		},
		{
			name:    "online set legacy nicks",
			data:    `{"cmd":"onlineSet","nicks":["alice","bob"]}`,
			wantCmd: CmdServerOnlineSet,
			check: func(t *testing.T, event any) {
				set := event.(*OnlineSetEvent)
				if len(set.Nicks) != 2 || len(set.Users) != 0 {
					t.Errorf("set = %+v", set)
				}
			},
		},
		{
			name:    "online add",
			data:    `{"cmd":"onlineAdd","nick":"carol","userid":12}`,
			wantCmd: CmdServerOnlineAdd,
			check: func(t *testing.T, event any) {
				add := event.(*OnlineAddEvent)
				if add.Nick != "carol" {
					t.Errorf("add = %+v", add)
				}
			},
		},
		{
			name:    "online remove",
			data:    `{"cmd":"onlineRemove","nick":"carol"}`,
			wantCmd: CmdServerOnlineRemove,
			check: func(t *testing.T, event any) {
				rm := event.(*OnlineRemoveEvent)
				if rm.Nick != "carol" {
					t.Errorf("remove = %+v", rm)
				}
			},
		},
		{
			name:    "session",
			data:    `{"cmd":"session","id":"abc123"}`,
			wantCmd: CmdServerSession,
			check: func(t *testing.T, event any) {
				sess := event.(*SessionEvent)
				if sess.SessionID != "abc123" {
					t.Errorf("session = %+v", sess)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, event, err := DecodeEvent([]byte(tt.data))
			if err != nil {
				t.Fatalf("DecodeEvent: %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			tt.check(t, event)
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	if _, _, err := DecodeEvent([]byte(`{"text":"no cmd"}`)); !errors.Is(err, ErrMissingCmd) {
		t.Errorf("missing cmd error = %v", err)
	}

	_, _, err := DecodeEvent([]byte(`{"cmd":"updateMessage"}`))
	var unknown *UnknownEventError
	if !errors.As(err, &unknown) || unknown.Cmd != "updateMessage" {
		t.Errorf("unknown cmd error = %v", err)
	}

	if _, _, err := DecodeEvent([]byte(`not json`)); err == nil {
		t.Error("invalid json did not error")
	}
}

func TestEncodeCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "join with password",
			cmd:  NewJoin("alice", "programming", "hunter2"),
			want: `{"cmd":"join","nick":"alice","channel":"programming","pass":"hunter2"}`,
		},
		{
			name: "join without password omits pass",
			cmd:  NewJoin("alice", "programming", ""),
			want: `{"cmd":"join","nick":"alice","channel":"programming"}`,
		},
		{
			name: "chat",
			cmd:  NewChat("programming", "hi"),
			want: `{"cmd":"chat","channel":"programming","text":"hi"}`,
		},
		{
			name: "session",
			cmd:  NewSession("", false),
			want: `{"cmd":"session","isBot":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.cmd)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Encode = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestValidateNick(t *testing.T) {
	tests := []struct {
		name    string
		nick    string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with digits and underscore", "alice_99", false},
		{"max length", "abcdefghijklmnopqrstuvwx", false},
		{"empty", "", true},
		{"too long", "abcdefghijklmnopqrstuvwxy", true},
		{"space", "al ice", true},
		{"punctuation", "alice!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNick(tt.nick)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNick(%q) = %v, wantErr %v", tt.nick, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChannel(t *testing.T) {
	if err := ValidateChannel("programming"); err != nil {
		t.Errorf("ValidateChannel = %v", err)
	}
	if err := ValidateChannel(""); err == nil {
		t.Error("empty channel accepted")
	}
	if err := ValidateChannel("has space"); err == nil {
		t.Error("channel with space accepted")
	}
}
