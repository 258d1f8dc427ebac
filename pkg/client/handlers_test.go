package client

import (
	"testing"

	"github.com/skeinchat/skein/pkg/protocol"
)

func TestDispatchRoutesByType(t *testing.T) {
	h := &Handlers{}

	var gotChat *protocol.ChatEvent
	var gotWarn *protocol.WarnEvent
	h.OnChat(func(ev *protocol.ChatEvent) { gotChat = ev })
	h.OnWarn(func(ev *protocol.WarnEvent) { gotWarn = ev })

	h.Dispatch(&protocol.ChatEvent{Nick: "bob", Text: "hi"})
	if gotChat == nil || gotChat.Nick != "bob" {
		t.Errorf("chat handler got %+v", gotChat)
	}
	if gotWarn != nil {
		t.Errorf("warn handler fired for a chat event: %+v", gotWarn)
	}

	h.Dispatch(&protocol.WarnEvent{Text: "slow down"})
	if gotWarn == nil || gotWarn.Text != "slow down" {
		t.Errorf("warn handler got %+v", gotWarn)
	}
}

func TestDispatchMultipleHandlers(t *testing.T) {
	h := &Handlers{}
	calls := 0
	h.OnInfo(func(*protocol.InfoEvent) { calls++ })
	h.OnInfo(func(*protocol.InfoEvent) { calls++ })

	h.Dispatch(&protocol.InfoEvent{Text: "x"})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
