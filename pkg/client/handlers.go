package client

import (
	"log"

	"github.com/skeinchat/skein/pkg/protocol"
)

// Handlers holds the callbacks the client invokes for each server event.
// Registration is not synchronized; register everything before Run.
type Handlers struct {
	chat         []func(*protocol.ChatEvent)
	info         []func(*protocol.InfoEvent)
	warn         []func(*protocol.WarnEvent)
	captcha      []func(*protocol.CaptchaEvent)
	session      []func(*protocol.SessionEvent)
	onlineSet    []func(*protocol.OnlineSetEvent)
	onlineAdd    []func(*protocol.OnlineAddEvent)
	onlineRemove []func(*protocol.OnlineRemoveEvent)
	emote        []func(*protocol.EmoteEvent)
	invite       []func(*protocol.InviteEvent)
}

func (h *Handlers) OnChat(fn func(*protocol.ChatEvent)) { h.chat = append(h.chat, fn) }
func (h *Handlers) OnInfo(fn func(*protocol.InfoEvent)) { h.info = append(h.info, fn) }
func (h *Handlers) OnWarn(fn func(*protocol.WarnEvent)) { h.warn = append(h.warn, fn) }
func (h *Handlers) OnCaptcha(fn func(*protocol.CaptchaEvent)) {
	h.captcha = append(h.captcha, fn)
}
func (h *Handlers) OnSession(fn func(*protocol.SessionEvent)) {
	h.session = append(h.session, fn)
}
func (h *Handlers) OnOnlineSet(fn func(*protocol.OnlineSetEvent)) {
	h.onlineSet = append(h.onlineSet, fn)
}
func (h *Handlers) OnOnlineAdd(fn func(*protocol.OnlineAddEvent)) {
	h.onlineAdd = append(h.onlineAdd, fn)
}
func (h *Handlers) OnOnlineRemove(fn func(*protocol.OnlineRemoveEvent)) {
	h.onlineRemove = append(h.onlineRemove, fn)
}
func (h *Handlers) OnEmote(fn func(*protocol.EmoteEvent)) { h.emote = append(h.emote, fn) }
func (h *Handlers) OnInvite(fn func(*protocol.InviteEvent)) {
	h.invite = append(h.invite, fn)
}

// Dispatch routes a decoded event to its registered handlers.
func (h *Handlers) Dispatch(event any) {
	switch ev := event.(type) {
	case *protocol.ChatEvent:
		for _, fn := range h.chat {
			fn(ev)
		}
	case *protocol.InfoEvent:
		for _, fn := range h.info {
			fn(ev)
		}
	case *protocol.WarnEvent:
		for _, fn := range h.warn {
			fn(ev)
		}
	case *protocol.CaptchaEvent:
		for _, fn := range h.captcha {
			fn(ev)
		}
	case *protocol.SessionEvent:
		for _, fn := range h.session {
			fn(ev)
		}
	case *protocol.OnlineSetEvent:
		for _, fn := range h.onlineSet {
			fn(ev)
		}
	case *protocol.OnlineAddEvent:
		for _, fn := range h.onlineAdd {
			fn(ev)
		}
	case *protocol.OnlineRemoveEvent:
		for _, fn := range h.onlineRemove {
			fn(ev)
		}
	case *protocol.EmoteEvent:
		for _, fn := range h.emote {
			fn(ev)
		}
	case *protocol.InviteEvent:
		for _, fn := range h.invite {
			fn(ev)
		}
	default:
		log.Printf("[client] no handler type for %T", event)
	}
}
