package client

import (
	"sort"
	"sync"

	"github.com/skeinchat/skein/pkg/protocol"
)

// User is one member of the channel as the roster tracks them.
type User struct {
	ID     int
	Nick   string
	Trip   string
	Online bool
}

// Roster tracks who is in the channel. Legacy servers do not send user ids,
// so entries without one get locally generated negative ids; those never
// collide with real server ids, which are non-negative.
type Roster struct {
	mu        sync.RWMutex
	users     map[int]User
	selfID    int
	selfKnown bool
	nextID    int
	nick      string
}

// NewRoster returns an empty roster. ownNick is used to recognize ourselves
// on servers that do not send an isme flag.
func NewRoster(ownNick string) *Roster {
	return &Roster{
		users:  make(map[int]User),
		selfID: 0,
		nextID: -1,
		nick:   ownNick,
	}
}

// SetOwnNick updates the nick used for self detection.
func (r *Roster) SetOwnNick(nick string) {
	r.mu.Lock()
	r.nick = nick
	r.mu.Unlock()
}

// Reset replaces the roster with the contents of an onlineSet event. The
// self entry is the one flagged isme, or failing that the one matching our
// own nick.
func (r *Roster) Reset(set *protocol.OnlineSetEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[int]User)
	r.selfKnown = false

	if len(set.Users) > 0 {
		for _, u := range set.Users {
			id := r.idFor(u.UserID)
			r.users[id] = User{ID: id, Nick: u.Nick, Trip: u.Trip, Online: true}
			if u.IsMe != nil && *u.IsMe {
				r.selfID = id
				r.selfKnown = true
			}
		}
	} else {
		for _, nick := range set.Nicks {
			id := r.nextID
			r.nextID--
			r.users[id] = User{ID: id, Nick: nick, Online: true}
		}
	}

	if !r.selfKnown {
		for id, u := range r.users {
			if u.Nick == r.nick {
				r.selfID = id
				r.selfKnown = true
				break
			}
		}
	}
}

// Add records a user joining the channel.
func (r *Roster) Add(ev *protocol.OnlineAddEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.idFor(ev.UserID)
	r.users[id] = User{ID: id, Nick: ev.Nick, Trip: ev.Trip, Online: true}
}

// Remove marks a user as gone. The entry is kept so late-arriving messages
// can still resolve the nick.
func (r *Roster) Remove(ev *protocol.OnlineRemoveEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev.UserID != nil {
		if u, ok := r.users[*ev.UserID]; ok {
			u.Online = false
			r.users[*ev.UserID] = u
			return
		}
	}
	for id, u := range r.users {
		if u.Online && u.Nick == ev.Nick {
			u.Online = false
			r.users[id] = u
			return
		}
	}
}

// idFor maps a wire user id to a roster key, inventing a negative one when
// the server sent none. Callers hold the lock.
func (r *Roster) idFor(wireID *int) int {
	if wireID != nil {
		return *wireID
	}
	id := r.nextID
	r.nextID--
	return id
}

// Self returns our own entry, if the server identified us.
func (r *Roster) Self() (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.selfKnown {
		return User{}, false
	}
	u, ok := r.users[r.selfID]
	if !ok {
		return User{}, false
	}
	return u, true
}

// FindOnlineNick returns the online user with the given nick.
func (r *Roster) FindOnlineNick(nick string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Online && u.Nick == nick {
			return u, true
		}
	}
	return User{}, false
}

// OnlineNicks returns the nicks of everyone currently online, sorted.
func (r *Roster) OnlineNicks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	nicks := make([]string, 0, len(r.users))
	for _, u := range r.users {
		if u.Online {
			nicks = append(nicks, u.Nick)
		}
	}
	sort.Strings(nicks)
	return nicks
}

// OnlineCount returns how many users are currently online.
func (r *Roster) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Online {
			n++
		}
	}
	return n
}
