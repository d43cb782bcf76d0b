package router

import "github.com/keshon/server-buddy/internal/core"

// EventKind names the gateway events the router reacts to.
type EventKind string

const (
	EventReady      EventKind = "ready"
	EventDisconnect EventKind = "disconnect"
	EventMemberJoin EventKind = "member_join"
	EventMessage    EventKind = "message"
)

// Event is a platform event translated into core types. Only the field that
// matches Kind is set.
type Event struct {
	Kind EventKind

	SelfID  string       // EventReady
	Member  core.Member  // EventMemberJoin
	Message core.Message // EventMessage
}

// State is the connection state of the bot.
type State int32

const (
	StateDisconnected State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "disconnected"
}
