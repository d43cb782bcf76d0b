package core

import "sync"

// Request is the payload a chat command receives through cmd.Invocation.Data.
// Handlers read the message and the directory and record the actions they want.
type Request struct {
	Message Message
	Dir     Directory

	mu      sync.Mutex
	actions []Action
}

// NewRequest creates a request for msg.
func NewRequest(msg Message, dir Directory) *Request {
	return &Request{Message: msg, Dir: dir}
}

// Emit records actions in order.
func (r *Request) Emit(actions ...Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, actions...)
}

// Reply records a plain text answer in the message's channel.
func (r *Request) Reply(content string) {
	r.Emit(SendText{ChannelID: r.Message.ChannelID, Content: content})
}

// ReplyRich records a rich answer in the message's channel.
func (r *Request) ReplyRich(msg RichMessage) {
	r.Emit(SendRich{ChannelID: r.Message.ChannelID, Message: msg})
}

// Actions returns a copy of everything recorded so far.
func (r *Request) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Action(nil), r.actions...)
}
