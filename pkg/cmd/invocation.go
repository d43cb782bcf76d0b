// Package cmd provides a transport-agnostic command core: a command is something
// with a name, help text, an optional required role and Run(ctx, invocation).
// How text is turned into an Invocation and how commands are dispatched is left
// to the router that owns the transport.
package cmd

import (
	"context"
	"strings"
	"unicode"
)

// Invocation carries what any runner can pass to a command: the name it was
// invoked with, the raw argument text, and an opaque payload. Adapters set Data
// to their own request context.
type Invocation struct {
	Name string
	Args string
	Data interface{}
}

// Fields splits the argument text on whitespace.
func (inv *Invocation) Fields() []string {
	return strings.Fields(inv.Args)
}

// Command is the universal contract: identity plus execution. RequiredRole is
// metadata only; enforcing it is up to middleware.
type Command interface {
	Name() string
	Description() string
	RequiredRole() string
	Run(ctx context.Context, inv *Invocation) error
}

// Parse splits prefixed text into an invocation. The command name must follow
// the prefix directly; everything after the first run of whitespace is Args.
func Parse(prefix, content string) (*Invocation, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return nil, false
	}
	rest := strings.TrimRightFunc(content[len(prefix):], unicode.IsSpace)
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return nil, false
	}

	name, args := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name, args = rest[:i], strings.TrimSpace(rest[i:])
	}
	return &Invocation{Name: name, Args: args}, true
}
