// Package commands implements the bot's prefix commands.
package commands

import (
	"context"

	"emperror.dev/errors"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

// Definition describes one prefix command.
type Definition struct {
	Name        string
	Description string
	Role        string // required role name, empty for everyone

	Handler func(ctx context.Context, req *core.Request, inv *cmd.Invocation) error
}

// New turns a definition into a cmd.Command.
func New(def Definition) cmd.Command {
	return &command{def: def}
}

type command struct {
	def Definition
}

func (c *command) Name() string         { return c.def.Name }
func (c *command) Description() string  { return c.def.Description }
func (c *command) RequiredRole() string { return c.def.Role }

func (c *command) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, ok := inv.Data.(*core.Request)
	if !ok {
		return errors.Errorf("%s: unsupported invocation payload %T", c.def.Name, inv.Data)
	}
	return c.def.Handler(ctx, req, inv)
}
