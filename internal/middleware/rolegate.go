// Package middleware holds the cmd.Middleware the router wraps every prefix
// command in.
package middleware

import (
	"context"

	"emperror.dev/errors"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

// WithRoleGate refuses commands whose RequiredRole the invoking member does not
// hold. The command does not run and core.ErrPermissionDenied is returned, so
// no side effect of the command can happen for an unauthorized member.
func WithRoleGate() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		role := c.RequiredRole()
		if role == "" {
			return c
		}
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			req, ok := inv.Data.(*core.Request)
			if !ok || !core.Authorize(req.Message.Author, role) {
				return errors.WithMessagef(core.ErrPermissionDenied, "%s requires role %q", c.Name(), role)
			}
			return c.Run(ctx, inv)
		})
	}
}
