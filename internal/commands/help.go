package commands

import (
	"context"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

func helpListing(listing *string) Definition {
	return Definition{
		Name:        "commands",
		Description: "Lists the commands and their uses for the bot.",
		Handler: func(_ context.Context, req *core.Request, _ *cmd.Invocation) error {
			req.Reply(*listing)
			return nil
		},
	}
}
