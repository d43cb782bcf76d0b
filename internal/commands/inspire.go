package commands

import (
	"context"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

func inspire(deps Deps) Definition {
	return Definition{
		Name:        "inspire",
		Description: "Bot sends a random inspiration quote it fetched from an API.",
		Handler: func(ctx context.Context, req *core.Request, _ *cmd.Invocation) error {
			quote, err := deps.APIs.RandomQuote(ctx)
			if err != nil {
				return err
			}
			req.Reply(quote.String())
			return nil
		},
	}
}
