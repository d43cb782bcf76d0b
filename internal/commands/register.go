package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/apis"
	"github.com/keshon/server-buddy/pkg/cmd"
)

// FunAPIs is what the quote and animal commands fetch from.
type FunAPIs interface {
	RandomQuote(ctx context.Context) (apis.Quote, error)
	DogImage(ctx context.Context) (string, error)
	DogFact(ctx context.Context) (string, error)
	CatImage(ctx context.Context) (string, error)
}

// Deps is everything the handlers need.
type Deps struct {
	APIs    FunAPIs
	ModRole string
	Prefix  string
	Log     *zap.SugaredLogger
}

// Register adds every command to reg. The help listing is rendered once, after
// all commands are in.
func Register(reg *cmd.Registry, deps Deps) error {
	if deps.Log == nil {
		deps.Log = zap.NewNop().Sugar()
	}

	var listing string
	defs := []Definition{
		inspire(deps),
		hello(deps),
		dog(deps),
		cat(deps),
		createChannel(deps),
		createCategory(deps),
		helpListing(&listing),
	}
	for _, def := range defs {
		if err := reg.Register(New(def)); err != nil {
			return err
		}
	}

	listing = Listing(deps.Prefix, reg.All())
	return nil
}

// Listing renders the quoted bullet list `commands` sends.
func Listing(prefix string, cmds []cmd.Command) string {
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, fmt.Sprintf("> * %s%s :- %s", prefix, c.Name(), c.Description()))
	}
	return strings.Join(lines, "\n")
}
