package commands

import (
	"context"
	"fmt"
	"strings"

	"emperror.dev/errors"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

const helloPrompt = "Who do you want me to say hello to?"

func hello(deps Deps) Definition {
	return Definition{
		Name:        "hello",
		Description: "Bot mentions someone else, telling them to have a good day.",
		Handler: func(ctx context.Context, req *core.Request, inv *cmd.Invocation) error {
			target := strings.TrimSpace(inv.Args)
			if target == "" {
				req.Reply(helloPrompt)
				return nil
			}

			// unresolvable names are greeted as typed, minus any pings
			who := escapeMentions(target)
			if id, ok := userID(target); ok {
				who = core.Member{ID: id}.Mention()
			} else if req.Message.GuildID != "" {
				member, err := req.Dir.FindMember(ctx, req.Message.GuildID, target)
				switch {
				case err == nil:
					who = member.Mention()
				case errors.Is(err, core.ErrMemberNotFound):
					deps.Log.Debugf("hello: no member matches %q", target)
				default:
					deps.Log.Warnf("hello: member lookup for %q failed: %v", target, err)
				}
			}

			req.Reply(fmt.Sprintf("Hello, I hope %s has a good day!", who))
			return nil
		},
	}
}

// escapeMentions breaks every @ with a zero-width space so neither @everyone,
// @here nor <@&role> survives as a mention.
func escapeMentions(s string) string {
	return strings.ReplaceAll(s, "@", "@\u200b")
}

// userID extracts the ID from a user mention (<@id> or <@!id>) or a bare
// snowflake.
func userID(s string) (string, bool) {
	if strings.HasPrefix(s, "<@") && strings.HasSuffix(s, ">") {
		id := strings.TrimPrefix(s[2:len(s)-1], "!")
		return id, isSnowflake(id)
	}
	return s, isSnowflake(s) && len(s) >= 15
}

func isSnowflake(s string) bool {
	if s == "" || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
