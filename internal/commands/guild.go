package commands

import (
	"context"
	"strings"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/pkg/cmd"
)

func createChannel(deps Deps) Definition {
	return Definition{
		Name:        "create",
		Description: "Bot allows users with the moderator role to create a channel.",
		Role:        deps.ModRole,
		Handler: func(ctx context.Context, req *core.Request, inv *cmd.Invocation) error {
			raw := strings.TrimSpace(inv.Args)
			name := textChannelName(raw)
			if name == "" {
				return core.ErrMissingArgument
			}
			guildID := req.Message.GuildID
			if guildID == "" {
				return core.ErrNotInGuild
			}

			channels, err := req.Dir.Channels(ctx, guildID)
			if err != nil {
				return err
			}
			for _, ch := range channels {
				if ch.Name == raw || ch.Name == name {
					deps.Log.Debugf("create: %q already exists in %s", ch.Name, guildID)
					return nil
				}
			}

			deps.Log.Infof("Creating a new channel: %s", name)
			req.Emit(core.CreateChannel{GuildID: guildID, Name: name, Kind: core.ChannelText})
			return nil
		},
	}
}

func createCategory(deps Deps) Definition {
	return Definition{
		Name:        "category",
		Description: "Bot allows users with the moderator role to create a category.",
		Role:        deps.ModRole,
		Handler: func(ctx context.Context, req *core.Request, inv *cmd.Invocation) error {
			name := strings.TrimSpace(inv.Args)
			if name == "" {
				return core.ErrMissingArgument
			}
			guildID := req.Message.GuildID
			if guildID == "" {
				return core.ErrNotInGuild
			}

			channels, err := req.Dir.Channels(ctx, guildID)
			if err != nil {
				return err
			}
			for _, ch := range channels {
				if ch.Kind == core.ChannelCategory && ch.Name == name {
					deps.Log.Debugf("category: %q already exists in %s", name, guildID)
					return nil
				}
			}

			deps.Log.Infof("Creating a new category: %s", name)
			req.Emit(core.CreateChannel{GuildID: guildID, Name: name, Kind: core.ChannelCategory})
			return nil
		},
	}
}

// textChannelName returns name the way Discord stores text channel names:
// lower case, whitespace runs collapsed into single dashes.
func textChannelName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
