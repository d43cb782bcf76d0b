// Package discord connects the router to a Discord gateway session.
package discord

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/internal/router"
)

// Intents the bot needs: guild and member events, messages with their content,
// emojis, and direct messages.
const Intents = discordgo.IntentGuilds |
	discordgo.IntentGuildMembers |
	discordgo.IntentGuildEmojis |
	discordgo.IntentGuildMessages |
	discordgo.IntentDirectMessages |
	discordgo.IntentMessageContent

// Bot is a Discord bot
type Bot struct {
	session *discordgo.Session
	log     *zap.SugaredLogger
}

// New creates a session for token. Nothing connects until Run.
func New(token string, log *zap.SugaredLogger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}
	dg.Identify.Intents = Intents
	dg.LogLevel = discordgo.LogWarning
	discordgo.Logger = gatewayLogger(log.Named("gateway"))

	return &Bot{session: dg, log: log}, nil
}

// Platform exposes the session as a core.Platform.
func (b *Bot) Platform() core.Platform {
	return &Platform{session: b.session}
}

// Run connects, feeds gateway events to r until ctx is done and disconnects.
// A failed connect is returned; dropped connections are resumed by the
// session and surface as disconnect events.
func (b *Bot) Run(ctx context.Context, r *router.Router) error {
	handle := func(ev router.Event) {
		if err := r.Handle(ctx, ev); err != nil {
			b.log.Errorf("Failed to handle %s event: %v", ev.Kind, err)
		}
	}

	removers := []func(){
		b.session.AddHandler(func(s *discordgo.Session, e *discordgo.Ready) {
			b.log.Infof("We have logged in as %s", e.User.String())
			handle(router.Event{Kind: router.EventReady, SelfID: e.User.ID})
		}),
		b.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
			handle(router.Event{Kind: router.EventDisconnect})
		}),
		b.session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
			if e.Member == nil || e.Member.User == nil {
				return
			}
			handle(router.Event{
				Kind:   router.EventMemberJoin,
				Member: toMember(s.State, e.GuildID, e.Member.User, e.Member),
			})
		}),
		b.session.AddHandler(func(s *discordgo.Session, e *discordgo.MessageCreate) {
			if e.Message == nil || e.Author == nil {
				return
			}
			handle(router.Event{Kind: router.EventMessage, Message: toMessage(s.State, e.Message)})
		}),
	}
	defer func() {
		for _, remove := range removers {
			remove()
		}
	}()

	if err := b.session.Open(); err != nil {
		return errors.Wrap(err, "failed to open Discord session")
	}
	defer b.session.Close()

	<-ctx.Done()
	b.log.Info("Shutdown signal received. Closing the gateway session...")
	return nil
}

// gatewayLogger routes discordgo's own log lines into zap.
func gatewayLogger(log *zap.SugaredLogger) func(msgL, caller int, format string, a ...interface{}) {
	return func(msgL, _ int, format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		switch msgL {
		case discordgo.LogError:
			log.Error(msg)
		case discordgo.LogWarning:
			log.Warn(msg)
		case discordgo.LogInformational:
			log.Info(msg)
		default:
			log.Debug(msg)
		}
	}
}
