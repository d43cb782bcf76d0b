// Package router turns platform events into actions. Every event kind maps to
// one planning function; planning only reads through core.Directory, and the
// resulting actions are applied to the platform in order afterwards.
package router

import (
	"context"
	"fmt"
	"sync/atomic"

	"emperror.dev/errors"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/internal/middleware"
	"github.com/keshon/server-buddy/internal/report"
	"github.com/keshon/server-buddy/pkg/cmd"
)

type planFunc func(ctx context.Context, ev Event) ([]core.Action, error)

// Options configures a Router.
type Options struct {
	Prefix       string
	PresenceText string
	Registry     *cmd.Registry
	Platform     core.Platform
	// Middlewares wrap every command outside the role gate, last outermost.
	Middlewares []cmd.Middleware
	Log         *zap.SugaredLogger
	Reporter    *report.Reporter
	Metrics     *metrics.Metrics
}

// Router is the explicit application context: it owns the registry, the
// platform and the connection state that event handling needs.
type Router struct {
	prefix      string
	presence    string
	registry    *cmd.Registry
	platform    core.Platform
	middlewares []cmd.Middleware
	log         *zap.SugaredLogger
	reporter    *report.Reporter
	metrics     *metrics.Metrics

	state  atomic.Int32
	selfID atomic.Value // string

	table map[EventKind]planFunc
}

// New creates a router in the disconnected state.
func New(opts Options) *Router {
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if opts.Registry == nil {
		opts.Registry = cmd.NewRegistry()
	}

	r := &Router{
		prefix:      opts.Prefix,
		presence:    opts.PresenceText,
		registry:    opts.Registry,
		platform:    opts.Platform,
		middlewares: append([]cmd.Middleware{middleware.WithRoleGate()}, opts.Middlewares...),
		log:         opts.Log,
		reporter:    opts.Reporter,
		metrics:     opts.Metrics,
	}
	r.selfID.Store("")
	r.table = map[EventKind]planFunc{
		EventReady:      r.onReady,
		EventDisconnect: r.onDisconnect,
		EventMemberJoin: r.onMemberJoin,
		EventMessage:    r.onMessage,
	}
	return r
}

// State returns the current connection state.
func (r *Router) State() State {
	return State(r.state.Load())
}

// SelfID returns the bot's own user ID, empty before the first ready event.
func (r *Router) SelfID() string {
	return r.selfID.Load().(string)
}

// Plan decides what to do about ev without touching the platform's write side.
func (r *Router) Plan(ctx context.Context, ev Event) ([]core.Action, error) {
	plan, ok := r.table[ev.Kind]
	if !ok {
		return nil, errors.Errorf("unknown event kind %q", ev.Kind)
	}
	return plan(ctx, ev)
}

// Handle plans ev and applies the actions in order. Application stops at the
// first failing action, except for undeliverable direct messages, which are
// only logged.
func (r *Router) Handle(ctx context.Context, ev Event) error {
	if r.metrics != nil {
		r.metrics.Events.WithLabelValues(string(ev.Kind)).Inc()
	}

	actions, err := r.Plan(ctx, ev)
	if err != nil {
		return err
	}

	for _, a := range actions {
		if err := a.Apply(ctx, r.platform); err != nil {
			if errors.Is(err, core.ErrDirectMessageUnavailable) {
				r.log.Warnf("Could not %s: %v", a, err)
				continue
			}
			return errors.WithMessage(err, a.String())
		}
		r.log.Debugf("Done: %s", a)
	}
	return nil
}

func (r *Router) onReady(_ context.Context, ev Event) ([]core.Action, error) {
	r.selfID.Store(ev.SelfID)
	r.state.Store(int32(StateReady))
	r.log.Infof("Logged in as %s", ev.SelfID)
	return []core.Action{core.SetPresence{Text: r.presence}}, nil
}

func (r *Router) onDisconnect(context.Context, Event) ([]core.Action, error) {
	r.state.Store(int32(StateDisconnected))
	r.log.Warn("Disconnected from the gateway")
	return nil, nil
}

func (r *Router) onMemberJoin(_ context.Context, ev Event) ([]core.Action, error) {
	name := ev.Member.Name
	if name == "" {
		name = ev.Member.DisplayName
	}
	return []core.Action{core.SendDirect{
		UserID:  ev.Member.ID,
		Content: fmt.Sprintf("%s, welcome!", name),
	}}, nil
}

func (r *Router) onMessage(ctx context.Context, ev Event) ([]core.Action, error) {
	msg := ev.Message
	if msg.Author.ID == r.SelfID() {
		return nil, nil
	}

	actions := r.substituteEmoji(ctx, msg)

	// bots never run commands, but their shortcodes are still substituted
	if msg.Author.Bot {
		return actions, nil
	}
	return append(actions, r.dispatch(ctx, msg)...), nil
}

// substituteEmoji replaces a message that is exactly :name: with the guild
// emoji of that name.
func (r *Router) substituteEmoji(ctx context.Context, msg core.Message) []core.Action {
	name, ok := core.EmojiShortcode(msg.Content)
	if !ok || msg.GuildID == "" {
		return nil
	}

	emojis, err := r.platform.Emojis(ctx, msg.GuildID)
	if err != nil {
		r.log.Warnf("Failed to list emojis of guild %s: %v", msg.GuildID, err)
		return nil
	}
	emoji, ok := core.FindEmoji(emojis, name)
	if !ok {
		return nil
	}

	return []core.Action{
		core.SendText{ChannelID: msg.ChannelID, Content: emoji.Render()},
		core.DeleteMessage{ChannelID: msg.ChannelID, MessageID: msg.ID},
	}
}

// dispatch runs the prefix command msg names, if any, and returns what it
// asked for plus whatever its failure calls for.
func (r *Router) dispatch(ctx context.Context, msg core.Message) []core.Action {
	inv, ok := cmd.Parse(r.prefix, msg.Content)
	if !ok {
		return nil
	}

	c, err := r.registry.Lookup(inv.Name)
	if err != nil {
		r.log.Debugf("Ignoring %s%s: %v", r.prefix, inv.Name, err)
		return nil
	}

	req := core.NewRequest(msg, r.platform)
	inv.Data = req
	err = cmd.Apply(c, r.middlewares...).Run(ctx, inv)

	actions := req.Actions()
	if err != nil {
		actions = append(actions, r.commandFailed(msg, c.Name(), err)...)
	}
	return actions
}

func (r *Router) commandFailed(msg core.Message, name string, err error) []core.Action {
	switch {
	case errors.Is(err, core.ErrPermissionDenied):
		r.log.Infof("Denied %s%s to %s: %v", r.prefix, name, msg.Author.Name, err)
		return []core.Action{core.SendText{ChannelID: msg.ChannelID, Content: core.DenialText}}

	case errors.Is(err, core.ErrMissingArgument), errors.Is(err, core.ErrNotInGuild):
		r.log.Debugf("Ignoring %s%s from %s: %v", r.prefix, name, msg.Author.Name, err)
		return nil
	}

	id := r.reporter.Capture(err, report.Incident{
		Command:   name,
		UserID:    msg.Author.ID,
		GuildID:   msg.GuildID,
		ChannelID: msg.ChannelID,
	})
	r.log.Errorw("Command failed",
		"command", name,
		"user_id", msg.Author.ID,
		"guild_id", msg.GuildID,
		"event_id", id,
		"error", err,
	)
	return nil
}
