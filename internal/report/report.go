// Package report captures failed commands to sentry when a DSN is configured.
package report

import (
	"time"

	"emperror.dev/errors"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// Incident describes where a failure happened.
type Incident struct {
	Command   string
	UserID    string
	GuildID   string
	ChannelID string
}

// Reporter sends errors to sentry. The zero value only hands out local IDs.
type Reporter struct {
	enabled bool
}

// New initialises sentry for dsn. An empty dsn yields a local-only reporter.
func New(dsn, release string) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init sentry")
	}
	return &Reporter{enabled: true}, nil
}

// Enabled reports whether errors leave the process.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// Capture records err and returns an ID to put in the logs. Without sentry
// the ID is a fresh UUID so log lines for one failure can still be grouped.
func (r *Reporter) Capture(err error, in Incident) string {
	if !r.Enabled() {
		return uuid.New().String()
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if in.UserID != "" {
			scope.SetUser(sentry.User{ID: in.UserID})
		}
		scope.SetTag("command", in.Command)
		scope.SetTag("guild", in.GuildID)
		scope.SetTag("channel", in.ChannelID)
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data: map[string]interface{}{
			"user":    in.UserID,
			"command": in.Command,
		},
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	id := hub.CaptureException(err)
	if id == nil {
		return uuid.New().String()
	}
	return string(*id)
}

// Flush waits for buffered events to be sent.
func (r *Reporter) Flush(timeout time.Duration) {
	if r.Enabled() {
		sentry.Flush(timeout)
	}
}
