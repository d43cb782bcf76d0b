package middleware

import (
	"context"
	"time"

	"emperror.dev/errors"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/pkg/cmd"
)

// WithCommandLogger logs every execution and counts it by outcome. Failures
// are only counted here; reporting them is the router's job.
func WithCommandLogger(log *zap.SugaredLogger, m *metrics.Metrics) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			outcome := metrics.OutcomeOK
			switch {
			case err == nil:
			case errors.Is(err, core.ErrPermissionDenied):
				outcome = metrics.OutcomeDenied
			default:
				outcome = metrics.OutcomeError
			}
			if m != nil {
				m.Commands.WithLabelValues(c.Name(), outcome).Inc()
			}

			fields := []interface{}{"command", c.Name(), "outcome", outcome, "took", time.Since(start)}
			if req, ok := inv.Data.(*core.Request); ok {
				fields = append(fields,
					"user", req.Message.Author.Name,
					"user_id", req.Message.Author.ID,
					"guild_id", req.Message.GuildID,
					"channel_id", req.Message.ChannelID,
				)
			}
			if log != nil {
				log.Infow("Command executed", fields...)
			}
			return err
		})
	}
}
