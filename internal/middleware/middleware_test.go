package middleware

import (
	"context"
	"testing"

	"emperror.dev/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/keshon/server-buddy/internal/core"
	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/pkg/cmd"
)

type stubCommand struct {
	name string
	role string
	err  error
	runs int
}

func (s *stubCommand) Name() string         { return s.name }
func (s *stubCommand) Description() string  { return "stub" }
func (s *stubCommand) RequiredRole() string { return s.role }
func (s *stubCommand) Run(context.Context, *cmd.Invocation) error {
	s.runs++
	return s.err
}

func invocation(roles ...string) *cmd.Invocation {
	msg := core.Message{ChannelID: "c1", GuildID: "g1", Author: core.Member{ID: "u1", Name: "bob", RoleNames: roles}}
	return &cmd.Invocation{Name: "x", Data: core.NewRequest(msg, nil)}
}

func TestWithRoleGate(t *testing.T) {
	gated := &stubCommand{name: "create", role: "Moderator"}
	c := cmd.Apply(gated, WithRoleGate())

	err := c.Run(context.Background(), invocation("Member"))
	assert.ErrorIs(t, err, core.ErrPermissionDenied)
	assert.Equal(t, 0, gated.runs, "denied command must not run")

	require.NoError(t, c.Run(context.Background(), invocation("Member", "Moderator")))
	assert.Equal(t, 1, gated.runs)

	err = c.Run(context.Background(), &cmd.Invocation{Name: "create"})
	assert.ErrorIs(t, err, core.ErrPermissionDenied, "no request means no member")
}

func TestWithRoleGate_UngatedPassesThrough(t *testing.T) {
	open := &stubCommand{name: "dog"}
	c := cmd.Apply(open, WithRoleGate())

	assert.Same(t, cmd.Command(open), c)
	require.NoError(t, c.Run(context.Background(), invocation()))
	assert.Equal(t, 1, open.runs)
}

func TestWithCommandLogger(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	log := zap.New(obs).Sugar()

	ok := cmd.Apply(&stubCommand{name: "cat"}, WithCommandLogger(log, m))
	failing := cmd.Apply(&stubCommand{name: "dog", err: errors.New("api down")}, WithCommandLogger(log, m))
	gated := cmd.Apply(&stubCommand{name: "create", role: "Moderator"}, WithRoleGate(), WithCommandLogger(log, m))

	require.NoError(t, ok.Run(context.Background(), invocation()))
	assert.Error(t, failing.Run(context.Background(), invocation()))
	assert.Error(t, gated.Run(context.Background(), invocation()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("cat", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("dog", metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("create", metrics.OutcomeDenied)))

	require.Equal(t, 3, logs.Len())
	first := logs.All()[0].ContextMap()
	assert.Equal(t, "cat", first["command"])
	assert.Equal(t, "bob", first["user"])
	assert.Equal(t, "g1", first["guild_id"])
}
