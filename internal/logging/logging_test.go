package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	log, err := New(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = New(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

type sliceEncoder struct {
	zapcore.PrimitiveArrayEncoder
	out []string
}

func (s *sliceEncoder) AppendString(v string) { s.out = append(s.out, v) }

func TestTimeEncoder_Fallback(t *testing.T) {
	enc := &sliceEncoder{}
	ts := time.Date(2026, 1, 2, 13, 4, 5, 6_000_000, time.UTC)
	timeEncoder(ts, enc)
	assert.Equal(t, []string{"13:04:05.006"}, enc.out)
}
