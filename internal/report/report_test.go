package report

import (
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyDSNIsLocalOnly(t *testing.T) {
	r, err := New("", "dev")
	require.NoError(t, err)
	assert.False(t, r.Enabled())

	id := r.Capture(errors.New("boom"), Incident{Command: "dog"})
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	r.Flush(time.Millisecond)
}

func TestReporter_NilIsSafe(t *testing.T) {
	var r *Reporter
	assert.False(t, r.Enabled())
	assert.NotEmpty(t, r.Capture(errors.New("boom"), Incident{}))
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New("not a dsn", "dev")
	assert.Error(t, err)
}
