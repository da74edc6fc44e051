package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, CtxDone(ctx))

	cancel()
	assert.ErrorIs(t, CtxDone(ctx), context.Canceled)
}

func TestConst(t *testing.T) {
	t.Parallel()

	p := Const(5 * time.Second)
	assert.Equal(t, 5*time.Second, p(context.Background()))
}

func TestOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Worker", Or("", "Worker"))
	assert.Equal(t, "Node", Or("Node", "Worker"))
	assert.Equal(t, 2, Or(0, 2))
	assert.Equal(t, time.Minute, Or(time.Minute, time.Hour))
}
