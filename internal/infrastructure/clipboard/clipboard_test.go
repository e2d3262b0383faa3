package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAdapter(store *string, failWith error) *Adapter {
	return &Adapter{
		write: func(s string) error {
			if failWith != nil {
				return failWith
			}
			*store = s
			return nil
		},
		read: func() (string, error) {
			if failWith != nil {
				return "", failWith
			}
			return *store, nil
		},
	}
}

func TestAdapter_WriteRead(t *testing.T) {
	var store string
	a := fakeAdapter(&store, nil)

	require.NoError(t, a.WriteText(context.Background(), "https://a.com/?x=1"))
	got, err := a.ReadText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://a.com/?x=1", got)
}

func TestAdapter_BackendError(t *testing.T) {
	var store string
	backendErr := errors.New("exit status 1")
	a := fakeAdapter(&store, backendErr)

	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), backendErr)
	_, err := a.ReadText(context.Background())
	assert.ErrorIs(t, err, backendErr)
}

func TestAdapter_Unsupported(t *testing.T) {
	var store string
	a := fakeAdapter(&store, nil)
	a.unsupported = true

	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), ErrUnavailable)
	_, err := a.ReadText(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, store)
}

func TestAdapter_CancelledContext(t *testing.T) {
	var store string
	a := fakeAdapter(&store, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.WriteText(ctx, "x"), context.Canceled)
	assert.Empty(t, store)
}
