package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("hooks run when run returns nil", func(t *testing.T) {
		app := New()
		hookCalled := false
		app.AddShutdownHook("database", func(ctx context.Context) error {
			hookCalled = true
			return nil
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := New()
		hookCalled := false
		app.AddShutdownHook("database", func(ctx context.Context) error {
			hookCalled = true
			return nil
		})

		want := errors.New("listen tcp :8080: address already in use")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
		assert.True(t, hookCalled)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := New()
		var mu sync.Mutex
		var order []string

		for _, name := range []string{"database", "api client", "http server"} {
			app.AddShutdownHook(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"http server", "api client", "database"}, order)
	})

	t.Run("hook registered from inside run callback", func(t *testing.T) {
		app := New()
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("http server", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("failed hooks are named and do not stop later hooks", func(t *testing.T) {
		app := New()
		databaseClosed := false
		app.AddShutdownHook("database", func(ctx context.Context) error {
			databaseClosed = true
			return nil
		})
		app.AddShutdownHook("http server", func(ctx context.Context) error {
			return errors.New("close failed")
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.EqualError(t, err, "http server: close failed")
		assert.True(t, databaseClosed)
	})

	t.Run("shutdown timeout bounds the hook context", func(t *testing.T) {
		app := New(WithShutdownTimeout(time.Minute))
		var hasDeadline bool
		app.AddShutdownHook("http server", func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		})

		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		}))
		assert.True(t, hasDeadline)
	})
}
