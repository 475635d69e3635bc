package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/internal/service"
	"learnwords/models"
)

func TestApp_RunRendersHomeThenNavigates(t *testing.T) {
	services := newTestServices(
		&fakeAuth{view: service.LoggedIn("Alice")},
		&fakeWords{words: []models.UserWord{{WordID: "w-1", Difficulty: models.DifficultyWeak}}},
		&fakeJob{learnedToday: 2},
	)
	app, err := NewApp(services, config.ClientWorkers{StatsRefreshInterval: time.Hour}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return app.CurrentPage() != ""
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, app.CurrentPage(), `class="home"`)

	app.Navigate("/text-book")
	app.Close()
	require.NoError(t, <-done)

	assert.Contains(t, app.CurrentPage(), `class="text-book"`)
	assert.Contains(t, app.CurrentPage(), "w-1")
}

func TestApp_UnknownHashRendersNotFound(t *testing.T) {
	services := newTestServices(&fakeAuth{view: service.LoggedOut()}, &fakeWords{}, &fakeJob{})
	app, err := NewApp(services, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()

	app.Navigate("/no-such-page")
	app.Close()
	require.NoError(t, <-done)

	assert.Contains(t, app.CurrentPage(), "Page not found")
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	services := newTestServices(&fakeAuth{view: service.LoggedOut()}, &fakeWords{}, &fakeJob{})
	app, err := NewApp(services, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
