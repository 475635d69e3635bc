package client

import (
	"context"
	"fmt"
	"sync"

	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/internal/router"
	"learnwords/internal/service"
)

// App is the client application runtime. It restores the persisted session,
// keeps the learned-today counter fresh in the background, and drives page
// rendering from navigation events.
type App struct {
	services  *service.ClientServices
	router    *router.Router
	container *PageContainer
	workers   config.ClientWorkers
	log       *logger.Logger

	events    chan string
	closeOnce sync.Once
}

func NewApp(services *service.ClientServices, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}

	p := newPages(services)

	return &App{
		services:  services,
		router:    router.New(p.routes(), p.notFound, log),
		container: NewPageContainer(),
		workers:   workers,
		log:       log,
		events:    make(chan string, 1),
	}, nil
}

// Run starts the client lifecycle and blocks until ctx is cancelled or
// [App.Close] is called. The initial load renders the home page; every
// navigation submitted via [App.Navigate] re-renders through the same path.
func (a *App) Run(ctx context.Context) error {
	view, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	a.log.Info().Str("state", view.State.String()).Msg("session restored")

	a.services.StatsJob.Start(ctx, a.workers.StatsRefreshInterval)
	defer a.services.StatsJob.Stop()

	return a.router.Listen(ctx, RouteHome, a.events, a.container)
}

// Navigate submits a navigation hash (everything after "#") to the
// navigation loop. It blocks until the loop accepts the event.
func (a *App) Navigate(hash string) {
	a.events <- hash
}

// Close ends the navigation loop after in-flight renders complete. Safe to
// call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		close(a.events)
	})
}

// CurrentPage returns the most recently rendered page fragment.
func (a *App) CurrentPage() string {
	return a.container.Content()
}
