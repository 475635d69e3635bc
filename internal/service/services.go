package service

import (
	"learnwords/internal/adapter"
	"learnwords/internal/logger"
	"learnwords/internal/store"
	"learnwords/internal/validators"
)

// ClientServices groups all client-side services into a single value that
// can be passed around the application runtime.
type ClientServices struct {
	AuthService      ClientAuthService
	WordStatsService WordStatsService
	StatsJob         StatsRefreshJob
}

// NewClientServices wires the service layer over the session store and
// server adapter.
func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	credentialsValidator := validators.NewCredentialsValidator()
	authSvc := NewClientAuthService(sessions, serverAdapter, credentialsValidator, log)
	statsSvc := NewWordStatsService(sessions, serverAdapter, log)

	return &ClientServices{
		AuthService:      authSvc,
		WordStatsService: statsSvc,
		StatsJob:         NewStatsRefreshJob(statsSvc),
	}
}
