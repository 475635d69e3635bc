package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"learnwords/internal/adapter"
	"learnwords/internal/logger"
	"learnwords/internal/store"
	"learnwords/internal/validators"
	"learnwords/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	log       *logger.Logger

	mu   sync.Mutex
	view ViewState
}

// NewClientAuthService wires the authorization state machine to the session
// store and server adapter. The machine starts in LoggedOut; call Restore
// to pick up a persisted session.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		log:       log,
		view:      LoggedOut(),
	}
}

func (a *clientAuthService) Restore(ctx context.Context) (ViewState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, err := a.sessions.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			return a.view, fmt.Errorf("restore session: %w", err)
		}
		a.view = LoggedOut()
		return a.view, nil
	}

	// просроченный или нечитаемый токен равнозначен отсутствию сессии
	expired, err := models.TokenExpired(session.Token)
	if err != nil || expired {
		a.log.Info().Err(err).Msg("persisted session token is expired or invalid, logging out")
		if err = a.sessions.ClearSession(ctx); err != nil {
			return a.view, fmt.Errorf("clear stale session: %w", err)
		}
		a.view = LoggedOut()
		return a.view, nil
	}

	name := session.Name
	if name == "" {
		if name, err = a.sessions.UserName(ctx); err != nil {
			return a.view, fmt.Errorf("read cached user name: %w", err)
		}
	}

	a.view = LoggedIn(name)
	return a.view, nil
}

func (a *clientAuthService) Current() ViewState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *clientAuthService) OpenPanel() ViewState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.view = a.view.OpenPanel()
	return a.view
}

func (a *clientAuthService) SwitchForm(form Form) ViewState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.view = a.view.SwitchForm(form)
	return a.view
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (ViewState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.signIn(ctx, email, password)
}

// signIn is the locked core shared by SignIn and CreateAccount.
func (a *clientAuthService) signIn(ctx context.Context, email, password string) (ViewState, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		// пустые поля: действие прерывается без сетевого вызова
		return a.view, err
	}

	session, err := a.adapter.SignIn(ctx, creds)
	if err != nil {
		return a.view, fmt.Errorf("%w: %v", ErrSignInOnServer, err)
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return a.view, fmt.Errorf("persist session: %w", err)
	}

	a.view = LoggedIn(session.Name)
	a.log.Info().Str("user_id", session.UserID).Msg("signed in")
	return a.view, nil
}

func (a *clientAuthService) CreateAccount(ctx context.Context, name, email, password string) (ViewState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user := models.User{Name: name, Email: email, Password: password}
	if err := a.validator.Validate(ctx, user); err != nil {
		return a.view, err
	}

	if _, err := a.adapter.CreateUser(ctx, user); err != nil {
		return a.view, fmt.Errorf("%w: %v", ErrCreateAccountOnServer, err)
	}

	// создание аккаунта само по себе не открывает сессию
	return a.signIn(ctx, email, password)
}

func (a *clientAuthService) LogOut(ctx context.Context) (ViewState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.view.State != StateLoggedIn {
		return a.view, nil
	}

	if err := a.sessions.ClearSession(ctx); err != nil {
		return a.view, fmt.Errorf("clear session: %w", err)
	}

	a.view = LoggedOut()
	a.log.Info().Msg("logged out")
	return a.view, nil
}
