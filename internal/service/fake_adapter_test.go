package service

import (
	"context"

	"learnwords/internal/adapter"
	"learnwords/models"
)

// fakeServerAdapter реализует adapter.ServerAdapter через функции-поля,
// которые тест задаёт по мере надобности
type fakeServerAdapter struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	signInFunc             func(ctx context.Context, creds models.Credentials) (models.Session, error)
	getUserWordFunc        func(ctx context.Context, auth models.Auth, wordID string) (models.UserWord, error)
	createUserWordFunc     func(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error)
	updateUserWordFunc     func(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error)
	listUserWordsFunc      func(ctx context.Context, auth models.Auth) ([]models.UserWord, error)
	getStatisticsFunc      func(ctx context.Context, auth models.Auth) (models.UserStats, error)
	putStatisticsFunc      func(ctx context.Context, auth models.Auth, stats models.UserStats) error
	getAggregatedWordsFunc func(ctx context.Context, auth models.Auth, query adapter.AggregatedQuery) ([]models.AggregatedWordsPage, error)

	createUserCalls int
	signInCalls     int
	getStatsCalls   int
	putStatsCalls   int
}

func (f *fakeServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	f.createUserCalls++
	return f.createUserFunc(ctx, user)
}

func (f *fakeServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	f.signInCalls++
	return f.signInFunc(ctx, creds)
}

func (f *fakeServerAdapter) GetUserWord(ctx context.Context, auth models.Auth, wordID string) (models.UserWord, error) {
	return f.getUserWordFunc(ctx, auth, wordID)
}

func (f *fakeServerAdapter) CreateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error) {
	return f.createUserWordFunc(ctx, auth, wordID, upd)
}

func (f *fakeServerAdapter) UpdateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error) {
	return f.updateUserWordFunc(ctx, auth, wordID, upd)
}

func (f *fakeServerAdapter) ListUserWords(ctx context.Context, auth models.Auth) ([]models.UserWord, error) {
	return f.listUserWordsFunc(ctx, auth)
}

func (f *fakeServerAdapter) GetStatistics(ctx context.Context, auth models.Auth) (models.UserStats, error) {
	f.getStatsCalls++
	return f.getStatisticsFunc(ctx, auth)
}

func (f *fakeServerAdapter) PutStatistics(ctx context.Context, auth models.Auth, stats models.UserStats) error {
	f.putStatsCalls++
	return f.putStatisticsFunc(ctx, auth, stats)
}

func (f *fakeServerAdapter) GetAggregatedWords(ctx context.Context, auth models.Auth, query adapter.AggregatedQuery) ([]models.AggregatedWordsPage, error) {
	return f.getAggregatedWordsFunc(ctx, auth, query)
}
