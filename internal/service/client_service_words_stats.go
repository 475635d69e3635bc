package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnwords/internal/adapter"
	"learnwords/internal/logger"
	"learnwords/internal/store"
	"learnwords/models"
)

// dateLayout is the yyyy-mm-dd day format used by dateAdded/dateLearned.
const dateLayout = "2006-01-02"

type wordStatsService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	log      *logger.Logger

	now func() time.Time
}

// NewWordStatsService builds the [WordStatsService] over the session store
// and server adapter.
func NewWordStatsService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) WordStatsService {
	return &wordStatsService{
		sessions: sessions,
		adapter:  serverAdapter,
		log:      log,
		now:      time.Now,
	}
}

// auth reads credentials from the persisted session before each call.
// A missing session yields empty credentials on purpose: the request still
// goes out and the server answers 401, which the read paths degrade on.
func (s *wordStatsService) auth(ctx context.Context) models.Auth {
	session, err := s.sessions.RestoreSession(ctx)
	if err != nil {
		return models.Auth{}
	}
	return session.Auth()
}

func (s *wordStatsService) today() string {
	return s.now().Format(dateLayout)
}

func (s *wordStatsService) GetWordEntry(ctx context.Context, wordID string) (*models.UserWord, error) {
	word, err := s.adapter.GetUserWord(ctx, s.auth(ctx), wordID)
	if err != nil {
		if adapter.IsHTTPStatus(err) {
			// 404 означает "слова ещё нет в списке", остальные статусы
			// деградируют так же
			return nil, nil
		}
		return nil, err
	}
	return &word, nil
}

func (s *wordStatsService) UpsertAnswerStreak(ctx context.Context, word models.UserWord) (models.UserWord, error) {
	wordID := word.WordID
	if wordID == "" {
		wordID = word.ID
	}

	updated, err := s.adapter.UpdateUserWord(ctx, s.auth(ctx), wordID, word.Update())
	if err != nil {
		return models.UserWord{}, fmt.Errorf("update word entry: %w", err)
	}
	return updated, nil
}

func (s *wordStatsService) AddWordToList(ctx context.Context, wordID string, initialStreak int) (models.UserWord, error) {
	upd := models.UserWordUpdate{
		Difficulty: models.DifficultyWeak,
		Optional: models.WordOptional{
			CountRightAnswersInRow: initialStreak,
			IsLearned:              false,
			DateAdded:              s.today(),
		},
	}

	created, err := s.adapter.CreateUserWord(ctx, s.auth(ctx), wordID, upd)
	if err != nil {
		return models.UserWord{}, fmt.Errorf("create word entry: %w", err)
	}
	return created, nil
}

func (s *wordStatsService) GetOrCreateUserStats(ctx context.Context) (models.UserStats, error) {
	auth := s.auth(ctx)

	stats, err := s.adapter.GetStatistics(ctx, auth)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return models.UserStats{}, fmt.Errorf("get statistics: %w", err)
	}

	// первый доступ: создаём нулевую статистику и перечитываем ровно один раз
	if err = s.adapter.PutStatistics(ctx, auth, models.NewUserStats()); err != nil {
		return models.UserStats{}, fmt.Errorf("create statistics: %w", err)
	}

	stats, err = s.adapter.GetStatistics(ctx, auth)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("%w: %v", ErrStatsUnavailable, err)
	}
	return stats, nil
}

func (s *wordStatsService) SetUserStats(ctx context.Context, stats models.UserStats) error {
	if err := s.adapter.PutStatistics(ctx, s.auth(ctx), stats); err != nil {
		return fmt.Errorf("put statistics: %w", err)
	}
	return nil
}

func (s *wordStatsService) CountWordsLearnedToday(ctx context.Context) (int, error) {
	query := adapter.AggregatedQuery{
		Page:         1,
		WordsPerPage: 1,
		Filter: adapter.And(
			adapter.Where(adapter.FieldDateLearned, s.today()).
				Where(adapter.FieldIsLearned, true),
		),
	}

	pages, err := s.adapter.GetAggregatedWords(ctx, s.auth(ctx), query)
	if err != nil {
		if adapter.IsHTTPStatus(err) {
			return 0, nil
		}
		return 0, err
	}

	if len(pages) == 0 || len(pages[0].TotalCount) == 0 {
		return 0, nil
	}
	return pages[0].TotalCount[0].Count, nil
}

func (s *wordStatsService) AllLearnedWords(ctx context.Context) ([]models.UserWord, error) {
	query := adapter.AggregatedQuery{
		Page:         1,
		WordsPerPage: 1,
		Filter:       adapter.Where(adapter.FieldIsLearned, true),
	}

	pages, err := s.adapter.GetAggregatedWords(ctx, s.auth(ctx), query)
	if err != nil {
		if adapter.IsHTTPStatus(err) {
			return []models.UserWord{}, nil
		}
		return nil, err
	}

	learned := make([]models.UserWord, 0)
	for _, page := range pages {
		for _, aggregated := range page.PaginatedResults {
			if aggregated.UserWord == nil {
				continue
			}
			word := *aggregated.UserWord
			if word.WordID == "" {
				word.WordID = aggregated.ID
			}
			learned = append(learned, word)
		}
	}
	return learned, nil
}

func (s *wordStatsService) ListUserWords(ctx context.Context) ([]models.UserWord, error) {
	words, err := s.adapter.ListUserWords(ctx, s.auth(ctx))
	if err != nil {
		if adapter.IsHTTPStatus(err) {
			return []models.UserWord{}, nil
		}
		return nil, err
	}
	return words, nil
}
