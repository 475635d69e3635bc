package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/models"
)

type httpServerAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewHTTPServerAdapter builds the resty-based [ServerAdapter] for the
// learnwords REST API. The base URL and default request timeout come from
// the adapter config; zero values fall back to the production endpoint and
// 15 seconds.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: cli, log: log}, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode create user response: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/signin")
	if err != nil {
		return models.Session{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode signin response: %w", err)
	}
	session.IsAuthorized = true
	return session, nil
}

func (h *httpServerAdapter) GetUserWord(ctx context.Context, auth models.Auth, wordID string) (models.UserWord, error) {
	resp, err := h.authedRequest(ctx, auth).
		Get(fmt.Sprintf("/users/%s/words/%s", auth.UserID, wordID))
	if err != nil {
		return models.UserWord{}, fmt.Errorf("get user word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserWord{}, err
	}

	var word models.UserWord
	if err = json.Unmarshal(resp.Body(), &word); err != nil {
		return models.UserWord{}, fmt.Errorf("decode user word response: %w", err)
	}
	return word, nil
}

func (h *httpServerAdapter) CreateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error) {
	resp, err := h.authedRequest(ctx, auth).
		SetHeader("Content-Type", "application/json").
		SetBody(upd).
		Post(fmt.Sprintf("/users/%s/words/%s", auth.UserID, wordID))
	if err != nil {
		return models.UserWord{}, fmt.Errorf("create user word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserWord{}, err
	}

	var word models.UserWord
	if err = json.Unmarshal(resp.Body(), &word); err != nil {
		return models.UserWord{}, fmt.Errorf("decode create user word response: %w", err)
	}
	return word, nil
}

func (h *httpServerAdapter) UpdateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error) {
	resp, err := h.authedRequest(ctx, auth).
		SetHeader("Content-Type", "application/json").
		SetBody(upd).
		Put(fmt.Sprintf("/users/%s/words/%s", auth.UserID, wordID))
	if err != nil {
		return models.UserWord{}, fmt.Errorf("update user word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserWord{}, err
	}

	var word models.UserWord
	if err = json.Unmarshal(resp.Body(), &word); err != nil {
		return models.UserWord{}, fmt.Errorf("decode update user word response: %w", err)
	}
	return word, nil
}

func (h *httpServerAdapter) ListUserWords(ctx context.Context, auth models.Auth) ([]models.UserWord, error) {
	resp, err := h.authedRequest(ctx, auth).
		Get(fmt.Sprintf("/users/%s/words", auth.UserID))
	if err != nil {
		return nil, fmt.Errorf("list user words request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var words []models.UserWord
	if err = json.Unmarshal(resp.Body(), &words); err != nil {
		return nil, fmt.Errorf("decode user words response: %w", err)
	}
	return words, nil
}

func (h *httpServerAdapter) GetStatistics(ctx context.Context, auth models.Auth) (models.UserStats, error) {
	resp, err := h.authedRequest(ctx, auth).
		Get(fmt.Sprintf("/users/%s/statistics", auth.UserID))
	if err != nil {
		return models.UserStats{}, fmt.Errorf("get statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserStats{}, err
	}

	var stats models.UserStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("decode statistics response: %w", err)
	}
	return stats, nil
}

func (h *httpServerAdapter) PutStatistics(ctx context.Context, auth models.Auth, stats models.UserStats) error {
	resp, err := h.authedRequest(ctx, auth).
		SetHeader("Content-Type", "application/json").
		SetBody(stats).
		Put(fmt.Sprintf("/users/%s/statistics", auth.UserID))
	if err != nil {
		return fmt.Errorf("put statistics request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetAggregatedWords(ctx context.Context, auth models.Auth, query AggregatedQuery) ([]models.AggregatedWordsPage, error) {
	req := h.authedRequest(ctx, auth).
		SetQueryParam("page", strconv.Itoa(query.Page)).
		SetQueryParam("wordsPerPage", strconv.Itoa(query.WordsPerPage))

	if !query.Filter.IsZero() {
		filter, err := query.Filter.Encode()
		if err != nil {
			return nil, err
		}
		req.SetQueryParam("filter", filter)
	}

	resp, err := req.Get(fmt.Sprintf("/users/%s/aggregatedWords", auth.UserID))
	if err != nil {
		return nil, fmt.Errorf("aggregated words request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pages []models.AggregatedWordsPage
	if err = json.Unmarshal(resp.Body(), &pages); err != nil {
		return nil, fmt.Errorf("decode aggregated words response: %w", err)
	}
	return pages, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, auth models.Auth) *resty.Request {
	req := h.request(ctx)
	if auth.Token != "" {
		req.SetHeader("Authorization", "Bearer "+auth.Token)
	}
	return req
}
