// SPDX-License-Identifier: Apache-2.0

// Package router maps navigation hash fragments to page-rendering functions.
//
// The route table is flat: a hash is normalized to its first path segment, so
// "/text-book/123" and "/text-book" resolve to the same route. Query
// parameters are parsed into a flat string map and handed to the renderer.
package router

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"learnwords/internal/logger"
)

// RenderFunc produces the HTML fragment of a page. The query map holds the
// parsed hash query parameters; it is never nil for table routes.
type RenderFunc func(ctx context.Context, query map[string]string) (string, error)

// ContentSink receives rendered fragments. The application runtime backs it
// with the single page-content container.
type ContentSink interface {
	SetContent(fragment string)
}

// Router resolves navigation hashes against a static route table and drives
// re-rendering on navigation events.
type Router struct {
	routes   map[string]RenderFunc
	notFound RenderFunc
	log      *logger.Logger

	// seq numbers dispatched navigations; a render whose sequence number
	// is no longer the latest is discarded instead of written to the sink.
	seq atomic.Int64
	mu  sync.Mutex
}

// New builds a router over the given normalized-path route table. notFound
// renders the fallback page for unknown paths and failed renders.
func New(routes map[string]RenderFunc, notFound RenderFunc, log *logger.Logger) *Router {
	return &Router{
		routes:   routes,
		notFound: notFound,
		log:      log,
	}
}

// Resolve renders the page addressed by rawHash (everything after "#").
//
// The hash is lowercased, split into path and query on the first "?", and the
// path is collapsed to its first segment before the table lookup. An unknown
// path renders the not-found page. A failing renderer propagates its error.
func (r *Router) Resolve(ctx context.Context, rawHash string) (string, error) {
	path, query, _ := strings.Cut(strings.ToLower(rawHash), "?")

	render, ok := r.routes[normalizePath(path)]
	if !ok {
		render = r.notFound
	}

	return render(ctx, parseQuery(query))
}

// Listen funnels the initial load and every subsequent navigation event
// through the same resolve-and-render path. It blocks until ctx is cancelled
// or the events channel is closed, waiting out in-flight renders either way.
//
// Renders run concurrently per event; the last-dispatched navigation wins and
// slower, earlier renders are dropped so they cannot overwrite a newer page.
func (r *Router) Listen(ctx context.Context, initialHash string, events <-chan string, sink ContentSink) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	r.dispatch(ctx, initialHash, sink, &wg)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case hash, ok := <-events:
			if !ok {
				return nil
			}
			r.dispatch(ctx, hash, sink, &wg)
		}
	}
}

func (r *Router) dispatch(ctx context.Context, rawHash string, sink ContentSink, wg *sync.WaitGroup) {
	seq := r.seq.Add(1)

	wg.Add(1)
	go func() {
		defer wg.Done()

		fragment, err := r.Resolve(ctx, rawHash)
		if err != nil {
			r.log.Error().Err(err).Str("hash", rawHash).Msg("render page")

			// упавший рендер заменяем страницей-заглушкой
			fragment, err = r.notFound(ctx, map[string]string{})
			if err != nil {
				r.log.Error().Err(err).Msg("render fallback page")
				return
			}
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		if seq != r.seq.Load() {
			// пока рендерили, пользователь ушёл на другую страницу
			return
		}
		sink.SetContent(fragment)
	}()
}

// normalizePath collapses a hash path to its first "/"-delimited segment.
// Deeper segments are discarded; an empty path maps to the root route "/".
func normalizePath(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if segment == "" {
		return "/"
	}
	return "/" + segment
}

// parseQuery splits a raw query string on "&" and each pair on the first
// "=". Values are percent-decoded; a value that fails to decode is kept raw.
func parseQuery(raw string) map[string]string {
	params := make(map[string]string)

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}

	return params
}
