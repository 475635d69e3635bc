package client

import (
	"context"
	"fmt"
	"html"
	"strings"

	"learnwords/internal/router"
	"learnwords/internal/service"
	"learnwords/models"
)

// Navigation paths registered in the route table.
const (
	RouteHome     = "/"
	RouteTextBook = "/text-book"
	RouteGames    = "/games"
	RouteWinners  = "/winners"
)

// pages holds the render functions behind the route table. Each renderer
// returns an HTML fragment for the page container; reads go through the
// service layer, which degrades missing remote data to empty values.
type pages struct {
	auth  service.ClientAuthService
	words service.WordStatsService
	stats service.StatsRefreshJob
}

func newPages(services *service.ClientServices) *pages {
	return &pages{
		auth:  services.AuthService,
		words: services.WordStatsService,
		stats: services.StatsJob,
	}
}

func (p *pages) routes() map[string]router.RenderFunc {
	return map[string]router.RenderFunc{
		RouteHome:     p.home,
		RouteTextBook: p.textBook,
		RouteGames:    p.games,
		RouteWinners:  p.winners,
	}
}

func (p *pages) notFound(context.Context, map[string]string) (string, error) {
	return `<main class="not-found"><h1>404</h1><p>Page not found</p></main>`, nil
}

func (p *pages) home(context.Context, map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString(`<main class="home">`)
	b.WriteString(p.authHeader())
	fmt.Fprintf(&b, `<p class="learned-today">Learned today: %d</p>`, p.stats.LearnedToday())
	b.WriteString(`</main>`)
	return b.String(), nil
}

func (p *pages) textBook(ctx context.Context, _ map[string]string) (string, error) {
	words, err := p.words.ListUserWords(ctx)
	if err != nil {
		return "", fmt.Errorf("render text-book: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<main class="text-book">`)
	b.WriteString(p.authHeader())
	fmt.Fprintf(&b, `<p class="word-count">Words in list: %d</p><ul>`, len(words))
	for _, word := range words {
		fmt.Fprintf(&b, `<li class=%q>%s</li>`,
			html.EscapeString(word.Difficulty), html.EscapeString(word.WordID))
	}
	b.WriteString(`</ul></main>`)
	return b.String(), nil
}

func (p *pages) games(ctx context.Context, _ map[string]string) (string, error) {
	words, err := p.words.ListUserWords(ctx)
	if err != nil {
		return "", fmt.Errorf("render games: %w", err)
	}

	hard := 0
	for _, word := range words {
		if word.Difficulty == models.DifficultyHard {
			hard++
		}
	}

	var b strings.Builder
	b.WriteString(`<main class="games">`)
	b.WriteString(p.authHeader())
	fmt.Fprintf(&b, `<p class="hard-words">Hard words to practice: %d</p>`, hard)
	fmt.Fprintf(&b, `<p class="learned-today">Learned today: %d</p>`, p.stats.LearnedToday())
	b.WriteString(`</main>`)
	return b.String(), nil
}

func (p *pages) winners(ctx context.Context, _ map[string]string) (string, error) {
	stats, err := p.words.GetOrCreateUserStats(ctx)
	if err != nil {
		return "", fmt.Errorf("render winners: %w", err)
	}
	learned, err := p.words.AllLearnedWords(ctx)
	if err != nil {
		return "", fmt.Errorf("render winners: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<main class="winners">`)
	b.WriteString(p.authHeader())
	fmt.Fprintf(&b, `<p class="learned-total">Words learned: %d</p><ul>`, stats.LearnedWords)
	for _, word := range learned {
		fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(word.WordID))
	}
	b.WriteString(`</ul></main>`)
	return b.String(), nil
}

// authHeader renders the shared authorization block according to the current
// view state: a greeting with a logout control when logged in, otherwise the
// login affordance and, when the panel is open, one of the two forms.
func (p *pages) authHeader() string {
	view := p.auth.Current()

	if view.State == service.StateLoggedIn {
		return fmt.Sprintf(
			`<header><span class="user-name">%s</span><button class="logout">Log out</button></header>`,
			html.EscapeString(view.UserName))
	}

	if !view.PanelOpen {
		return `<header><button class="login">Sign in</button></header>`
	}

	if view.ActiveForm == service.FormCreateAccount {
		return `<header><form class="create-account">` +
			`<input name="name"/><input name="email"/><input name="password" type="password"/>` +
			`</form></header>`
	}
	return `<header><form class="sign-in">` +
		`<input name="email"/><input name="password" type="password"/>` +
		`</form></header>`
}
