package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"learnwords/internal/adapter"
	"learnwords/internal/client"
	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/internal/service"
	"learnwords/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("learnwords-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions, err := store.NewSessionStorage(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session storage")
	}

	services := service.NewClientServices(sessions, serverAdapter, log)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	// навигация приходит строками со stdin: "#/text-book?x=1" или "/games"
	go feedNavigation(app, log)

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// feedNavigation reads hashes from stdin and submits them to the app until
// EOF, then closes the navigation loop.
func feedNavigation(app *client.App, log *logger.Logger) {
	defer app.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		hash := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "#")
		app.Navigate(hash)

		// рендер асинхронный, даём странице дорисоваться перед выводом
		time.Sleep(50 * time.Millisecond)
		fmt.Println(app.CurrentPage())
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("read navigation input")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
