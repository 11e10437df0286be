package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/credentials"
	"server/internal/infra/geoip"
	"server/internal/providers/answer"
	"server/internal/youtube"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	var resolver geoip.CountryResolver
	if cfg.GeoIPDBPath != "" {
		resolver, err = geoip.NewResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip database unavailable, signup countries will be empty")
		}
	}

	fetcher := youtube.NewClient(youtube.ClientOptions{
		BaseURL:   cfg.TranscriptBaseURL,
		Languages: cfg.TranscriptLanguages,
	})

	answerer := buildAnswerProvider(ctx, cfg, credentials.NewStore(runner), logger)

	app := &handlers.App{
		Logger:      logger,
		JWTSecret:   cfg.JWTSecret,
		Accounts:    repo.NewAccountRepository(runner),
		Profiles:    repo.NewProfileRepository(runner),
		Transcripts: repo.NewTranscriptRepository(runner),
		Usage:       repo.NewUsageRepository(runner),
		Fetcher:     fetcher,
		Answerer:    answerer,
		GeoIP:       resolver,
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildAnswerProvider picks the configured chat backend. Environment keys win;
// the credentials store is the fallback so keys can be rotated without a
// redeploy. A missing key is not fatal: chat answers 503 until one is set.
func buildAnswerProvider(ctx context.Context, cfg *infra.Config, store *credentials.Store, logger zerolog.Logger) answer.Provider {
	lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch cfg.AnswerProvider {
	case "gemini":
		key := cfg.GeminiAPIKey
		if key == "" {
			stored, err := store.GeminiAPIKey(lookupCtx)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to load gemini api key from store")
			}
			key = stored
		}
		if key == "" {
			logger.Warn().Msg("no gemini api key configured, chat is disabled")
			return nil
		}
		provider, err := answer.NewGeminiProvider(answer.GeminiOptions{
			APIKey: key,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to configure gemini provider")
			return nil
		}
		return provider
	case "openai":
		key := cfg.OpenAIAPIKey
		if key == "" {
			stored, err := store.OpenAIAPIKey(lookupCtx)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to load openai api key from store")
			}
			key = stored
		}
		if key == "" {
			logger.Warn().Msg("no openai api key configured, chat is disabled")
			return nil
		}
		provider, err := answer.NewOpenAIProvider(answer.OpenAIOptions{
			APIKey:       key,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model normalized")
			},
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to configure openai provider")
			return nil
		}
		return provider
	default:
		logger.Warn().Str("provider", cfg.AnswerProvider).Msg("unknown answer provider, chat is disabled")
		return nil
	}
}
