package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"heritage-server/internal/audit"
	"heritage-server/internal/enrich"
	"heritage-server/internal/http/handlers"
	"heritage-server/internal/http/httpapi"
	"heritage-server/internal/infra"
	"heritage-server/internal/infra/credentials"
	"heritage-server/internal/infra/geoip"
	"heritage-server/internal/lookup"
	"heritage-server/internal/providers/chat"
	"heritage-server/internal/providers/imagegen"
	"heritage-server/internal/providers/wiki"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// The database is optional: without it the service still answers
	// lookups and only loses audit history and stored credentials.
	var creds *credentials.Store
	var auditStore *audit.Store
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		runner := infra.NewSQLRunner(dbpool, logger)
		creds = credentials.NewStore(runner)

		geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn().Err(err).Msg("geoip database unavailable, audit rows will not carry a country")
		}
		auditStore = audit.NewStore(runner, geo, logger)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, running stateless without audit history")
	}

	chatClient, err := chat.NewClient(chat.Options{
		APIKey:  cfg.GatewayAPIKey,
		Model:   cfg.GatewayModel,
		BaseURL: cfg.GatewayBaseURL,
		KeyLookup: func(ctx context.Context) (string, error) {
			if creds != nil {
				return creds.GatewayAPIKey(ctx)
			}
			return "", errors.New("GATEWAY_API_KEY is not configured")
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build chat gateway client")
	}

	var imageGen *imagegen.Client
	if cfg.ImageGenAPIKey != "" {
		imageGen, err = imagegen.NewClient(imagegen.Options{
			APIKey:  cfg.ImageGenAPIKey,
			Model:   cfg.ImageGenModel,
			BaseURL: cfg.ImageGenBaseURL,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("image generation disabled")
		}
	}

	proxy := &lookup.Proxy{Chat: chatClient, Log: logger}
	enricher := &enrich.Enricher{
		Wiki: wiki.NewClient(wiki.Options{
			WikipediaBaseURL: cfg.WikipediaBaseURL,
			CommonsBaseURL:   cfg.CommonsBaseURL,
		}),
		ImageGen: imageGen,
		Log:      logger,
	}

	app := handlers.NewApp(proxy, enricher, auditStore, logger)
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
