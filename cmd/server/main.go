package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"das-foods/config"
	httpapi "das-foods/internal/api/http"
	"das-foods/internal/service"
	"das-foods/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogging(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accounts, err := service.SeedAccounts(bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed accounts")
	}

	sessions := storage.NewMemorySessionStore(accounts, cfg.SessionIdleTTL)
	catalog := storage.NewMemoryCatalog(service.SeedMenu())
	carts := storage.NewMemoryCartStore()

	var guard service.InFlightGuard = storage.NewMemoryGuard()
	var popularity service.PopularityStore
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = config.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr()).Msg("redis unavailable, using in-process suggestion guard and disabling analytics")
		} else {
			defer rdb.Close()
			guard = storage.NewRedisGuard(rdb)
			popularity = storage.NewRedisPopularity(rdb)
			log.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to redis")
		}
	} else {
		log.Warn().Msg("REDIS_HOST not set, popularity analytics disabled")
	}

	var publisher service.EventPublisher = storage.LogPublisher{}
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		if popularity != nil {
			reader := config.NewKafkaReader(cfg.Kafka)
			defer reader.Close()
			go service.NewConsumer(reader, popularity).Start(ctx)
		}
	} else {
		log.Warn().Msg("KAFKA_BROKER not set, events are only logged")
		if popularity != nil {
			publisher = service.NewPopularityRecorder(publisher, popularity)
		}
	}

	var generator service.SuggestionGenerator
	if cfg.Suggestion.APIKey != "" {
		client, err := storage.NewGeminiClient(ctx, cfg.Suggestion.APIKey)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create gemini client, meal suggestions disabled")
		} else {
			generator = storage.NewGeminiGenerator(client)
		}
	} else {
		log.Warn().Msg("API_KEY not set, meal suggestions disabled")
	}

	sessionSvc := service.NewSessionService(sessions, carts, cfg.SessionIdleTTL)
	if cfg.SessionIdleTTL > 0 {
		go sessionSvc.StartJanitor(ctx, min(cfg.SessionIdleTTL, 10*time.Minute))
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Sessions:     sessionSvc,
		Catalog:      service.NewCatalogService(catalog),
		Carts:        service.NewCartService(carts, catalog),
		Orders:       service.NewOrderService(storage.NewMemoryOrderBook(), carts, publisher, service.DefaultQRGenerator{}, cfg.PublicBaseURL),
		Reservations: service.NewReservationService(storage.NewMemoryReservationBook(), publisher, cfg.Reservations.MaxGuests),
		Feedback:     service.NewFeedbackService(storage.NewMemoryFeedbackLog()),
		Suggestions: service.NewSuggestionService(catalog, generator, guard, service.SuggestionSettings{
			APIKey:      cfg.Suggestion.APIKey,
			Model:       cfg.Suggestion.Model,
			Timeout:     cfg.Suggestion.Timeout,
			Temperature: cfg.Suggestion.Temperature,
			Currency:    cfg.Suggestion.Currency,
		}),
		Analytics: service.NewAnalyticsService(popularity, catalog),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("DAS Foods starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(level, format string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
