package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/lib/pq"

	"github.com/kundenwerk/regbot/internal/bot"
	"github.com/kundenwerk/regbot/internal/channel"
	"github.com/kundenwerk/regbot/internal/config"
	"github.com/kundenwerk/regbot/internal/customer"
	"github.com/kundenwerk/regbot/internal/dialog"
	"github.com/kundenwerk/regbot/internal/nlu"
	"github.com/kundenwerk/regbot/internal/session"
	"github.com/kundenwerk/regbot/internal/speech"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the registration bot HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// --- DB ---
	var db *sql.DB
	if !cfg.MemoryMode {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return fmt.Errorf("db ping: %w", err)
		}
	}

	// --- Stores ---
	var repo customer.Repository
	if cfg.MemoryMode {
		repo = customer.NewMemoryRepository()
	} else {
		repo = customer.NewPostgresRepository(db)
	}

	var store session.Store
	switch cfg.SessionBackend {
	case "memory":
		store = session.NewMemoryStore()
	case "redis":
		store = session.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.SessionTTL)
	case "postgres":
		store = session.NewPostgresStore(db)
	default:
		return fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	// --- Optional AI services ---
	var extractor nlu.Extractor
	var speechSvc speech.Service
	if cfg.OpenAIKey != "" {
		client := openai.NewClient(cfg.OpenAIKey)
		extractor = nlu.NewOpenAIExtractor(client, cfg.OpenAIModel, cfg.ExtractTimeout, logger.Named("nlu"))
		speechSvc = speech.NewOpenAIService(client, cfg.SpeechTimeout, logger.Named("speech"))
	}

	// --- Dialog wiring ---
	machine := dialog.NewMachine(repo, extractor, logger.Named("dialog"))
	locks := session.NewLocks()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	textSvc := bot.NewService(store, locks, machine, channel.NewTextPresenter(), logger.Named("webchat"))
	bot.RegisterRoutes(r, bot.NewHandler(textSvc, logger.Named("webchat")))

	if cfg.VoiceChannel {
		voice := channel.NewVoicePresenter(speechSvc, logger.Named("voice"))
		voiceSvc := bot.NewService(store, locks, machine, voice, logger.Named("voicecall"))
		bot.RegisterVoiceRoutes(r, bot.NewHandler(voiceSvc, logger.Named("voicecall")))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
