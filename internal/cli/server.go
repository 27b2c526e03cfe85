package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ontap-quiz-service/internal/app"
	"ontap-quiz-service/internal/config"
	"ontap-quiz-service/internal/infra/memory"
	pginfra "ontap-quiz-service/internal/infra/postgres"
	redisinfra "ontap-quiz-service/internal/infra/redis"
	"ontap-quiz-service/internal/logging"
	transport "ontap-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg)
	defer func() { _ = log.Sync() }()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 15*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var bankLoader memory.BankLoader = memory.NewStaticBankLoader(nil)
	if pool != nil {
		bankLoader = pginfra.NewBankLoader(pool)
	}

	bankTTL := config.TTLDuration(cfg.Quiz.BankTTL, 10*time.Minute)
	var banks app.BankRepository
	if redisClient != nil {
		banks = redisinfra.NewBankRepository(redisClient, defaultBank(), bankLoader, bankTTL)
	} else {
		banks = memory.NewBankRepository(defaultBank(), bankLoader, bankTTL)
	}

	attemptTTL := config.TTLDuration(cfg.Quiz.AttemptTTL, 48*time.Hour)
	var quotas app.AttemptStore
	if redisClient != nil {
		quotas = redisinfra.NewAttemptStore(redisClient, attemptTTL)
	} else {
		quotas = memory.NewAttemptStore()
	}

	var results app.ResultStore
	switch {
	case pool != nil:
		results = pginfra.NewResultStore(pool)
	case redisClient != nil:
		results = redisinfra.NewResultStore(redisClient)
	default:
		results = memory.NewResultStore()
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, redisTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	opts := []app.Option{
		app.WithDuration(config.TTLDuration(cfg.Quiz.Duration, 10*time.Minute)),
	}
	if cfg.Quiz.MaxAttempts > 0 {
		opts = append(opts, app.WithMaxAttempts(cfg.Quiz.MaxAttempts))
	}
	if cfg.Quiz.MaxQuestions > 0 {
		opts = append(opts, app.WithMaxQuestions(cfg.Quiz.MaxQuestions))
	}
	service := app.NewExamService(banks, quotas, results, sessions, log, opts...)

	wsHandler := transport.NewWSHandler(service, log)
	recordsHandler := transport.NewRecordsHandler(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/leaderboard", recordsHandler.Leaderboard)
	mux.HandleFunc("/history", recordsHandler.History)
	mux.HandleFunc("/attempts", recordsHandler.Attempts)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting quiz service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
