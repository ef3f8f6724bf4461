package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"childscreen-service/internal/app"
	"childscreen-service/internal/config"
	"childscreen-service/internal/credential"
	"childscreen-service/internal/infra/memory"
	infrapg "childscreen-service/internal/infra/postgres"
	infraredis "childscreen-service/internal/infra/redis"
	transport "childscreen-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the assessment server",
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

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
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

	// The usage log is the only persisted state. Prefer Postgres, then
	// Redis, then a process-local map for storage-less runs.
	var usageStore app.UsageStore = memory.NewUsageStore()
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		usageStore = infrapg.NewUsageStore(pool)
	case cfg.Redis.Addr != "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		usageStore = infraredis.NewUsageStore(client)
	default:
		log.Printf("no persistent store configured, card cooldowns reset on restart")
	}

	cooldown := config.Duration(cfg.Auth.Cooldown, app.DefaultCooldown)
	auth := app.NewAuthService(credential.BuildRegistry(), usageStore, cooldown)
	assessments := app.NewAssessmentService()

	handler := transport.NewHandler(auth, assessments, []byte(cfg.Auth.JWTSecret))
	wsHandler := transport.NewWSHandler(auth, assessments)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler.Register(mux)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("starting assessment service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		select {
		case <-stop:
			log.Println("shutting down server...")
		case <-groupCtx.Done():
			log.Println("context canceled, shutting down server...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
