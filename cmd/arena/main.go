package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/parley-go/parley/internal/arena"
	"github.com/parley-go/parley/internal/dice"
	"github.com/parley-go/parley/pkg/events"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded .env file")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		seed        int64
		fights      int
		maxRounds   int
		metricsAddr string
		logLevel    string
	)

	root := &cobra.Command{
		Use:           "arena",
		Short:         "Run simulated fights and watch them through typed event observers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

			cfg, err := arena.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over config file and environment
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("fights") {
				cfg.Fights = fights
			}
			if cmd.Flags().Changed("max-rounds") {
				cfg.MaxRounds = maxRounds
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), logger, cfg, metricsAddr)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "Config file (.yaml, .json or .toml)")
	root.Flags().Int64Var(&seed, "seed", 0, "Dice seed")
	root.Flags().IntVar(&fights, "fights", 0, "Number of fights to run")
	root.Flags().IntVar(&maxRounds, "max-rounds", 0, "Round limit per fight")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level: trace|debug|info|warn|error")

	return root
}

func run(ctx context.Context, logger zerolog.Logger, cfg arena.Config, metricsAddr string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	manager := events.NewManagerWithConfig(&events.ManagerConfig{
		Logger: logger,
	})

	board := arena.NewScoreboard()
	manager.Subscribe(board)
	manager.Subscribe(arena.NewChronicle(logger))
	manager.Subscribe(arena.MetricsObserver{})

	engine, err := arena.NewEngine(&arena.EngineConfig{
		Manager:   manager,
		Roller:    dice.NewRandomRoller(cfg.Seed),
		MaxRounds: cfg.MaxRounds,
	})
	if err != nil {
		return err
	}

	var srv *http.Server
	if metricsAddr != "" {
		srv = newMetricsServer(metricsAddr)
		go func() {
			logger.Info().Str("addr", metricsAddr).Msg("metrics server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	red, err := cfg.Red.Fighter()
	if err != nil {
		return err
	}
	blue, err := cfg.Blue.Fighter()
	if err != nil {
		return err
	}

	logger.Info().
		Str("red", red.Name).
		Str("blue", blue.Name).
		Int("fights", cfg.Fights).
		Int64("seed", cfg.Seed).
		Msg("arena opening")

	results, err := engine.RunAll(ctx, red, blue, cfg.Fights)
	if err != nil {
		return err
	}

	fmt.Printf("Ran %d fights:\n", len(results))
	for _, line := range board.Lines() {
		fmt.Println("  " + line)
	}

	if srv != nil {
		// Leave the scrape endpoint up until the operator stops us
		fmt.Println("Metrics are being served. Press CTRL-C to exit.")
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
	return nil
}

// newMetricsServer serves the Prometheus scrape endpoint and a health probe
func newMetricsServer(addr string) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return &http.Server{Addr: addr, Handler: r}
}
