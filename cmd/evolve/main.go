package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/aty13/evolve/internal/adapter"
	"github.com/aty13/evolve/internal/config"
	"github.com/aty13/evolve/internal/logging"
	"github.com/aty13/evolve/internal/server"
	"github.com/aty13/evolve/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of a real LLM provider")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	if err := run(*configPath, *useMock, *port); err != nil {
		fmt.Fprintf(os.Stderr, "evolve: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, useMock bool, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}
	if useMock {
		cfg.Provider = config.ProviderMock
	}

	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	client := buildClient(cfg)
	if !client.Available() {
		logger.Warn("provider has no API key; requests will fail until one is configured", "provider", client.Name())
	}

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		return err
	}

	handler := server.SetupMux(client, assets, server.Options{
		APIKey:          cfg.APIKey,
		UpstreamTimeout: cfg.UpstreamTimeout,
		Logger:          logger,
	})

	if cfg.APIKey != "" {
		logger.Info("auth: API key required (X-API-Key header)")
	} else {
		logger.Info("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("evolve listening", "addr", addr, "provider", client.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func buildClient(cfg config.Config) adapter.CompletionClient {
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	switch cfg.Provider {
	case config.ProviderMock:
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}
	case config.ProviderClaude:
		return &adapter.ClaudeAdapter{
			APIKey: cfg.ClaudeAPIKey,
			Model:  cfg.ClaudeModel,
			Client: httpClient,
		}
	default:
		return adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, httpClient)
	}
}
