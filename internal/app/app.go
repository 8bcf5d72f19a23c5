package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/NurM0hammad/FoxMind-AI/internal/api"
	"github.com/NurM0hammad/FoxMind-AI/internal/catalog"
	"github.com/NurM0hammad/FoxMind-AI/internal/config"
	"github.com/NurM0hammad/FoxMind-AI/internal/llm"
	"github.com/NurM0hammad/FoxMind-AI/internal/service"
	"github.com/NurM0hammad/FoxMind-AI/internal/store"
)

// App bundles the wired components of a running server.
type App struct {
	Config *config.Config
	Store  *store.Store
	Server *http.Server
}

// NewApp wires the application: upstream client, model catalog,
// conversation store, orchestrator, HTTP surface.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}
	if provider.Configured() {
		slog.Info("Gemini API configured successfully.")
	} else {
		slog.Warn("No Gemini API key found. Chat endpoints will report the API as unconfigured.")
	}

	cat := catalog.Build(ctx, provider)
	slog.Info("Model catalog ready", "models", cat.Names(), "default", cat.Default())

	st, err := store.New(cfg.ConversationsDir)
	if err != nil {
		return nil, err
	}
	if err := st.LoadAll(); err != nil {
		return nil, err
	}

	chatService := service.NewChatService(st, provider, cat)
	sessionManager := api.NewSessionManager(secretKey(cfg))
	chatHandler := api.NewChatHandler(chatService, cat, sessionManager)
	router := api.NewRouter(chatHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, Store: st, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel, cfg.Debug)
	logConfigSource()

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}

	slog.Info("Starting server", "port", cfg.AppPort, "conversations_dir", cfg.ConversationsDir)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string, debug bool) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// secretKey returns the configured session-signing key, or an ephemeral
// random one when none is set. Ephemeral keys invalidate all session
// cookies on restart.
func secretKey(cfg *config.Config) []byte {
	if cfg.SecretKey != "" {
		return []byte(cfg.SecretKey)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		slog.Error("Failed to generate session key", "error", err)
	}
	slog.Warn("SECRET_KEY not set. Using an ephemeral session key; sessions reset on restart.")
	return key
}
