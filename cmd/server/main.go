package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/wirecrm/internal/config"
	"github.com/rpggio/wirecrm/internal/demo"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/rpggio/wirecrm/internal/mcp"
	"github.com/rpggio/wirecrm/internal/sqlite"
	"github.com/rpggio/wirecrm/internal/toast"
	"github.com/rpggio/wirecrm/internal/web"
	"github.com/rpggio/wirecrm/internal/web/views"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.ModeStdio {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	provider, err := demo.Load(cfg.UI.DatasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.UI.DatasetPath, "error", err)
		os.Exit(1)
	}

	if missing := navigation.SelfCheck(views.RegisteredScreens); len(missing) > 0 {
		logger.Warn("required screens are not registered", "missing", missing)
	}

	services := web.Services{
		Accounts:   account.NewService(provider, logger),
		Navigation: navigation.NewService(sqlite.NewNavigationRepository(db), logger),
		Activities: activity.NewService(sqlite.NewActivityRepository(db), logger),
		Edits:      edit.NewService(sqlite.NewKVRepository(db), logger),
	}
	format := pipeline.NewFormatter(cfg.UI.Locale)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Accounts:   services.Accounts,
			Activities: services.Activities,
		},
		Formatter: format,
		Version:   version,
		Logger:    logger,
	})

	if cfg.Transport.Mode == config.ModeStdio {
		runStdioMode(logger, mcpServer)
		return
	}
	runHTTPMode(logger, cfg, services, format, mcpServer)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, cfg config.Config, services web.Services, format pipeline.Formatter, mcpServer *sdkmcp.Server) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := web.NewServer(web.Config{
		Services:  services,
		Formatter: format,
		MCP:       mcpHandler,
		Toasts: toast.Func(func(message string) {
			logger.Debug("toast", "message", message)
		}),
		Logger: logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "locale", cfg.UI.Locale)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
