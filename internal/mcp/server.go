package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

// AccountService defines account operations needed by MCP.
type AccountService interface {
	Dataset(ctx context.Context) (account.Dataset, error)
	List(ctx context.Context) ([]account.Summary, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Create(ctx context.Context, browserID string, req activity.CreateRequest) (*activity.Item, error)
	MarkDone(ctx context.Context, browserID, id, outcome string) (*activity.Item, error)
	List(ctx context.Context, browserID string, opts activity.ListActivityOptions) ([]activity.Item, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Accounts   AccountService
	Activities ActivityService
}

// DefaultBrowser owns activities created by MCP clients that don't name a browser.
const DefaultBrowser = "mcp"

// Config contains server configuration.
type Config struct {
	Services  Services
	Formatter pipeline.Formatter
	// BrowserID overrides DefaultBrowser.
	BrowserID string
	Version   string
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.BrowserID == "" {
		cfg.BrowserID = DefaultBrowser
	}
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "wirecrm",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(browserMiddleware(cfg.BrowserID))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, cfg.Formatter)

	return server
}
