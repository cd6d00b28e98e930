// Package testserver runs the full wirecrm stack on an httptest server.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
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
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Services web.Services
	// Toasts records every toast sent to any browser.
	Toasts *toast.Recorder
}

// New starts a server backed by a per-test shared-memory database and the
// embedded demo dataset.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	provider, err := demo.New()
	require.NoError(t, err)

	svc := web.Services{
		Accounts:   account.NewService(provider, nil),
		Navigation: navigation.NewService(sqlite.NewNavigationRepository(db), nil),
		Activities: activity.NewService(sqlite.NewActivityRepository(db), nil),
		Edits:      edit.NewService(sqlite.NewKVRepository(db), nil),
	}
	format := pipeline.NewFormatter("en-US")

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Accounts:   svc.Accounts,
			Activities: svc.Activities,
		},
		Formatter: format,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	toasts := &toast.Recorder{}
	server := httptest.NewServer(web.NewServer(web.Config{
		Services:  svc,
		Formatter: format,
		MCP:       mcpHandler,
		Toasts:    toasts,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db, Services: svc, Toasts: toasts}
}

// Browser returns an HTTP client with its own cookie jar, so each client is a
// separate browser to the server.
func (ts *TestServer) Browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// BrowserID returns the browser cookie value held by client, or "".
func (ts *TestServer) BrowserID(client *http.Client) string {
	req, err := http.NewRequest(http.MethodGet, ts.Server.URL, nil)
	if err != nil || client.Jar == nil {
		return ""
	}
	for _, c := range client.Jar.Cookies(req.URL) {
		if c.Name == web.BrowserCookie {
			return c.Value
		}
	}
	return ""
}

// ConnectMCP opens an MCP client session over streamable HTTP. A non-empty
// browserID is sent as the browser header on every request.
func (ts *TestServer) ConnectMCP(t *testing.T, browserID string) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := &http.Client{Transport: headerTransport{
		base:   http.DefaultTransport,
		header: mcp.BrowserHeader,
		value:  browserID,
	}}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

type headerTransport struct {
	base   http.RoundTripper
	header string
	value  string
}

func (h headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if h.value == "" {
		return h.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set(h.header, h.value)
	return h.base.RoundTrip(req)
}
