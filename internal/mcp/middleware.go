package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const browserIDKey contextKey = iota

// BrowserHeader lets an HTTP client act on a web browser's activities.
const BrowserHeader = "Wirecrm-Browser"

// getBrowserID extracts the browser ID from context.
func getBrowserID(ctx context.Context) string {
	v, _ := ctx.Value(browserIDKey).(string)
	return v
}

// browserMiddleware injects the browser whose state the tools act on: the
// BrowserHeader value when sent over HTTP, otherwise defaultBrowser.
func browserMiddleware(defaultBrowser string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			browserID := defaultBrowser
			if extra := req.GetExtra(); extra != nil && extra.Header != nil {
				if v := strings.TrimSpace(extra.Header.Get(BrowserHeader)); v != "" {
					browserID = v
				}
			}
			ctx = context.WithValue(ctx, browserIDKey, browserID)
			return next(ctx, method, req)
		}
	}
}
