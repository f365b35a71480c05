package tools

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// WithRecovery wraps a tool handler with panic recovery so a single bad
// call cannot take down the server. The panic is logged with its stack
// and surfaced to the client as an error result.
func WithRecovery(handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithFields(logrus.Fields{
					"tool":  request.Params.Name,
					"panic": r,
				}).Error(string(debug.Stack()))
				err = fmt.Errorf("internal error: %v", r)
				result = nil
			}
		}()
		return handler(ctx, request)
	}
}
