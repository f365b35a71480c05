package mcp

import (
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewToolResultInvalidArgumentError creates a tool result for an argument
// the schema accepted but the handler could not act on.
func NewToolResultInvalidArgumentError(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("invalid argument: %s", message))
}

// NewToolResultZogIssueMap creates a tool result from schema validation
// issues, one line per failed argument.
func NewToolResultZogIssueMap(issues z.ZogIssueMap) *mcp.CallToolResult {
	sanitized := z.Issues.SanitizeMap(issues)
	var sb strings.Builder
	sb.WriteString("invalid arguments:\n")
	for field, messages := range sanitized {
		if field == "$root" {
			continue
		}
		for _, message := range messages {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", field, message))
		}
	}
	return mcp.NewToolResultError(sb.String())
}
