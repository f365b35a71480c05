package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mz462/office-mcp/internal/powerpoint"
)

func AddPowerPointListPresentationsTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_list_presentations",
		mcp.WithDescription("List the pptx presentations in the workspace"),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listPresentations(ws)
	}))
}

func listPresentations(ws *powerpoint.Workspace) (*mcp.CallToolResult, error) {
	infos, err := ws.List()
	if err != nil {
		return nil, err
	}
	rendered, err := renderYAML(infos)
	if err != nil {
		return nil, err
	}
	result := "# Notice\n"
	result += fmt.Sprintf("found %d presentation(s)\n", len(infos))
	result += "# Presentations\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
