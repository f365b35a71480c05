package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mz462/office-mcp/internal/powerpoint"
)

func AddPowerPointListTemplatesTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_list_templates",
		mcp.WithDescription("List the pptx templates in the template directory with their metadata"),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return listTemplates(ws)
	}))
}

func listTemplates(ws *powerpoint.Workspace) (*mcp.CallToolResult, error) {
	templates, err := ws.ListTemplates()
	if err != nil {
		return nil, err
	}
	rendered, err := renderYAML(templates)
	if err != nil {
		return nil, err
	}
	result := "# Notice\n"
	result += fmt.Sprintf("found %d template(s)\n", len(templates))
	result += "# Templates\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
