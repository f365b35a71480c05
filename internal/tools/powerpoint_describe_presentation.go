package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointDescribePresentationArguments struct {
	Name string `zog:"name"`
}

var powerPointDescribePresentationArgumentsSchema = z.Struct(z.Shape{
	"name": z.String().Required(),
})

func AddPowerPointDescribePresentationTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_describe_presentation",
		mcp.WithDescription("Describe a presentation: slide count, layouts, and the elements of every slide with their IDs"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointDescribePresentationArguments{}
		if issues := powerPointDescribePresentationArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return describePresentation(ws, args.Name)
	}))
}

func describePresentation(ws *powerpoint.Workspace, name string) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	summary := deck.Describe(name)
	// Describe assigns IDs to unlabeled elements; persist them so later
	// calls can address the same elements.
	if err := deck.Save(); err != nil {
		return nil, err
	}

	rendered, err := renderYAML(summary)
	if err != nil {
		return nil, err
	}
	result := "# Presentation\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
