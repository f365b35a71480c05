package tools

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointAddSlideArguments struct {
	Name   string `zog:"name"`
	Layout string `zog:"layout"`
}

var powerPointAddSlideArgumentsSchema = z.Struct(z.Shape{
	"name":   z.String().Required(),
	"layout": z.String(),
})

func AddPowerPointAddSlideTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_add_slide",
		mcp.WithDescription("Append a slide to a presentation. The presentation is created when it does not exist"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithString("layout",
			mcp.Description("Slide layout name (default: blank slide)"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointAddSlideArguments{}
		if issues := powerPointAddSlideArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return addSlide(ws, args.Name, args.Layout)
	}))
}

func addSlide(ws *powerpoint.Workspace, name string, layout string) (*mcp.CallToolResult, error) {
	deck, err := ws.Open(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	index, err := deck.AddSlide(layout)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("added slide %d to %s\n", index, name)
	return mcp.NewToolResultText(result), nil
}
