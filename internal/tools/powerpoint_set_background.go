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

type PowerPointSetBackgroundArguments struct {
	Name       string `zog:"name"`
	SlideIndex int    `zog:"slideIndex"`
	Color      string `zog:"color"`
}

var powerPointSetBackgroundArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"color":      z.String().Required(),
})

func AddPowerPointSetBackgroundTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_set_background",
		mcp.WithDescription("Set a solid background color on a slide"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Background color as RRGGBB hex"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointSetBackgroundArguments{}
		if issues := powerPointSetBackgroundArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return setBackground(ws, args.Name, args.SlideIndex, args.Color)
	}))
}

func setBackground(ws *powerpoint.Workspace, name string, slideIndex int, color string) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	if err := deck.SetBackground(slideIndex, color); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("set background of slide %d of %s to %s\n", slideIndex, name, color)
	return mcp.NewToolResultText(result), nil
}
