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

type PowerPointDeleteSlideArguments struct {
	Name       string `zog:"name"`
	SlideIndex int    `zog:"slideIndex"`
}

var powerPointDeleteSlideArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
})

func AddPowerPointDeleteSlideTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_delete_slide",
		mcp.WithDescription("Delete a slide from a presentation"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointDeleteSlideArguments{}
		if issues := powerPointDeleteSlideArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return deleteSlide(ws, args.Name, args.SlideIndex)
	}))
}

func deleteSlide(ws *powerpoint.Workspace, name string, slideIndex int) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	if err := deck.DeleteSlide(slideIndex); err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("deleted slide %d from %s (%d slide(s) remain)\n", slideIndex, name, deck.SlideCount())
	return mcp.NewToolResultText(result), nil
}
