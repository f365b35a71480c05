package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointDescribeSlideArguments struct {
	Name       string `zog:"name"`
	SlideIndex int    `zog:"slideIndex"`
}

var powerPointDescribeSlideArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
})

func AddPowerPointDescribeSlideTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_describe_slide",
		mcp.WithDescription("List the elements of one slide with their IDs, positions and sizes in inches"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointDescribeSlideArguments{}
		if issues := powerPointDescribeSlideArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return describeSlide(ws, args.Name, args.SlideIndex)
	}))
}

func describeSlide(ws *powerpoint.Workspace, name string, slideIndex int) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	summary, err := deck.DescribeSlide(slideIndex)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	// Persist any freshly assigned element IDs.
	if err := deck.Save(); err != nil {
		return nil, err
	}

	rendered, err := renderYAML(summary)
	if err != nil {
		return nil, err
	}
	result := "# Slide\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
