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

type PowerPointConnectShapesArguments struct {
	Name       string  `zog:"name"`
	SlideIndex int     `zog:"slideIndex"`
	FromID     string  `zog:"fromId"`
	ToID       string  `zog:"toId"`
	LineWidth  float64 `zog:"lineWidth"`
	LineColor  string  `zog:"lineColor"`
}

var powerPointConnectShapesArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"fromId":     z.String().Required(),
	"toId":       z.String().Required(),
	"lineWidth":  z.Float64().GTE(0),
	"lineColor":  z.String(),
})

func AddPowerPointConnectShapesTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_connect_shapes",
		mcp.WithDescription("Draw a straight line between the centers of two elements. The line does not re-route when shapes move"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("fromId",
			mcp.Required(),
			mcp.Description("Element ID of the first shape"),
		),
		mcp.WithString("toId",
			mcp.Required(),
			mcp.Description("Element ID of the second shape"),
		),
		mcp.WithNumber("lineWidth",
			mcp.Description("Line width in points (default: 1.5)"),
		),
		mcp.WithString("lineColor",
			mcp.Description("Line color as RRGGBB hex (default: black)"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointConnectShapesArguments{}
		if issues := powerPointConnectShapesArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return connectShapes(ws, args)
	}))
}

func connectShapes(ws *powerpoint.Workspace, args PowerPointConnectShapesArguments) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	id, err := deck.ConnectShapes(args.SlideIndex, args.FromID, args.ToID, args.LineWidth, args.LineColor)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("connected %s and %s with line element %s on slide %d of %s\n",
		args.FromID, args.ToID, id, args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
