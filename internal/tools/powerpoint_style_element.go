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

type PowerPointStyleElementArguments struct {
	Name       string  `zog:"name"`
	SlideIndex int     `zog:"slideIndex"`
	ElementID  string  `zog:"elementId"`
	FillColor  string  `zog:"fillColor"`
	LineColor  string  `zog:"lineColor"`
	LineWidth  float64 `zog:"lineWidth"`
	FontSize   float64 `zog:"fontSize"`
	FontBold   bool    `zog:"fontBold"`
	FontColor  string  `zog:"fontColor"`
}

var powerPointStyleElementArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"elementId":  z.String().Required(),
	"fillColor":  z.String(),
	"lineColor":  z.String(),
	"lineWidth":  z.Float64().GTE(0),
	"fontSize":   z.Float64().GTE(0),
	"fontBold":   z.Bool().Default(false),
	"fontColor":  z.String(),
})

func AddPowerPointStyleElementTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_style_element",
		mcp.WithDescription("Restyle an element by ID: fill, outline and font. Omitted properties are left unchanged"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("elementId",
			mcp.Required(),
			mcp.Description("Element ID (from powerpoint_describe_slide)"),
		),
		mcp.WithString("fillColor",
			mcp.Description("Fill color as RRGGBB hex"),
		),
		mcp.WithString("lineColor",
			mcp.Description("Outline color as RRGGBB hex"),
		),
		mcp.WithNumber("lineWidth",
			mcp.Description("Outline width in points"),
		),
		mcp.WithNumber("fontSize",
			mcp.Description("Font size in points"),
		),
		mcp.WithBoolean("fontBold",
			mcp.Description("Make the text bold"),
		),
		mcp.WithString("fontColor",
			mcp.Description("Font color as RRGGBB hex"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointStyleElementArguments{}
		if issues := powerPointStyleElementArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return styleElement(ws, args)
	}))
}

func styleElement(ws *powerpoint.Workspace, args PowerPointStyleElementArguments) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	err = deck.StyleElement(args.SlideIndex, args.ElementID, powerpoint.StyleOptions{
		FillColor:       args.FillColor,
		LineColor:       args.LineColor,
		LineWidthPoints: args.LineWidth,
		FontSizePoints:  args.FontSize,
		FontBold:        args.FontBold,
		FontColor:       args.FontColor,
	})
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("styled element %s on slide %d of %s\n", args.ElementID, args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
