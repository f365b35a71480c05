package tools

import (
	"context"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointAddShapeArguments struct {
	Name       string  `zog:"name"`
	SlideIndex int     `zog:"slideIndex"`
	Shape      string  `zog:"shape"`
	X          float64 `zog:"x"`
	Y          float64 `zog:"y"`
	Width      float64 `zog:"width"`
	Height     float64 `zog:"height"`
	FillColor  string  `zog:"fillColor"`
	LineColor  string  `zog:"lineColor"`
	LineWidth  float64 `zog:"lineWidth"`
	Text       string  `zog:"text"`
	FontSize   float64 `zog:"fontSize"`
}

var powerPointAddShapeArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"shape":      z.String().Required(),
	"x":          z.Float64().GTE(0).Default(1),
	"y":          z.Float64().GTE(0).Default(1),
	"width":      z.Float64().GT(0).Default(2),
	"height":     z.Float64().GT(0).Default(1),
	"fillColor":  z.String(),
	"lineColor":  z.String(),
	"lineWidth":  z.Float64().GTE(0),
	"text":       z.String(),
	"fontSize":   z.Float64().GTE(0),
})

func AddPowerPointAddShapeTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_add_shape",
		mcp.WithDescription("Add a preset-geometry shape to a slide"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("shape",
			mcp.Required(),
			mcp.Description("Shape name: "+strings.Join(powerpoint.ShapePresetNames(), ", ")),
		),
		mcp.WithNumber("x",
			mcp.Description("Left position in inches (default: 1)"),
		),
		mcp.WithNumber("y",
			mcp.Description("Top position in inches (default: 1)"),
		),
		mcp.WithNumber("width",
			mcp.Description("Width in inches (default: 2)"),
		),
		mcp.WithNumber("height",
			mcp.Description("Height in inches (default: 1)"),
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
		mcp.WithString("text",
			mcp.Description("Text placed inside the shape"),
		),
		mcp.WithNumber("fontSize",
			mcp.Description("Font size of the shape text in points"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointAddShapeArguments{}
		if issues := powerPointAddShapeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return addShape(ws, args)
	}))
}

func addShape(ws *powerpoint.Workspace, args PowerPointAddShapeArguments) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	id, err := deck.AddShape(args.SlideIndex, args.Shape,
		powerpoint.Frame{X: args.X, Y: args.Y, Width: args.Width, Height: args.Height},
		powerpoint.ShapeOptions{
			FillColor:       args.FillColor,
			LineColor:       args.LineColor,
			LineWidthPoints: args.LineWidth,
			Text:            args.Text,
			FontSizePoints:  args.FontSize,
		})
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("added %s element %s to slide %d of %s\n", args.Shape, id, args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
