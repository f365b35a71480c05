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

type PowerPointAddTextArguments struct {
	Name       string  `zog:"name"`
	SlideIndex int     `zog:"slideIndex"`
	Text       string  `zog:"text"`
	X          float64 `zog:"x"`
	Y          float64 `zog:"y"`
	Width      float64 `zog:"width"`
	Height     float64 `zog:"height"`
	FontSize   float64 `zog:"fontSize"`
	Bold       bool    `zog:"bold"`
	Color      string  `zog:"color"`
}

var powerPointAddTextArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"text":       z.String().Required(),
	"x":          z.Float64().GTE(0).Default(1),
	"y":          z.Float64().GTE(0).Default(1),
	"width":      z.Float64().GT(0).Default(4),
	"height":     z.Float64().GT(0).Default(1),
	"fontSize":   z.Float64().GTE(0).Default(18),
	"bold":       z.Bool().Default(false),
	"color":      z.String(),
})

func AddPowerPointAddTextTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_add_text",
		mcp.WithDescription("Add a text box to a slide"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text content; newlines start new paragraphs"),
		),
		mcp.WithNumber("x",
			mcp.Description("Left position in inches (default: 1)"),
		),
		mcp.WithNumber("y",
			mcp.Description("Top position in inches (default: 1)"),
		),
		mcp.WithNumber("width",
			mcp.Description("Width in inches (default: 4)"),
		),
		mcp.WithNumber("height",
			mcp.Description("Height in inches (default: 1)"),
		),
		mcp.WithNumber("fontSize",
			mcp.Description("Font size in points (default: 18)"),
		),
		mcp.WithBoolean("bold",
			mcp.Description("Bold text (default: false)"),
		),
		mcp.WithString("color",
			mcp.Description("Font color as RRGGBB hex"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointAddTextArguments{}
		if issues := powerPointAddTextArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return addText(ws, args)
	}))
}

func addText(ws *powerpoint.Workspace, args PowerPointAddTextArguments) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	id, err := deck.AddText(args.SlideIndex, args.Text,
		powerpoint.Frame{X: args.X, Y: args.Y, Width: args.Width, Height: args.Height},
		powerpoint.TextOptions{FontSizePoints: args.FontSize, Bold: args.Bold, Color: args.Color})
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("added text element %s to slide %d of %s\n", id, args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
