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

type PowerPointEditElementArguments struct {
	Name       string  `zog:"name"`
	SlideIndex int     `zog:"slideIndex"`
	ElementID  string  `zog:"elementId"`
	X          float64 `zog:"x"`
	Y          float64 `zog:"y"`
	Width      float64 `zog:"width"`
	Height     float64 `zog:"height"`
	Text       string  `zog:"text"`
}

var powerPointEditElementArgumentsSchema = z.Struct(z.Shape{
	"name":       z.String().Required(),
	"slideIndex": z.Int().GTE(1).Required(),
	"elementId":  z.String().Required(),
	"x":          z.Float64().Default(-1),
	"y":          z.Float64().Default(-1),
	"width":      z.Float64().Default(-1),
	"height":     z.Float64().Default(-1),
	"text":       z.String(),
})

func AddPowerPointEditElementTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_edit_element",
		mcp.WithDescription("Move, resize or rewrite an element by ID. Omitted properties are left unchanged"),
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
		mcp.WithNumber("x",
			mcp.Description("New left position in inches"),
		),
		mcp.WithNumber("y",
			mcp.Description("New top position in inches"),
		),
		mcp.WithNumber("width",
			mcp.Description("New width in inches"),
		),
		mcp.WithNumber("height",
			mcp.Description("New height in inches"),
		),
		mcp.WithString("text",
			mcp.Description("Replacement text; newlines start new paragraphs"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointEditElementArguments{}
		if issues := powerPointEditElementArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return editElement(ws, args)
	}))
}

func editElement(ws *powerpoint.Workspace, args PowerPointEditElementArguments) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	err = deck.EditElement(args.SlideIndex, args.ElementID, powerpoint.EditOptions{
		X:      args.X,
		Y:      args.Y,
		Width:  args.Width,
		Height: args.Height,
		Text:   args.Text,
	})
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("edited element %s on slide %d of %s\n", args.ElementID, args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
