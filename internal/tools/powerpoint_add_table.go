package tools

import (
	"context"
	"encoding/json"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointAddTableArguments struct {
	Name            string  `zog:"name"`
	SlideIndex      int     `zog:"slideIndex"`
	HeadersJson     string  `zog:"headersJson"`
	RowsJson        string  `zog:"rowsJson"`
	X               float64 `zog:"x"`
	Y               float64 `zog:"y"`
	ColWidth        float64 `zog:"colWidth"`
	RowHeight       float64 `zog:"rowHeight"`
	FontSize        float64 `zog:"fontSize"`
	HeaderFillColor string  `zog:"headerFillColor"`
}

var powerPointAddTableArgumentsSchema = z.Struct(z.Shape{
	"name":            z.String().Required(),
	"slideIndex":      z.Int().GTE(1).Required(),
	"headersJson":     z.String().Required(),
	"rowsJson":        z.String(),
	"x":               z.Float64().GTE(0).Default(0.5),
	"y":               z.Float64().GTE(0).Default(1.5),
	"colWidth":        z.Float64().GTE(0),
	"rowHeight":       z.Float64().GTE(0),
	"fontSize":        z.Float64().GTE(0),
	"headerFillColor": z.String(),
})

func AddPowerPointAddTableTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_add_table",
		mcp.WithDescription("Render headers plus rows as a bordered cell grid on a slide"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithNumber("slideIndex",
			mcp.Required(),
			mcp.Description("1-based slide index"),
		),
		mcp.WithString("headersJson",
			mcp.Required(),
			mcp.Description("JSON array of column headers, e.g. [\"Metric\", \"2023\", \"2024\"]"),
		),
		mcp.WithString("rowsJson",
			mcp.Description("JSON array of row arrays, e.g. [[\"Revenue\", \"120\", \"135\"]]"),
		),
		mcp.WithNumber("x",
			mcp.Description("Left position in inches (default: 0.5)"),
		),
		mcp.WithNumber("y",
			mcp.Description("Top position in inches (default: 1.5)"),
		),
		mcp.WithNumber("colWidth",
			mcp.Description("Column width in inches (default: 1.8)"),
		),
		mcp.WithNumber("rowHeight",
			mcp.Description("Row height in inches (default: 0.4)"),
		),
		mcp.WithNumber("fontSize",
			mcp.Description("Cell font size in points (default: 12)"),
		),
		mcp.WithString("headerFillColor",
			mcp.Description("Header row fill as RRGGBB hex (default: D9D9D9)"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointAddTableArguments{}
		if issues := powerPointAddTableArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return addTable(ws, args)
	}))
}

func addTable(ws *powerpoint.Workspace, args PowerPointAddTableArguments) (*mcp.CallToolResult, error) {
	var headers []string
	if err := json.Unmarshal([]byte(args.HeadersJson), &headers); err != nil {
		return imcp.NewToolResultInvalidArgumentError(fmt.Sprintf("headersJson must be a JSON array of strings: %v", err)), nil
	}
	var rows [][]string
	if args.RowsJson != "" {
		if err := json.Unmarshal([]byte(args.RowsJson), &rows); err != nil {
			return imcp.NewToolResultInvalidArgumentError(fmt.Sprintf("rowsJson must be a JSON array of string arrays: %v", err)), nil
		}
	}

	deck, err := ws.MustExist(args.Name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	ids, err := deck.AddTable(args.SlideIndex, headers, rows, powerpoint.TableOptions{
		X:               args.X,
		Y:               args.Y,
		ColWidthInches:  args.ColWidth,
		RowHeightInches: args.RowHeight,
		FontSizePoints:  args.FontSize,
		HeaderFillColor: args.HeaderFillColor,
	})
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if err := deck.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("added table with %d column(s), %d row(s) (%d cell element(s)) to slide %d of %s\n",
		len(headers), len(rows), len(ids), args.SlideIndex, args.Name)
	return mcp.NewToolResultText(result), nil
}
