package tools

import (
	"context"
	"fmt"
	"html"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointFindSlideArguments struct {
	Name  string `zog:"name"`
	Query string `zog:"query"`
}

var powerPointFindSlideArgumentsSchema = z.Struct(z.Shape{
	"name":  z.String().Required(),
	"query": z.String().Required(),
})

func AddPowerPointFindSlideTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_find_slide",
		mcp.WithDescription("Find the first slide whose text contains the query, case-insensitively"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointFindSlideArguments{}
		if issues := powerPointFindSlideArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return findSlide(ws, args.Name, args.Query)
	}))
}

func findSlide(ws *powerpoint.Workspace, name string, query string) (*mcp.CallToolResult, error) {
	deck, err := ws.MustExist(name)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}

	index := deck.FindSlide(query)
	result := "# Notice\n"
	if index == 0 {
		result += fmt.Sprintf("no slide of %s contains \"%s\"\n", name, html.EscapeString(query))
		return mcp.NewToolResultText(result), nil
	}
	text, err := deck.SlideText(index)
	if err != nil {
		return nil, err
	}
	result += fmt.Sprintf("slide %d of %s contains \"%s\"\n", index, name, html.EscapeString(query))
	result += "# Slide text\n"
	result += html.EscapeString(text) + "\n"
	return mcp.NewToolResultText(result), nil
}
