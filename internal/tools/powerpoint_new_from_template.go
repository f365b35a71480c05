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

type PowerPointNewFromTemplateArguments struct {
	TemplateName string `zog:"templateName"`
	Name         string `zog:"name"`
	Title        string `zog:"title"`
	Body         string `zog:"body"`
}

var powerPointNewFromTemplateArgumentsSchema = z.Struct(z.Shape{
	"templateName": z.String().Required(),
	"name":         z.String().Required(),
	"title":        z.String(),
	"body":         z.String(),
})

func AddPowerPointNewFromTemplateTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_new_from_template",
		mcp.WithDescription("Create a workspace presentation from a template, optionally filling the title and body placeholders"),
		mcp.WithString("templateName",
			mcp.Required(),
			mcp.Description("Template name in the template directory"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name for the new presentation"),
		),
		mcp.WithString("title",
			mcp.Description("Text for the title placeholder of the first slide"),
		),
		mcp.WithString("body",
			mcp.Description("Text for the body placeholder of the first slide"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointNewFromTemplateArguments{}
		if issues := powerPointNewFromTemplateArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return newFromTemplate(ws, args.TemplateName, args.Name, args.Title, args.Body)
	}))
}

func newFromTemplate(ws *powerpoint.Workspace, templateName string, name string, title string, body string) (*mcp.CallToolResult, error) {
	path, err := ws.NewFromTemplate(templateName, name, title, body)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	result := "# Notice\n"
	result += fmt.Sprintf("created presentation %s from template %s\n", html.EscapeString(path), html.EscapeString(templateName))
	return mcp.NewToolResultText(result), nil
}
