package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	imcp "github.com/mz462/office-mcp/internal/mcp"
	"github.com/mz462/office-mcp/internal/powerpoint"
)

type PowerPointSaveAsTemplateArguments struct {
	Name         string `zog:"name"`
	TemplateName string `zog:"templateName"`
	Description  string `zog:"description"`
}

var powerPointSaveAsTemplateArgumentsSchema = z.Struct(z.Shape{
	"name":         z.String().Required(),
	"templateName": z.String().Required(),
	"description":  z.String(),
})

func AddPowerPointSaveAsTemplateTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_save_as_template",
		mcp.WithDescription("Snapshot a presentation into the template directory with metadata"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Presentation name in the workspace"),
		),
		mcp.WithString("templateName",
			mcp.Required(),
			mcp.Description("Name for the template"),
		),
		mcp.WithString("description",
			mcp.Description("Template description stored in the metadata"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointSaveAsTemplateArguments{}
		if issues := powerPointSaveAsTemplateArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		return saveAsTemplate(ws, args.Name, args.TemplateName, args.Description)
	}))
}

func saveAsTemplate(ws *powerpoint.Workspace, name string, templateName string, description string) (*mcp.CallToolResult, error) {
	meta, err := ws.SaveAsTemplate(name, templateName, description)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	rendered, err := renderYAML(meta)
	if err != nil {
		return nil, err
	}
	result := "# Notice\n"
	result += "saved template\n"
	result += "# Template\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
