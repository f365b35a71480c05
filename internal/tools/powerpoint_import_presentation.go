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

type PowerPointImportPresentationArguments struct {
	SourceAbsolutePath string `zog:"sourceAbsolutePath"`
	Name               string `zog:"name"`
}

var powerPointImportPresentationArgumentsSchema = z.Struct(z.Shape{
	"sourceAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"name":               z.String(),
})

func AddPowerPointImportPresentationTool(server *server.MCPServer, ws *powerpoint.Workspace) {
	server.AddTool(mcp.NewTool("powerpoint_import_presentation",
		mcp.WithDescription("Copy an external pptx file into the workspace"),
		mcp.WithString("sourceAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the pptx file to import"),
		),
		mcp.WithString("name",
			mcp.Description("Workspace name for the presentation (default: source file name)"),
		),
	), WithRecovery(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := PowerPointImportPresentationArguments{}
		if issues := powerPointImportPresentationArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
			return imcp.NewToolResultZogIssueMap(issues), nil
		}
		destPath, err := ws.Import(args.SourceAbsolutePath, args.Name)
		if err != nil {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		result := "# Notice\n"
		result += fmt.Sprintf("imported presentation to %s\n", destPath)
		return mcp.NewToolResultText(result), nil
	}))
}
