package tools

import (
	"context"
	"fmt"
	"html"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelCreateSheetArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
}

var excelCreateSheetArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
})

func AddExcelCreateSheetTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_create_sheet",
		mcp.WithDescription("Create a new sheet in the Excel file. The file is created when it does not exist"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Name of the new sheet"),
		),
	), WithRecovery(handleCreateSheet))
}

func handleCreateSheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelCreateSheetArguments{}
	if issues := excelCreateSheetArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return createSheet(args.FileAbsolutePath, args.SheetName)
}

func createSheet(fileAbsolutePath string, sheetName string) (*mcp.CallToolResult, error) {
	if result := checkWritable(fileAbsolutePath); result != nil {
		return result, nil
	}
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := workbook.FindSheet(sheetName); err == nil {
		return imcp.NewToolResultInvalidArgumentError(fmt.Sprintf("sheet %q already exists", sheetName)), nil
	}
	if err := workbook.CreateNewSheet(sheetName); err != nil {
		return nil, err
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += fmt.Sprintf("created sheet [%s]\n", html.EscapeString(sheetName))
	return mcp.NewToolResultText(result), nil
}
