package tools

import (
	"context"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	"github.com/mz462/office-mcp/internal/grid"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelDescribeSheetsArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
}

var excelDescribeSheetsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
})

type sheetDescription struct {
	Name       string `yaml:"name"`
	Dimension  string `yaml:"dimension,omitempty"`
	UsedRanges int    `yaml:"usedRanges"`
}

func AddExcelDescribeSheetsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_describe_sheets",
		mcp.WithDescription("List all sheet information of specified Excel file"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
	), WithRecovery(handleDescribeSheets))
}

func handleDescribeSheets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelDescribeSheetsArguments{}
	if issues := excelDescribeSheetsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return describeSheets(args.FileAbsolutePath)
}

func describeSheets(fileAbsolutePath string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	worksheets, err := workbook.GetSheets()
	if err != nil {
		return nil, err
	}

	descriptions := make([]sheetDescription, 0, len(worksheets))
	for _, worksheet := range worksheets {
		name, err := worksheet.Name()
		if err != nil {
			worksheet.Release()
			return nil, err
		}
		description := sheetDescription{Name: name}
		if dimension, err := worksheet.GetDimension(); err == nil {
			description.Dimension = dimension
		}
		if snapshot, err := worksheet.Snapshot(""); err == nil {
			description.UsedRanges = len(grid.FindRegions(snapshot))
		}
		descriptions = append(descriptions, description)
		worksheet.Release()
	}

	rendered, err := renderYAML(descriptions)
	if err != nil {
		return nil, err
	}
	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += "# Sheets\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
