package tools

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelExtractLabelsArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelExtractLabelsArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String(),
})

func AddExcelExtractLabelsTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_extract_labels",
		mcp.WithDescription("Extract all text cells with their addresses from the Excel sheet, as candidate labels for structure analysis"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Description("Range to scan (default: entire populated area)"),
		),
	), WithRecovery(handleExtractLabels))
}

func handleExtractLabels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelExtractLabelsArguments{}
	if issues := excelExtractLabelsArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return extractLabels(args.FileAbsolutePath, args.SheetName, args.Range)
}

func extractLabels(fileAbsolutePath string, sheetName string, scanRange string) (*mcp.CallToolResult, error) {
	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	worksheet, err := workbook.FindSheet(sheetName)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer worksheet.Release()

	snapshot, err := worksheet.Snapshot(scanRange)
	if err != nil {
		var invalidRange *excel.InvalidRangeError
		if errors.As(err, &invalidRange) {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		return nil, err
	}

	labels := snapshot.Labels()
	rendered, err := renderYAML(labels)
	if err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += "scanned range: " + snapshot.RangeAddress() + "\n"
	result += fmt.Sprintf("found %d label(s)\n", len(labels))
	result += "# Labels\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
