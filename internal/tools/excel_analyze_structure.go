package tools

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	"github.com/mz462/office-mcp/internal/grid"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelAnalyzeStructureArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelAnalyzeStructureArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String(),
})

func AddExcelAnalyzeStructureTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_analyze_structure",
		mcp.WithDescription("Infer the label/value structure of the Excel sheet: used ranges, per-cell types, and label/value pairings (horizontal, vertical and header relations)"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Description("Range to analyze (default: entire populated area)"),
		),
	), WithRecovery(handleAnalyzeStructure))
}

func handleAnalyzeStructure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelAnalyzeStructureArguments{}
	if issues := excelAnalyzeStructureArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return analyzeStructure(args.FileAbsolutePath, args.SheetName, args.Range)
}

func analyzeStructure(fileAbsolutePath string, sheetName string, analyzeRange string) (*mcp.CallToolResult, error) {
	if analyzeRange != "" {
		cellCount, err := excel.RangeCellCount(analyzeRange)
		if err != nil {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		if cellCount > classifyCellLimit {
			return imcp.NewToolResultInvalidArgumentError(
				fmt.Sprintf("range covers %d cells, limit is %d", cellCount, classifyCellLimit)), nil
		}
	}

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

	snapshot, err := worksheet.Snapshot(analyzeRange)
	if err != nil {
		var invalidRange *excel.InvalidRangeError
		if errors.As(err, &invalidRange) {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		return nil, err
	}

	analysis := grid.Analyze(snapshot)
	rendered, err := renderYAML(analysis)
	if err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += fmt.Sprintf("found %d used range(s) and %d pairing(s)\n", len(analysis.Regions), len(analysis.Pairings))
	result += "# Structure\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
