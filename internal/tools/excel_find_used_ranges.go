package tools

import (
	"context"
	"errors"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	"github.com/mz462/office-mcp/internal/grid"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelFindUsedRangesArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelFindUsedRangesArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String(),
})

func AddExcelFindUsedRangesTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_find_used_ranges",
		mcp.WithDescription("Find the rectangular blocks of connected non-empty cells in the Excel sheet"),
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
	), WithRecovery(handleFindUsedRanges))
}

func handleFindUsedRanges(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelFindUsedRangesArguments{}
	if issues := excelFindUsedRangesArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return findUsedRanges(args.FileAbsolutePath, args.SheetName, args.Range)
}

func findUsedRanges(fileAbsolutePath string, sheetName string, scanRange string) (*mcp.CallToolResult, error) {
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

	regions := grid.FindRegions(snapshot)
	summaries := make([]grid.RegionSummary, 0, len(regions))
	for _, region := range regions {
		summaries = append(summaries, grid.SummarizeRegion(region))
	}
	rendered, err := renderYAML(summaries)
	if err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += "scanned range: " + snapshot.RangeAddress() + "\n"
	result += "# Used ranges\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
