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

type ExcelClassifyRangeArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Range            string `zog:"range"`
}

var excelClassifyRangeArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"range":            z.String().Required(),
})

// classifyCellLimit caps the cells classified in one call; larger requests
// should be split by the caller.
const classifyCellLimit = 50000

func AddExcelClassifyRangeTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_classify_range",
		mcp.WithDescription("Classify every cell of a range as empty, text, number or formula"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Range to classify (e.g. \"A1:F40\")"),
		),
	), WithRecovery(handleClassifyRange))
}

func handleClassifyRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelClassifyRangeArguments{}
	if issues := excelClassifyRangeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return classifyRange(args.FileAbsolutePath, args.SheetName, args.Range)
}

func classifyRange(fileAbsolutePath string, sheetName string, classifyRange string) (*mcp.CallToolResult, error) {
	cellCount, err := excel.RangeCellCount(classifyRange)
	if err != nil {
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	if cellCount > classifyCellLimit {
		return imcp.NewToolResultInvalidArgumentError(
			fmt.Sprintf("range covers %d cells, limit is %d", cellCount, classifyCellLimit)), nil
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

	snapshot, err := worksheet.Snapshot(classifyRange)
	if err != nil {
		var invalidRange *excel.InvalidRangeError
		if errors.As(err, &invalidRange) {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		return nil, err
	}

	rendered, err := renderYAML(snapshot.Kinds())
	if err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += "classified range: " + snapshot.RangeAddress() + "\n"
	result += "# Cell types\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}
