package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelWriteRangeArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	StartCell        string `zog:"startCell"`
	ValuesJson       string `zog:"valuesJson"`
	NewSheet         bool   `zog:"newSheet"`
}

var excelWriteRangeArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"startCell":        z.String().Required(),
	"valuesJson":       z.String().Required(),
	"newSheet":         z.Bool().Default(false),
})

func AddExcelWriteRangeTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_write_range",
		mcp.WithDescription("Write a block of values to the Excel sheet. Strings beginning with \"=\" are written as formulas"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("startCell",
			mcp.Required(),
			mcp.Description("Top-left cell of the block (e.g. \"A1\")"),
		),
		mcp.WithString("valuesJson",
			mcp.Required(),
			mcp.Description("JSON array of row arrays, e.g. [[\"Revenue\", 120], [\"EBITDA\", 30]]"),
		),
		mcp.WithBoolean("newSheet",
			mcp.Description("Create the sheet if it does not exist (default: false)"),
		),
	), WithRecovery(handleWriteRange))
}

func handleWriteRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelWriteRangeArguments{}
	if issues := excelWriteRangeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return writeRange(args.FileAbsolutePath, args.SheetName, args.StartCell, args.ValuesJson, args.NewSheet)
}

func writeRange(fileAbsolutePath string, sheetName string, startCell string, valuesJson string, newSheet bool) (*mcp.CallToolResult, error) {
	var values [][]any
	if err := json.Unmarshal([]byte(valuesJson), &values); err != nil {
		return imcp.NewToolResultInvalidArgumentError(fmt.Sprintf("valuesJson must be a JSON array of arrays: %v", err)), nil
	}
	if len(values) == 0 {
		return imcp.NewToolResultInvalidArgumentError("valuesJson must contain at least one row"), nil
	}
	if result := checkWritable(fileAbsolutePath); result != nil {
		return result, nil
	}

	workbook, release, err := excel.OpenFile(fileAbsolutePath)
	if err != nil {
		return nil, err
	}
	defer release()

	worksheet, err := workbook.FindSheet(sheetName)
	if err != nil {
		var notFound *excel.SheetNotFoundError
		if newSheet && errors.As(err, &notFound) {
			if err := workbook.CreateNewSheet(sheetName); err != nil {
				return nil, err
			}
			worksheet, err = workbook.FindSheet(sheetName)
			if err != nil {
				return nil, err
			}
		} else {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
	}
	defer worksheet.Release()

	writtenRange, err := worksheet.SetRange(startCell, values)
	if err != nil {
		var invalidRange *excel.InvalidRangeError
		if errors.As(err, &invalidRange) {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		return nil, err
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += fmt.Sprintf("wrote %d row(s) to [%s] range %s\n", len(values), sheetName, writtenRange)
	return mcp.NewToolResultText(result), nil
}
