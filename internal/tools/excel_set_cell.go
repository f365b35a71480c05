package tools

import (
	"context"
	"fmt"
	"html"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	excel "github.com/mz462/office-mcp/internal/excel"
	"github.com/mz462/office-mcp/internal/grid"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelSetCellArguments struct {
	FileAbsolutePath string `zog:"fileAbsolutePath"`
	SheetName        string `zog:"sheetName"`
	Cell             string `zog:"cell"`
	Value            string `zog:"value"`
}

var excelSetCellArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath": z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":        z.String().Required(),
	"cell":             z.String().Required(),
	"value":            z.String().Required(),
})

func AddExcelSetCellTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_set_cell",
		mcp.WithDescription("Set a single cell value or formula in the Excel sheet"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("cell",
			mcp.Required(),
			mcp.Description("Cell address (e.g. \"B2\")"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Value to write. A leading \"=\" writes a formula; numeric text is written as a number"),
		),
	), WithRecovery(handleSetCell))
}

func handleSetCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelSetCellArguments{}
	if issues := excelSetCellArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return setCell(args.FileAbsolutePath, args.SheetName, args.Cell, args.Value)
}

func setCell(fileAbsolutePath string, sheetName string, cell string, value string) (*mcp.CallToolResult, error) {
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
		return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
	}
	defer worksheet.Release()

	switch {
	case strings.HasPrefix(value, "="):
		err = worksheet.SetFormula(cell, value)
	default:
		if number, ok := grid.ParseNumber(value); ok {
			err = worksheet.SetValue(cell, number)
		} else {
			err = worksheet.SetValue(cell, value)
		}
	}
	if err != nil {
		return nil, err
	}
	if err := workbook.Save(); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += fmt.Sprintf("set %s in sheet [%s] to \"%s\"\n", cell, html.EscapeString(sheetName), html.EscapeString(value))
	return mcp.NewToolResultText(result), nil
}
