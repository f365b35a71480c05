package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xuri/excelize/v2"

	excel "github.com/mz462/office-mcp/internal/excel"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

type ExcelReadRangeArguments struct {
	FileAbsolutePath  string   `zog:"fileAbsolutePath"`
	SheetName         string   `zog:"sheetName"`
	Range             string   `zog:"range"`
	ShowFormula       bool     `zog:"showFormula"`
	KnownPagingRanges []string `zog:"knownPagingRanges"`
}

var excelReadRangeArgumentsSchema = z.Struct(z.Shape{
	"fileAbsolutePath":  z.String().Test(AbsolutePathTest()).Required(),
	"sheetName":         z.String().Required(),
	"range":             z.String(),
	"showFormula":       z.Bool().Default(false),
	"knownPagingRanges": z.Slice(z.String()),
})

const readRangePageSize = 5000

func AddExcelReadRangeTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("excel_read_range",
		mcp.WithDescription("Read values from the Excel sheet. When no range is given, the sheet is read page by page"),
		mcp.WithString("fileAbsolutePath",
			mcp.Required(),
			mcp.Description("Absolute path to the Excel file"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("Sheet name in the Excel file"),
		),
		mcp.WithString("range",
			mcp.Description("Range to read (e.g. \"A1:C10\", default: first unread page)"),
		),
		mcp.WithBoolean("showFormula",
			mcp.Description("Show formulas instead of values (default: false)"),
		),
		mcp.WithArray("knownPagingRanges",
			mcp.Description("Paging ranges that have already been read"),
		),
	), WithRecovery(handleReadRange))
}

func handleReadRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ExcelReadRangeArguments{}
	if issues := excelReadRangeArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return readRange(args.FileAbsolutePath, args.SheetName, args.Range, args.ShowFormula, args.KnownPagingRanges)
}

func readRange(fileAbsolutePath string, sheetName string, readRange string, showFormula bool, knownPagingRanges []string) (*mcp.CallToolResult, error) {
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

	strategy, err := worksheet.GetPagingStrategy(readRangePageSize)
	if err != nil {
		return nil, err
	}
	pagingService := excel.NewPagingRangeService(strategy)
	allRanges := pagingService.GetPagingRanges()
	remainingRanges := pagingService.FilterRemainingPagingRanges(allRanges, knownPagingRanges)

	currentRange := readRange
	if currentRange == "" {
		if len(remainingRanges) == 0 {
			return imcp.NewToolResultInvalidArgumentError("all paging ranges have been read"), nil
		}
		currentRange = remainingRanges[0]
	}
	remainingRanges = pagingService.FilterRemainingPagingRanges(remainingRanges, []string{currentRange})

	rows, err := readRangeCells(worksheet, currentRange, showFormula)
	if err != nil {
		var invalidRange *excel.InvalidRangeError
		if errors.As(err, &invalidRange) {
			return imcp.NewToolResultInvalidArgumentError(err.Error()), nil
		}
		return nil, err
	}

	rendered, err := renderYAML(rows)
	if err != nil {
		return nil, err
	}
	result := "# Notice\n"
	result += "backend: " + workbook.GetBackendName() + "\n"
	result += fmt.Sprintf("read range: %s\n", excel.NormalizeRange(currentRange))
	if len(remainingRanges) > 0 {
		result += fmt.Sprintf("unread paging ranges: %s\n", strings.Join(remainingRanges, ", "))
	} else {
		result += "all paging ranges have been read\n"
	}
	result += "# Values\n"
	result += rendered
	return mcp.NewToolResultText(result), nil
}

// readRangeCells reads the display values (or formulas) of a range row by row.
func readRangeCells(worksheet excel.Worksheet, rangeStr string, showFormula bool) ([][]string, error) {
	startCol, startRow, endCol, endRow, err := excel.ParseRange(rangeStr)
	if err != nil {
		return nil, &excel.InvalidRangeError{Range: rangeStr, Reason: err.Error()}
	}
	rows := make([][]string, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		line := make([]string, 0, endCol-startCol+1)
		for col := startCol; col <= endCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, &excel.InvalidRangeError{Range: rangeStr, Reason: err.Error()}
			}
			var value string
			if showFormula {
				value, err = worksheet.GetFormula(cell)
			} else {
				value, err = worksheet.GetValue(cell)
			}
			if err != nil {
				return nil, err
			}
			line = append(line, value)
		}
		rows = append(rows, line)
	}
	return rows, nil
}
