package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mz462/office-mcp/internal/grid"
)

type ExcelizeWorkbook struct {
	file *excelize.File
}

func NewExcelizeWorkbook(file *excelize.File) Workbook {
	return &ExcelizeWorkbook{file: file}
}

func (e *ExcelizeWorkbook) GetBackendName() string {
	return "excelize"
}

func (e *ExcelizeWorkbook) FindSheet(sheetName string) (Worksheet, error) {
	index, err := e.file.GetSheetIndex(sheetName)
	if err != nil {
		return nil, &UpstreamError{Op: "find sheet", Err: err}
	}
	if index < 0 {
		return nil, &SheetNotFoundError{Sheet: sheetName}
	}
	return &ExcelizeWorksheet{file: e.file, sheetName: sheetName}, nil
}

func (e *ExcelizeWorkbook) CreateNewSheet(sheetName string) error {
	if _, err := e.file.NewSheet(sheetName); err != nil {
		return &UpstreamError{Op: "create sheet", Err: err}
	}
	return nil
}

func (e *ExcelizeWorkbook) GetSheets() ([]Worksheet, error) {
	sheetList := e.file.GetSheetList()
	worksheets := make([]Worksheet, len(sheetList))
	for i, sheetName := range sheetList {
		worksheets[i] = &ExcelizeWorksheet{file: e.file, sheetName: sheetName}
	}
	return worksheets, nil
}

// Save writes the workbook to its file path.
// Excelize's Save method restricts the file path length to 207 characters,
// but since this limitation has been relaxed in some environments,
// we ignore this restriction.
// https://github.com/qax-os/excelize/blob/v2.9.0/file.go#L71-L73
func (e *ExcelizeWorkbook) Save() error {
	file, err := os.OpenFile(filepath.Clean(e.file.Path), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, os.ModePerm)
	if err != nil {
		return &UpstreamError{Op: "save workbook", Err: err}
	}
	defer file.Close()
	return e.file.Write(file)
}

type ExcelizeWorksheet struct {
	file      *excelize.File
	sheetName string
}

func (w *ExcelizeWorksheet) Release() {
	// No resources to release in excelize
}

func (w *ExcelizeWorksheet) Name() (string, error) {
	return w.sheetName, nil
}

func (w *ExcelizeWorksheet) GetDimension() (string, error) {
	return w.file.GetSheetDimension(w.sheetName)
}

func (w *ExcelizeWorksheet) GetValue(cell string) (string, error) {
	value, err := w.file.GetCellValue(w.sheetName, cell)
	if err != nil {
		return "", &UpstreamError{Op: "get cell value", Err: err}
	}
	if value == "" {
		// try to get calculated value
		formula, err := w.file.GetCellFormula(w.sheetName, cell)
		if err != nil {
			return "", &UpstreamError{Op: "get formula", Err: err}
		}
		if formula != "" {
			return w.file.CalcCellValue(w.sheetName, cell)
		}
	}
	return value, nil
}

func (w *ExcelizeWorksheet) GetFormula(cell string) (string, error) {
	formula, err := w.file.GetCellFormula(w.sheetName, cell)
	if err != nil {
		return "", &UpstreamError{Op: "get formula", Err: err}
	}
	if formula == "" {
		// fallback
		return w.GetValue(cell)
	}
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	return formula, nil
}

func (w *ExcelizeWorksheet) SetValue(cell string, value any) error {
	if err := w.file.SetCellValue(w.sheetName, cell, value); err != nil {
		return &UpstreamError{Op: "set cell value", Err: err}
	}
	if err := w.updateDimension(cell); err != nil {
		return fmt.Errorf("failed to update dimension: %w", err)
	}
	return nil
}

func (w *ExcelizeWorksheet) SetFormula(cell string, formula string) error {
	if err := w.file.SetCellFormula(w.sheetName, cell, formula); err != nil {
		return &UpstreamError{Op: "set cell formula", Err: err}
	}
	if err := w.updateDimension(cell); err != nil {
		return fmt.Errorf("failed to update dimension: %w", err)
	}
	return nil
}

// SetRange writes a rectangular block anchored at startCell. Strings with a
// leading "=" become formulas; everything else is written as a plain value.
func (w *ExcelizeWorksheet) SetRange(startCell string, values [][]any) (string, error) {
	startCol, startRow, err := excelize.CellNameToCoordinates(startCell)
	if err != nil {
		return "", &InvalidRangeError{Range: startCell, Reason: err.Error()}
	}
	endCol, endRow := startCol, startRow
	for i, row := range values {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			if err != nil {
				return "", &InvalidRangeError{Range: startCell, Reason: err.Error()}
			}
			if s, ok := value.(string); ok && strings.HasPrefix(s, "=") {
				err = w.SetFormula(cell, s)
			} else {
				err = w.SetValue(cell, value)
			}
			if err != nil {
				return "", err
			}
			if startCol+j > endCol {
				endCol = startCol + j
			}
		}
		if startRow+i > endRow {
			endRow = startRow + i
		}
	}
	endCell, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// Snapshot reads the requested range into a grid snapshot. The raw display
// value and the formula of every cell are read so that classification can
// distinguish computed cells from literals. An empty rangeStr snapshots the
// whole populated area; a range outside the populated area is rejected.
func (w *ExcelizeWorksheet) Snapshot(rangeStr string) (*grid.Snapshot, error) {
	dimension, err := w.GetDimension()
	if err != nil {
		return nil, &UpstreamError{Op: "get dimension", Err: err}
	}
	dimStartCol, dimStartRow, dimEndCol, dimEndRow, err := ParseRange(dimension)
	if err != nil {
		return nil, &UpstreamError{Op: "parse dimension", Err: err}
	}
	startCol, startRow, endCol, endRow := dimStartCol, dimStartRow, dimEndCol, dimEndRow
	if rangeStr != "" {
		startCol, startRow, endCol, endRow, err = ParseRange(rangeStr)
		if err != nil {
			return nil, &InvalidRangeError{Range: rangeStr, Reason: err.Error()}
		}
		if startCol > dimEndCol || startRow > dimEndRow {
			return nil, &InvalidRangeError{
				Range:  rangeStr,
				Reason: fmt.Sprintf("outside the populated area %s", dimension),
			}
		}
	}
	cells := make([][]grid.Value, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		line := make([]grid.Value, 0, endCol-startCol+1)
		for col := startCol; col <= endCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, &InvalidRangeError{Range: rangeStr, Reason: err.Error()}
			}
			raw, err := w.file.GetCellValue(w.sheetName, cell)
			if err != nil {
				return nil, &UpstreamError{Op: "get cell value", Err: err}
			}
			formula, err := w.file.GetCellFormula(w.sheetName, cell)
			if err != nil {
				return nil, &UpstreamError{Op: "get formula", Err: err}
			}
			line = append(line, grid.Classify(raw, formula))
		}
		cells = append(cells, line)
	}
	return &grid.Snapshot{
		Sheet: w.sheetName,
		Row:   startRow,
		Col:   startCol,
		Cells: cells,
	}, nil
}

func (w *ExcelizeWorksheet) GetPagingStrategy(pageSize int) (PagingStrategy, error) {
	return NewFixedSizePagingStrategy(pageSize, w)
}

// updateDimension widens the sheet dimension after a cell write so that
// later reads of the populated area see the new cell.
func (w *ExcelizeWorksheet) updateDimension(updatedCell string) error {
	dimension, err := w.file.GetSheetDimension(w.sheetName)
	if err != nil {
		return err
	}
	startCol, startRow, endCol, endRow, err := ParseRange(dimension)
	if err != nil {
		return err
	}
	updatedCol, updatedRow, err := excelize.CellNameToCoordinates(updatedCell)
	if err != nil {
		return err
	}
	if startCol > updatedCol {
		startCol = updatedCol
	}
	if endCol < updatedCol {
		endCol = updatedCol
	}
	if startRow > updatedRow {
		startRow = updatedRow
	}
	if endRow < updatedRow {
		endRow = updatedRow
	}
	startRange, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	endRange, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	updatedDimension := fmt.Sprintf("%s:%s", startRange, endRange)
	return w.file.SetSheetDimension(w.sheetName, updatedDimension)
}
