package excel

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mz462/office-mcp/internal/grid"
)

// Workbook is the backend handle for one open xlsx file. Workbooks are
// opened per tool call and released immediately after; no handle survives
// across calls.
type Workbook interface {
	// GetBackendName returns the backend used to manipulate the workbook.
	GetBackendName() string
	// GetSheets returns all worksheets in the workbook.
	GetSheets() ([]Worksheet, error)
	// FindSheet finds a sheet by its name.
	FindSheet(sheetName string) (Worksheet, error)
	// CreateNewSheet creates a new sheet with the specified name.
	CreateNewSheet(sheetName string) error
	// Save saves the workbook to its file path.
	Save() error
}

// Worksheet is one sheet of an open workbook.
type Worksheet interface {
	// Release releases the worksheet resources.
	Release()
	// Name returns the name of the worksheet.
	Name() (string, error)
	// GetDimension returns the populated area of the worksheet in A1 notation.
	GetDimension() (string, error)
	// GetValue gets the display value of the specified cell.
	GetValue(cell string) (string, error)
	// GetFormula gets the formula of the specified cell.
	GetFormula(cell string) (string, error)
	// SetValue sets a value in the specified cell.
	SetValue(cell string, value any) error
	// SetFormula sets a formula in the specified cell.
	SetFormula(cell string, formula string) error
	// SetRange writes a rectangular block of values starting at startCell and
	// returns the written range in A1 notation. String values beginning with
	// "=" are written as formulas.
	SetRange(startCell string, values [][]any) (string, error)
	// Snapshot reads the requested range into an immutable grid snapshot for
	// analysis. An empty rangeStr snapshots the whole populated area.
	Snapshot(rangeStr string) (*grid.Snapshot, error)
	// GetPagingStrategy returns the paging strategy for the worksheet.
	// The pageSize parameter determines the max cell count of each page.
	GetPagingStrategy(pageSize int) (PagingStrategy, error)
}

// OpenFile opens an xlsx file and returns a Workbook backed by excelize.
// If the file does not exist, a new workbook is created at that path and
// written out on the first Save.
func OpenFile(absoluteFilePath string) (Workbook, func(), error) {
	workbook, err := excelize.OpenFile(absoluteFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			workbook = excelize.NewFile()
			workbook.Path = absoluteFilePath
			e := NewExcelizeWorkbook(workbook)
			return e, func() {
				workbook.Close()
			}, nil
		}
		return nil, func() {}, &UpstreamError{Op: "open workbook", Err: err}
	}
	e := NewExcelizeWorkbook(workbook)
	return e, func() {
		workbook.Close()
	}, nil
}
