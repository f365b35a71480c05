package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PagingStrategy defines the interface for calculating paging ranges.
type PagingStrategy interface {
	// CalculatePagingRanges returns a list of available paging ranges.
	CalculatePagingRanges() []string
}

// FixedSizePagingStrategy splits the populated area into pages with a fixed
// cell count per page.
type FixedSizePagingStrategy struct {
	pageSize  int
	dimension string
}

// NewFixedSizePagingStrategy creates a new FixedSizePagingStrategy instance.
func NewFixedSizePagingStrategy(pageSize int, worksheet Worksheet) (*FixedSizePagingStrategy, error) {
	if pageSize <= 0 {
		pageSize = 5000
	}

	dimension, err := worksheet.GetDimension()
	if err != nil {
		return nil, err
	}

	return &FixedSizePagingStrategy{
		pageSize:  pageSize,
		dimension: dimension,
	}, nil
}

// CalculatePagingRanges generates paging ranges based on fixed cell count.
// Pages are whole-row slices of the dimension so that a row never straddles
// a page boundary.
func (s *FixedSizePagingStrategy) CalculatePagingRanges() []string {
	startCol, startRow, endCol, endRow, err := ParseRange(s.dimension)
	if err != nil {
		return []string{}
	}

	totalCols := endCol - startCol + 1
	rowsPerPage := s.pageSize / totalCols
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	var ranges []string
	currentRow := startRow
	for currentRow <= endRow {
		pageEndRow := currentRow + rowsPerPage - 1
		if pageEndRow > endRow {
			pageEndRow = endRow
		}

		startRange, err := excelize.CoordinatesToCellName(startCol, currentRow)
		if err != nil {
			return ranges
		}
		endRange, err := excelize.CoordinatesToCellName(endCol, pageEndRow)
		if err != nil {
			return ranges
		}
		ranges = append(ranges, fmt.Sprintf("%s:%s", startRange, endRange))

		currentRow = pageEndRow + 1
	}

	return ranges
}

// PagingRangeService provides paging operations.
type PagingRangeService struct {
	strategy PagingStrategy
}

// NewPagingRangeService creates a new PagingRangeService instance.
func NewPagingRangeService(strategy PagingStrategy) *PagingRangeService {
	return &PagingRangeService{strategy: strategy}
}

// GetPagingRanges returns a list of available paging ranges.
func (s *PagingRangeService) GetPagingRanges() []string {
	return s.strategy.CalculatePagingRanges()
}

// FilterRemainingPagingRanges returns ranges that are not in knownRanges.
func (s *PagingRangeService) FilterRemainingPagingRanges(allRanges []string, knownRanges []string) []string {
	if len(knownRanges) == 0 {
		return allRanges
	}

	knownMap := make(map[string]bool)
	for _, r := range knownRanges {
		knownMap[r] = true
	}

	remaining := make([]string, 0)
	for _, r := range allRanges {
		if !knownMap[r] {
			remaining = append(remaining, r)
		}
	}

	return remaining
}
