// Package grid infers semantic structure from spreadsheet cell grids.
//
// The package operates on an immutable snapshot of raw cell contents taken
// from a worksheet read. It classifies cells, locates contiguous used
// regions, and proposes label/value pairings with positional heuristics.
// All results are derived views recomputed per call; nothing is cached.
package grid

import (
	"strconv"
	"strings"
	"time"
)

// Kind is the classification of a single cell.
type Kind string

const (
	KindEmpty   Kind = "empty"
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindFormula Kind = "formula"
)

func (k Kind) String() string {
	return string(k)
}

// Value is the raw content of a cell, fixed at ingestion. Exactly one kind
// applies; Text holds the literal for text cells, Number the normalized
// numeric value for number cells, and Formula the expression for formula
// cells (Number then carries the computed result when one is available).
type Value struct {
	Kind    Kind
	Text    string
	Number  float64
	Formula string
}

// Empty returns the value of a blank cell.
func Empty() Value {
	return Value{Kind: KindEmpty}
}

// Text returns a text cell value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric cell value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// Formula returns a formula cell value with its computed result.
func Formula(expr string, result string) Value {
	v := Value{Kind: KindFormula, Formula: expr, Text: result}
	if n, ok := ParseNumber(result); ok {
		v.Number = n
	}
	return v
}

// IsValue reports whether the cell is a candidate semantic value, i.e. a
// number or a formula result.
func (v Value) IsValue() bool {
	return v.Kind == KindNumber || v.Kind == KindFormula
}

// IsLabel reports whether the cell is a candidate semantic key.
func (v Value) IsLabel() bool {
	return v.Kind == KindText
}

// Snapshot is a rectangular read of a worksheet region plus the addressing
// metadata needed to report absolute cell addresses. Row and Col anchor the
// top-left cell (1-based). Cells is row-major and rectangular.
type Snapshot struct {
	Sheet string
	Row   int
	Col   int
	Cells [][]Value
}

// Rows returns the number of rows in the snapshot.
func (s *Snapshot) Rows() int {
	return len(s.Cells)
}

// Cols returns the number of columns in the snapshot.
func (s *Snapshot) Cols() int {
	if len(s.Cells) == 0 {
		return 0
	}
	return len(s.Cells[0])
}

// Classify converts a raw cell string and its formula (empty when the cell
// holds a literal) into a Value. Classification is total: blank or
// whitespace-only content is empty, formulas win over literals, numeric
// content (including currency, percent and date formats) normalizes to a
// number, and anything else falls back to text.
func Classify(raw string, formula string) Value {
	if formula != "" {
		return Formula(strings.TrimPrefix(formula, "="), raw)
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Empty()
	}
	if strings.HasPrefix(trimmed, "=") {
		return Formula(strings.TrimPrefix(trimmed, "="), "")
	}
	if n, ok := ParseNumber(trimmed); ok {
		return Number(n)
	}
	return Text(trimmed)
}

// ClassifyGrid classifies a rectangular grid of raw cell strings. The result
// has the same dimensions as the input. Ragged input rows are padded with
// empty cells so that the snapshot stays rectangular.
func ClassifyGrid(raw [][]string) [][]Value {
	cols := 0
	for _, row := range raw {
		if len(row) > cols {
			cols = len(row)
		}
	}
	cells := make([][]Value, len(raw))
	for r, row := range raw {
		cells[r] = make([]Value, cols)
		for c := range cells[r] {
			if c < len(row) {
				cells[r][c] = Classify(row[c], "")
			} else {
				cells[r][c] = Empty()
			}
		}
	}
	return cells
}

// Kinds returns the per-cell classification grid of a snapshot.
func (s *Snapshot) Kinds() [][]Kind {
	kinds := make([][]Kind, len(s.Cells))
	for r, row := range s.Cells {
		kinds[r] = make([]Kind, len(row))
		for c, cell := range row {
			kinds[r][c] = cell.Kind
		}
	}
	return kinds
}

var currencySymbols = "$€£¥₩₹"

// ParseNumber normalizes a display string to a numeric value. It accepts
// plain numbers, currency prefixes, thousands separators, percentages,
// accounting-style negatives and common date layouts (dates convert to their
// Excel serial number). It reports false for anything else.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if serial, ok := parseDateSerial(s); ok {
		return serial, true
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = strings.TrimSpace(s[1:])
		if strings.HasPrefix(s, "-") {
			return 0, false
		}
	}
	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	for _, sym := range currencySymbols {
		s = strings.TrimSpace(strings.TrimPrefix(s, string(sym)))
	}
	s = strings.ReplaceAll(s, ",", "")

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	if percent {
		n /= 100
	}
	return n, true
}

// excelEpoch is the zero of Excel's 1900 date system. Serial 1 is
// 1900-01-01; the epoch sits two days earlier to absorb the historical
// Lotus leap-year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

func parseDateSerial(s string) (float64, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Sub(excelEpoch).Hours() / 24, true
		}
	}
	return 0, false
}
