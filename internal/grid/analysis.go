package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Analysis is the structured result of a full structure-inference pass:
// used regions, the per-cell classification grid, and the inferred pairing
// list. It is assembled from a single snapshot and discarded after the
// response is rendered.
type Analysis struct {
	Sheet    string           `yaml:"sheet"`
	Range    string           `yaml:"range"`
	Regions  []RegionSummary  `yaml:"usedRanges"`
	Kinds    [][]Kind         `yaml:"cellTypes"`
	Pairings []PairingSummary `yaml:"pairings"`
}

// RegionSummary reports one used range with its boundaries.
type RegionSummary struct {
	Range     string `yaml:"range"`
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	CellCount int    `yaml:"nonEmptyCells"`
}

// PairingSummary reports one pairing with the absolute addresses of both
// ends. Value holds a float64 for numeric cells and the display text for
// formula results that did not evaluate to a number.
type PairingSummary struct {
	Label     string   `yaml:"label"`
	LabelCell string   `yaml:"labelCell"`
	Value     any      `yaml:"value"`
	ValueCell string   `yaml:"valueCell"`
	Relation  Relation `yaml:"relation"`
}

// LabelCell is a text cell reported with its absolute address, the raw
// material for label/value analysis.
type LabelCell struct {
	Text    string `yaml:"text"`
	Address string `yaml:"address"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
}

// Analyze runs classification, region detection and pairing inference over
// a snapshot and renders the combined result with absolute addresses.
func Analyze(s *Snapshot) Analysis {
	analysis := Analysis{
		Sheet:    s.Sheet,
		Range:    s.RangeAddress(),
		Regions:  []RegionSummary{},
		Kinds:    s.Kinds(),
		Pairings: []PairingSummary{},
	}
	for _, region := range FindRegions(s) {
		analysis.Regions = append(analysis.Regions, SummarizeRegion(region))
	}
	for _, p := range InferPairings(s) {
		analysis.Pairings = append(analysis.Pairings, PairingSummary{
			Label:     p.Label,
			LabelCell: CellAddress(p.LabelRow, p.LabelCol),
			Value:     pairingValue(p.Value),
			ValueCell: CellAddress(p.ValueRow, p.ValueCol),
			Relation:  p.Relation,
		})
	}
	return analysis
}

// SummarizeRegion reports a region's bounds and size for rendering.
func SummarizeRegion(r Region) RegionSummary {
	return RegionSummary{
		Range:     r.Range(),
		Rows:      r.Rows(),
		Cols:      r.Cols(),
		CellCount: r.CellCount,
	}
}

// Labels returns every text cell in the snapshot with its absolute address,
// in row-major order.
func (s *Snapshot) Labels() []LabelCell {
	labels := []LabelCell{}
	for r, row := range s.Cells {
		for c, cell := range row {
			if !cell.IsLabel() {
				continue
			}
			labels = append(labels, LabelCell{
				Text:    cell.Text,
				Address: CellAddress(s.Row+r, s.Col+c),
				Row:     s.Row + r,
				Col:     s.Col + c,
			})
		}
	}
	return labels
}

// RangeAddress returns the snapshot's bounds in A1 notation.
func (s *Snapshot) RangeAddress() string {
	if s.Rows() == 0 || s.Cols() == 0 {
		return ""
	}
	start := CellAddress(s.Row, s.Col)
	end := CellAddress(s.Row+s.Rows()-1, s.Col+s.Cols()-1)
	return fmt.Sprintf("%s:%s", start, end)
}

// Range returns the region's bounds in A1 notation.
func (r Region) Range() string {
	start := CellAddress(r.FirstRow, r.FirstCol)
	end := CellAddress(r.LastRow, r.LastCol)
	return fmt.Sprintf("%s:%s", start, end)
}

// CellAddress converts 1-based row/column coordinates to an A1 address.
// Coordinates outside the valid worksheet area render as "R<r>C<c>" rather
// than failing, since addresses here are for reporting only.
func CellAddress(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row, col)
	}
	return name
}

func pairingValue(v Value) any {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindFormula:
		if n, ok := ParseNumber(v.Text); ok {
			return n
		}
		return v.Text
	default:
		return v.Text
	}
}
