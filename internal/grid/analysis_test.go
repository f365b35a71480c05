package grid

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	s := &Snapshot{
		Sheet: "DCF",
		Row:   2,
		Col:   2,
		Cells: ClassifyGrid([][]string{
			{"Revenue", "1000"},
			{"EBITDA", "250"},
		}),
	}
	got := Analyze(s)

	if got.Sheet != "DCF" {
		t.Errorf("Sheet = %q, want DCF", got.Sheet)
	}
	if got.Range != "B2:C3" {
		t.Errorf("Range = %q, want B2:C3", got.Range)
	}
	wantRegions := []RegionSummary{{Range: "B2:C3", Rows: 2, Cols: 2, CellCount: 4}}
	if !reflect.DeepEqual(got.Regions, wantRegions) {
		t.Errorf("Regions = %+v, want %+v", got.Regions, wantRegions)
	}
	wantKinds := [][]Kind{
		{KindText, KindNumber},
		{KindText, KindNumber},
	}
	if !reflect.DeepEqual(got.Kinds, wantKinds) {
		t.Errorf("Kinds = %+v, want %+v", got.Kinds, wantKinds)
	}
	wantPairings := []PairingSummary{
		{Label: "Revenue", LabelCell: "B2", Value: float64(1000), ValueCell: "C2", Relation: RelationHorizontal},
		{Label: "EBITDA", LabelCell: "B3", Value: float64(250), ValueCell: "C3", Relation: RelationHorizontal},
	}
	if !reflect.DeepEqual(got.Pairings, wantPairings) {
		t.Errorf("Pairings = %+v, want %+v", got.Pairings, wantPairings)
	}
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	s := &Snapshot{Sheet: "Blank", Row: 1, Col: 1, Cells: [][]Value{}}
	got := Analyze(s)
	if len(got.Regions) != 0 || len(got.Pairings) != 0 {
		t.Errorf("Analyze on empty snapshot = %+v, want no regions and no pairings", got)
	}
}

func TestLabels(t *testing.T) {
	s := &Snapshot{
		Sheet: "Sheet1",
		Row:   1,
		Col:   1,
		Cells: ClassifyGrid([][]string{
			{"Revenue", "1000"},
			{"", "Growth"},
		}),
	}
	got := s.Labels()
	want := []LabelCell{
		{Text: "Revenue", Address: "A1", Row: 1, Col: 1},
		{Text: "Growth", Address: "B2", Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %+v, want %+v", got, want)
	}
}

func TestCellAddress(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{1, 1, "A1"},
		{10, 3, "C10"},
		{100, 27, "AA100"},
		{5, 0, "R5C0"}, // out of range falls back to row/column notation
	}
	for _, tt := range tests {
		if got := CellAddress(tt.row, tt.col); got != tt.want {
			t.Errorf("CellAddress(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}
