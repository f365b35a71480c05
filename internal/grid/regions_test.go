package grid

import (
	"reflect"
	"testing"
)

func snapshotFromRaw(raw [][]string) *Snapshot {
	return &Snapshot{Sheet: "Sheet1", Row: 1, Col: 1, Cells: ClassifyGrid(raw)}
}

func TestFindRegionsSingleBlock(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"Revenue", "1000"},
		{"EBITDA", "250"},
	})
	regions := FindRegions(s)
	want := []Region{{FirstRow: 1, LastRow: 2, FirstCol: 1, LastCol: 2, CellCount: 4}}
	if !reflect.DeepEqual(regions, want) {
		t.Errorf("FindRegions = %+v, want %+v", regions, want)
	}
}

func TestFindRegionsDisjointBlocks(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"a", "", "", "b"},
		{"1", "", "", "2"},
	})
	regions := FindRegions(s)
	if len(regions) != 2 {
		t.Fatalf("FindRegions returned %d regions, want 2: %+v", len(regions), regions)
	}
	if regions[0].Range() != "A1:A2" {
		t.Errorf("first region = %s, want A1:A2", regions[0].Range())
	}
	if regions[1].Range() != "D1:D2" {
		t.Errorf("second region = %s, want D1:D2", regions[1].Range())
	}
}

func TestFindRegionsLShapedBlock(t *testing.T) {
	// An L-shape: the bounding rectangle contains an empty corner, but the
	// block still counts only its member cells.
	s := snapshotFromRaw([][]string{
		{"x", ""},
		{"x", ""},
		{"x", "x"},
	})
	regions := FindRegions(s)
	if len(regions) != 1 {
		t.Fatalf("FindRegions returned %d regions, want 1: %+v", len(regions), regions)
	}
	got := regions[0]
	if got.Range() != "A1:B3" {
		t.Errorf("region range = %s, want A1:B3", got.Range())
	}
	if got.CellCount != 4 {
		t.Errorf("region cell count = %d, want 4", got.CellCount)
	}
}

func TestFindRegionsEmptySheet(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]string
	}{
		{name: "no rows", raw: [][]string{}},
		{name: "all blank", raw: [][]string{{"", ""}, {"", ""}}},
		{name: "whitespace only", raw: [][]string{{"  ", "\t"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := FindRegions(snapshotFromRaw(tt.raw))
			if len(regions) != 0 {
				t.Errorf("FindRegions = %+v, want empty", regions)
			}
		})
	}
}

func TestFindRegionsDiagonalCellsDoNotMerge(t *testing.T) {
	// Diagonal adjacency does not share an edge, so the cells stay apart.
	s := snapshotFromRaw([][]string{
		{"a", ""},
		{"", "b"},
	})
	regions := FindRegions(s)
	if len(regions) != 2 {
		t.Errorf("FindRegions returned %d regions, want 2 (4-connectivity only): %+v", len(regions), regions)
	}
}

func TestFindRegionsCoverAllNonEmptyCells(t *testing.T) {
	raw := [][]string{
		{"Header", "2021", "2022", "", "Notes"},
		{"Revenue", "1000", "1200", "", ""},
		{"", "", "", "", ""},
		{"Capex", "-300", "", "", "orphan"},
	}
	s := snapshotFromRaw(raw)
	regions := FindRegions(s)

	nonEmpty := 0
	for r, row := range s.Cells {
		for c, cell := range row {
			if cell.Kind == KindEmpty {
				continue
			}
			nonEmpty++
			row1, col1 := s.Row+r, s.Col+c
			contained := false
			for _, region := range regions {
				if row1 >= region.FirstRow && row1 <= region.LastRow &&
					col1 >= region.FirstCol && col1 <= region.LastCol {
					contained = true
					break
				}
			}
			if !contained {
				t.Errorf("non-empty cell %s not covered by any region", CellAddress(row1, col1))
			}
		}
	}

	total := 0
	for _, region := range regions {
		total += region.CellCount
	}
	if total != nonEmpty {
		t.Errorf("region cell counts sum to %d, want %d (each cell in exactly one block)", total, nonEmpty)
	}
}

func TestFindRegionsDeterministic(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"a", "", "b"},
		{"1", "", "2"},
	})
	first := FindRegions(s)
	second := FindRegions(s)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FindRegions is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
