package grid

import (
	"reflect"
	"testing"
)

func TestInferPairingsHorizontal(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"Revenue", "1000"},
		{"EBITDA", "250"},
	})
	got := InferPairings(s)
	want := []Pairing{
		{Label: "Revenue", LabelRow: 1, LabelCol: 1, Value: Number(1000), ValueRow: 1, ValueCol: 2, Relation: RelationHorizontal},
		{Label: "EBITDA", LabelRow: 2, LabelCol: 1, Value: Number(250), ValueRow: 2, ValueCol: 2, Relation: RelationHorizontal},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferPairings = %+v, want %+v", got, want)
	}
}

func TestInferPairingsHeaderRow(t *testing.T) {
	// Year column headers over one value row. Header detection claims the
	// covered cells, so "Revenue" must not also pair horizontally with 1000.
	s := &Snapshot{
		Sheet: "DCF",
		Row:   1,
		Col:   1,
		Cells: [][]Value{
			{Text("Year"), Text("2021"), Text("2022")},
			{Text("Revenue"), Number(1000), Number(1200)},
		},
	}
	got := InferPairings(s)
	want := []Pairing{
		{Label: "2021", LabelRow: 1, LabelCol: 2, Value: Number(1000), ValueRow: 2, ValueCol: 2, Relation: RelationHeader},
		{Label: "2022", LabelRow: 1, LabelCol: 3, Value: Number(1200), ValueRow: 2, ValueCol: 3, Relation: RelationHeader},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferPairings = %+v, want %+v", got, want)
	}
}

func TestInferPairingsHeaderSpansMultipleValueRows(t *testing.T) {
	s := &Snapshot{
		Sheet: "DCF",
		Row:   1,
		Col:   1,
		Cells: [][]Value{
			{Text("2021"), Text("2022")},
			{Number(1000), Number(1200)},
			{Number(250), Number(300)},
			{Text("totals"), Number(1250)},
		},
	}
	got := InferPairings(s)

	headers := 0
	for _, p := range got {
		if p.Relation == RelationHeader {
			headers++
		}
	}
	// Two header columns, two intact value rows below; the "totals" row
	// breaks the span.
	if headers != 4 {
		t.Errorf("got %d header pairings, want 4: %+v", headers, got)
	}
	// The trailing label still pairs with its own right neighbor.
	last := got[len(got)-1]
	if last.Label != "totals" || last.Relation != RelationHorizontal {
		t.Errorf("last pairing = %+v, want horizontal totals pairing", last)
	}
}

func TestInferPairingsSingleColumnHeader(t *testing.T) {
	// One label over a column of values: every value belongs to the header,
	// not just the first one as a vertical pairing.
	s := snapshotFromRaw([][]string{
		{"Revenue"},
		{"1000"},
		{"1200"},
		{"1300"},
	})
	got := InferPairings(s)
	want := []Pairing{
		{Label: "Revenue", LabelRow: 1, LabelCol: 1, Value: Number(1000), ValueRow: 2, ValueCol: 1, Relation: RelationHeader},
		{Label: "Revenue", LabelRow: 1, LabelCol: 1, Value: Number(1200), ValueRow: 3, ValueCol: 1, Relation: RelationHeader},
		{Label: "Revenue", LabelRow: 1, LabelCol: 1, Value: Number(1300), ValueRow: 4, ValueCol: 1, Relation: RelationHeader},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferPairings = %+v, want %+v", got, want)
	}
}

func TestInferPairingsVertical(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"WACC", ""},
		{"8.5%", ""},
	})
	got := InferPairings(s)
	want := []Pairing{
		{Label: "WACC", LabelRow: 1, LabelCol: 1, Value: Number(0.085), ValueRow: 2, ValueCol: 1, Relation: RelationVertical},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferPairings = %+v, want %+v", got, want)
	}
}

func TestInferPairingsValueCellConsumedOnce(t *testing.T) {
	// Both "top" (above) and "left" (beside) are adjacent to the single
	// value cell; only the first label in row-major order wins.
	s := &Snapshot{
		Sheet: "Sheet1",
		Row:   1,
		Col:   1,
		Cells: [][]Value{
			{Empty(), Text("top")},
			{Text("left"), Number(5)},
		},
	}
	got := InferPairings(s)
	if len(got) != 1 {
		t.Fatalf("InferPairings = %+v, want exactly one pairing", got)
	}
	if got[0].Label != "top" || got[0].Relation != RelationVertical {
		t.Errorf("pairing = %+v, want vertical pairing for label %q", got[0], "top")
	}
}

func TestInferPairingsOrphanLabels(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]string
	}{
		{
			name: "label at bottom-right corner",
			raw: [][]string{
				{"", ""},
				{"", "Total"},
			},
		},
		{
			name: "label surrounded by text",
			raw: [][]string{
				{"Assumptions", "notes"},
				{"comment", "more"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferPairings(snapshotFromRaw(tt.raw))
			if len(got) != 0 {
				t.Errorf("InferPairings = %+v, want none (labels silently dropped)", got)
			}
		})
	}
}

func TestInferPairingsEmptyGrid(t *testing.T) {
	got := InferPairings(snapshotFromRaw([][]string{}))
	if len(got) != 0 {
		t.Errorf("InferPairings on empty grid = %+v, want empty", got)
	}
}

func TestInferPairingsDeterministic(t *testing.T) {
	s := snapshotFromRaw([][]string{
		{"Year", "2021", "2022", ""},
		{"Revenue", "1000", "1200", ""},
		{"", "", "", ""},
		{"WACC", "8%", "", "Terminal"},
		{"", "", "", "12000"},
	})
	first := InferPairings(s)
	second := InferPairings(s)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("InferPairings is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
