package grid

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		formula string
		want    Value
	}{
		{
			name: "blank is empty",
			raw:  "",
			want: Empty(),
		},
		{
			name: "whitespace only is empty",
			raw:  "   \t ",
			want: Empty(),
		},
		{
			name: "plain integer",
			raw:  "1000",
			want: Number(1000),
		},
		{
			name: "decimal",
			raw:  "3.14",
			want: Number(3.14),
		},
		{
			name: "negative",
			raw:  "-42",
			want: Number(-42),
		},
		{
			name: "currency with thousands separators",
			raw:  "$1,234.50",
			want: Number(1234.5),
		},
		{
			name: "euro prefix",
			raw:  "€ 99",
			want: Number(99),
		},
		{
			name: "percentage",
			raw:  "12.5%",
			want: Number(0.125),
		},
		{
			name: "accounting negative",
			raw:  "(1,000)",
			want: Number(-1000),
		},
		{
			name: "iso date normalizes to excel serial",
			raw:  "2021-01-01",
			want: Number(44197),
		},
		{
			name: "text",
			raw:  "Revenue",
			want: Text("Revenue"),
		},
		{
			name: "text with surrounding spaces is trimmed",
			raw:  "  EBITDA ",
			want: Text("EBITDA"),
		},
		{
			name: "malformed numeric falls back to text",
			raw:  "1.2.3",
			want: Text("1.2.3"),
		},
		{
			name: "inline formula convention",
			raw:  "=SUM(A1:A3)",
			want: Value{Kind: KindFormula, Formula: "SUM(A1:A3)"},
		},
		{
			name:    "formula with cached numeric result",
			raw:     "4500",
			formula: "=B2*3",
			want:    Value{Kind: KindFormula, Formula: "B2*3", Text: "4500", Number: 4500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw, tt.formula)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %+v, want %+v", tt.raw, tt.formula, got, tt.want)
			}
		})
	}
}

func TestClassifyGridDimensionsAndTotality(t *testing.T) {
	raw := [][]string{
		{"Revenue", "1000", ""},
		{"EBITDA"}, // ragged row
		{"", "=A1+A2", "note"},
	}
	cells := ClassifyGrid(raw)

	if len(cells) != 3 {
		t.Fatalf("ClassifyGrid returned %d rows, want 3", len(cells))
	}
	for r, row := range cells {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3 (ragged input must be padded)", r, len(row))
		}
		for c, cell := range row {
			switch cell.Kind {
			case KindEmpty, KindText, KindNumber, KindFormula:
			default:
				t.Errorf("cell (%d,%d) has unknown kind %q", r, c, cell.Kind)
			}
		}
	}

	if cells[1][1].Kind != KindEmpty || cells[1][2].Kind != KindEmpty {
		t.Errorf("padded cells must be empty, got %v / %v", cells[1][1].Kind, cells[1][2].Kind)
	}
	if cells[2][1].Kind != KindFormula {
		t.Errorf("cell (2,1) = %v, want formula", cells[2][1].Kind)
	}
}

func TestClassifyGridDeterministic(t *testing.T) {
	raw := [][]string{
		{"Year", "2021", "2022"},
		{"Revenue", "1000", "1200"},
		{"", "$5,000", "10%"},
	}
	first := ClassifyGrid(raw)
	second := ClassifyGrid(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ClassifyGrid is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOk bool
	}{
		{"0", 0, true},
		{"1 ", 1, true},
		{"-3.5", -3.5, true},
		{"$-12", -12, true},
		{"£2,000,000", 2000000, true},
		{"100%", 1, true},
		{"(250)", -250, true},
		{"", 0, false},
		{"Revenue", 0, false},
		{"12 months", 0, false},
		{"--5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		if ok != tt.wantOk {
			t.Errorf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
