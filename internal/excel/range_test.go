package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSCol  int
		wantSRow  int
		wantECol  int
		wantERow  int
		wantError bool
	}{
		{
			name:     "simple range",
			input:    "A1:C10",
			wantSCol: 1, wantSRow: 1, wantECol: 3, wantERow: 10,
		},
		{
			name:     "single cell",
			input:    "B5",
			wantSCol: 2, wantSRow: 5, wantECol: 2, wantERow: 5,
		},
		{
			name:     "absolute references",
			input:    "$A$1:$C$10",
			wantSCol: 1, wantSRow: 1, wantECol: 3, wantERow: 10,
		},
		{
			name:     "mixed absolute references",
			input:    "$A1:C$10",
			wantSCol: 1, wantSRow: 1, wantECol: 3, wantERow: 10,
		},
		{
			name:     "multi-letter columns",
			input:    "AA1:AZ100",
			wantSCol: 27, wantSRow: 1, wantECol: 52, wantERow: 100,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "invalid format",
			input:     "not-a-range",
			wantError: true,
		},
		{
			name:      "missing row number",
			input:     "A:C",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sCol, sRow, eCol, eRow, err := ParseRange(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseRange(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseRange(%q) unexpected error: %v", tt.input, err)
				return
			}
			if sCol != tt.wantSCol || sRow != tt.wantSRow || eCol != tt.wantECol || eRow != tt.wantERow {
				t.Errorf("ParseRange(%q) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.input, sCol, sRow, eCol, eRow, tt.wantSCol, tt.wantSRow, tt.wantECol, tt.wantERow)
			}
		})
	}
}

func TestRangeCellCount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int
		wantError bool
	}{
		{
			name:  "rectangular range",
			input: "A1:C10",
			want:  30,
		},
		{
			name:  "single cell",
			input: "B5",
			want:  1,
		},
		{
			name:  "single row",
			input: "A1:E1",
			want:  5,
		},
		{
			name:      "malformed range",
			input:     "not-a-range",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RangeCellCount(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("RangeCellCount(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("RangeCellCount(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("RangeCellCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already normalized",
			input: "A1:C10",
			want:  "A1:C10",
		},
		{
			name:  "strips absolute references",
			input: "$A$1:$C$10",
			want:  "A1:C10",
		},
		{
			name:  "invalid input returns original",
			input: "not-a-range",
			want:  "not-a-range",
		},
		{
			name:  "empty string returns original",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRange(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeRange(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileIsNotWritable(t *testing.T) {
	dir := t.TempDir()

	t.Run("directory path is not writable as a file", func(t *testing.T) {
		if !FileIsNotWritable(dir) {
			t.Errorf("FileIsNotWritable(%q) = false, want true for a directory", dir)
		}
	})

	t.Run("writable file", func(t *testing.T) {
		path := filepath.Join(dir, "book.xlsx")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if FileIsNotWritable(path) {
			t.Errorf("FileIsNotWritable(%q) = true, want false for a writable file", path)
		}
	})
}
