package excel

import (
	"testing"
)

func TestFixedSizePagingStrategy_CalculatePagingRanges(t *testing.T) {
	tests := []struct {
		name      string
		dimension string
		pageSize  int
		want      []string
	}{
		{
			name:      "single page fits all",
			dimension: "A1:C10",
			pageSize:  100,
			want:      []string{"A1:C10"},
		},
		{
			name:      "multiple pages",
			dimension: "A1:C10",
			pageSize:  9, // 3 cols * 3 rows = 9 cells per page
			want:      []string{"A1:C3", "A4:C6", "A7:C9", "A10:C10"},
		},
		{
			name:      "single column",
			dimension: "A1:A5",
			pageSize:  2,
			want:      []string{"A1:A2", "A3:A4", "A5:A5"},
		},
		{
			name:      "page size smaller than columns forces 1 row per page",
			dimension: "A1:E3",
			pageSize:  2, // 5 cols but pageSize=2, so rowsPerPage = max(1, 2/5) = 1
			want:      []string{"A1:E1", "A2:E2", "A3:E3"},
		},
		{
			name:      "single cell",
			dimension: "B2:B2",
			pageSize:  100,
			want:      []string{"B2:B2"},
		},
		{
			name:      "invalid dimension returns empty",
			dimension: "invalid",
			pageSize:  100,
			want:      []string{},
		},
		{
			name:      "empty dimension returns empty",
			dimension: "",
			pageSize:  100,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := &FixedSizePagingStrategy{pageSize: tt.pageSize, dimension: tt.dimension}
			got := strategy.CalculatePagingRanges()
			if len(got) != len(tt.want) {
				t.Errorf("CalculatePagingRanges() with dimension %q, pageSize %d returned %d ranges, want %d: got %v",
					tt.dimension, tt.pageSize, len(got), len(tt.want), got)
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CalculatePagingRanges()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPagingRangeService_FilterRemainingPagingRanges(t *testing.T) {
	service := NewPagingRangeService(nil)

	tests := []struct {
		name        string
		allRanges   []string
		knownRanges []string
		want        []string
	}{
		{
			name:        "no known ranges returns all",
			allRanges:   []string{"A1:A10", "A11:A20"},
			knownRanges: []string{},
			want:        []string{"A1:A10", "A11:A20"},
		},
		{
			name:        "filters known ranges",
			allRanges:   []string{"A1:A10", "A11:A20", "A21:A30"},
			knownRanges: []string{"A1:A10"},
			want:        []string{"A11:A20", "A21:A30"},
		},
		{
			name:        "all known returns empty",
			allRanges:   []string{"A1:A10"},
			knownRanges: []string{"A1:A10"},
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.FilterRemainingPagingRanges(tt.allRanges, tt.knownRanges)
			if len(got) != len(tt.want) {
				t.Errorf("FilterRemainingPagingRanges() returned %d, want %d: got %v",
					len(got), len(tt.want), got)
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterRemainingPagingRanges()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
