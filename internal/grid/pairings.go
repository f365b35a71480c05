package grid

// Relation describes the spatial rule that produced a pairing.
type Relation string

const (
	RelationHorizontal Relation = "horizontal"
	RelationVertical   Relation = "vertical"
	RelationHeader     Relation = "header"
)

// Pairing is an inferred association between a label cell and a value cell.
// It is a heuristic view, not a guarantee: the same grid always yields the
// same pairings, but nothing checks that the association is semantically
// correct. Coordinates are 1-based absolute worksheet positions.
type Pairing struct {
	Label    string
	LabelRow int
	LabelCol int
	Value    Value
	ValueRow int
	ValueCol int
	Relation Relation
}

// InferPairings proposes label/value pairings for a snapshot.
//
// Header rows are detected first: a run of adjacent label cells whose cells
// directly below are value cells claims those columns, and each header label
// pairs with every value cell in its column until a row breaks the span. A
// lone label counts as a header only when at least two value cells sit
// directly under it; a single value below stays a plain vertical pairing.
// Cells covered by a header block are excluded from the simple rules that
// follow.
//
// Remaining label cells pair with their immediate right neighbor when it is
// an unclaimed value cell (horizontal), otherwise with the cell directly
// below (vertical). A value cell is consumed by at most one horizontal or
// vertical pairing; header pairings are exempt since one header column spans
// many value rows. Labels with no adjacent value produce nothing.
//
// Cells are processed in row-major order within each phase, so the returned
// sequence is identical across runs for a given snapshot.
func InferPairings(s *Snapshot) []Pairing {
	rows, cols := s.Rows(), s.Cols()
	pairings := []Pairing{}
	if rows == 0 || cols == 0 {
		return pairings
	}

	claimed := make([][]bool, rows)
	paired := make([][]bool, rows)
	for r := range claimed {
		claimed[r] = make([]bool, cols)
		paired[r] = make([]bool, cols)
	}

	isLabel := func(r, c int) bool { return s.Cells[r][c].IsLabel() }
	isValue := func(r, c int) bool { return s.Cells[r][c].IsValue() }

	// Header phase.
	for r := 0; r+1 < rows; r++ {
		for c := 0; c < cols; {
			if !isLabel(r, c) || claimed[r][c] {
				c++
				continue
			}
			runEnd := c
			for runEnd+1 < cols && isLabel(r, runEnd+1) {
				runEnd++
			}
			for sub := c; sub <= runEnd; {
				if !isValue(r+1, sub) {
					sub++
					continue
				}
				subEnd := sub
				for subEnd+1 <= runEnd && isValue(r+1, subEnd+1) {
					subEnd++
				}
				if subEnd-sub+1 >= 2 || valueRunBelow(s, r, sub) >= 2 {
					pairings = append(pairings, headerBlock(s, claimed, r, sub, subEnd)...)
				}
				sub = subEnd + 1
			}
			c = runEnd + 1
		}
	}

	// Horizontal / vertical phase.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !isLabel(r, c) || claimed[r][c] {
				continue
			}
			label := s.Cells[r][c].Text
			if c+1 < cols && isValue(r, c+1) && !claimed[r][c+1] && !paired[r][c+1] {
				paired[r][c+1] = true
				pairings = append(pairings, Pairing{
					Label:    label,
					LabelRow: s.Row + r,
					LabelCol: s.Col + c,
					Value:    s.Cells[r][c+1],
					ValueRow: s.Row + r,
					ValueCol: s.Col + c + 1,
					Relation: RelationHorizontal,
				})
				continue
			}
			if r+1 < rows && isValue(r+1, c) && !claimed[r+1][c] && !paired[r+1][c] {
				paired[r+1][c] = true
				pairings = append(pairings, Pairing{
					Label:    label,
					LabelRow: s.Row + r,
					LabelCol: s.Col + c,
					Value:    s.Cells[r+1][c],
					ValueRow: s.Row + r + 1,
					ValueCol: s.Col + c,
					Relation: RelationVertical,
				})
			}
		}
	}

	return pairings
}

// valueRunBelow counts the unbroken run of value cells directly under (r, c).
func valueRunBelow(s *Snapshot, r, c int) int {
	n := 0
	for vr := r + 1; vr < s.Rows(); vr++ {
		if !s.Cells[vr][c].IsValue() {
			break
		}
		n++
	}
	return n
}

// headerBlock emits header pairings for the label cells in row r spanning
// columns [first, last], walking down while every column in the span still
// holds a value cell. All covered cells are marked claimed.
func headerBlock(s *Snapshot, claimed [][]bool, r, first, last int) []Pairing {
	rows := s.Rows()
	var pairings []Pairing
	for vr := r + 1; vr < rows; vr++ {
		spanIntact := true
		for c := first; c <= last; c++ {
			if !s.Cells[vr][c].IsValue() {
				spanIntact = false
				break
			}
		}
		if !spanIntact {
			break
		}
		for c := first; c <= last; c++ {
			claimed[vr][c] = true
			pairings = append(pairings, Pairing{
				Label:    s.Cells[r][c].Text,
				LabelRow: s.Row + r,
				LabelCol: s.Col + c,
				Value:    s.Cells[vr][c],
				ValueRow: s.Row + vr,
				ValueCol: s.Col + c,
				Relation: RelationHeader,
			})
		}
	}
	for c := first; c <= last; c++ {
		claimed[r][c] = true
	}
	return pairings
}
