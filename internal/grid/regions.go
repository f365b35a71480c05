package grid

// Region is a rectangular bound around one contiguous block of non-empty
// cells. Coordinates are 1-based absolute worksheet positions. CellCount is
// the number of non-empty member cells; the bounding rectangle may contain
// empty cells when the block is not itself rectangular.
type Region struct {
	FirstRow  int
	LastRow   int
	FirstCol  int
	LastCol   int
	CellCount int
}

// Rows returns the height of the region in rows.
func (r Region) Rows() int {
	return r.LastRow - r.FirstRow + 1
}

// Cols returns the width of the region in columns.
func (r Region) Cols() int {
	return r.LastCol - r.FirstCol + 1
}

// FindRegions locates the contiguous blocks of non-empty cells in a
// snapshot. Cells merge into a block when a non-empty neighbor shares an
// edge (4-connectivity). The blocks are grown greedily by flood fill, which
// is a best-effort partition rather than a provably minimal one. An entirely
// empty snapshot yields an empty slice.
//
// Blocks never share a cell, and every non-empty cell belongs to exactly one
// block. Results are ordered by the row-major position of each block's first
// discovered cell, so the output is deterministic for a given snapshot.
func FindRegions(s *Snapshot) []Region {
	rows, cols := s.Rows(), s.Cols()
	if rows == 0 || cols == 0 {
		return []Region{}
	}

	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}

	regions := []Region{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if visited[r][c] || s.Cells[r][c].Kind == KindEmpty {
				continue
			}
			regions = append(regions, floodFill(s, visited, r, c))
		}
	}
	return regions
}

type coord struct {
	row, col int
}

// floodFill grows a block from the seed cell and returns its bounding
// region in absolute coordinates.
func floodFill(s *Snapshot, visited [][]bool, seedRow, seedCol int) Region {
	rows, cols := s.Rows(), s.Cols()
	minRow, maxRow := seedRow, seedRow
	minCol, maxCol := seedCol, seedCol
	count := 0

	stack := []coord{{seedRow, seedCol}}
	visited[seedRow][seedCol] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if cur.row < minRow {
			minRow = cur.row
		}
		if cur.row > maxRow {
			maxRow = cur.row
		}
		if cur.col < minCol {
			minCol = cur.col
		}
		if cur.col > maxCol {
			maxCol = cur.col
		}

		neighbors := []coord{
			{cur.row - 1, cur.col},
			{cur.row + 1, cur.col},
			{cur.row, cur.col - 1},
			{cur.row, cur.col + 1},
		}
		for _, n := range neighbors {
			if n.row < 0 || n.row >= rows || n.col < 0 || n.col >= cols {
				continue
			}
			if visited[n.row][n.col] || s.Cells[n.row][n.col].Kind == KindEmpty {
				continue
			}
			visited[n.row][n.col] = true
			stack = append(stack, n)
		}
	}

	return Region{
		FirstRow:  s.Row + minRow,
		LastRow:   s.Row + maxRow,
		FirstCol:  s.Col + minCol,
		LastCol:   s.Col + maxCol,
		CellCount: count,
	}
}
