package core

// Shape reports the row count of a decoded grid and the column count of its
// first row. Ragged grids are not detected here.
func Shape[T any](rows [][]T) (height, width int) {
	height = len(rows)
	if height > 0 {
		width = len(rows[0])
	}
	return height, width
}

// At returns rows[y][x] and whether both indices were in range.
func At[T any](rows [][]T, x, y int) (T, bool) {
	var zero T
	if y < 0 || y >= len(rows) {
		return zero, false
	}
	row := rows[y]
	if x < 0 || x >= len(row) {
		return zero, false
	}
	return row[x], true
}

// NewGrid allocates a rectangular h×w grid.
func NewGrid[T any](w, h int) [][]T {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = make([]T, w)
	}
	return rows
}

// CloneGrid returns a deep copy of rows.
func CloneGrid[T any](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for y, row := range rows {
		out[y] = append([]T(nil), row...)
	}
	return out
}
