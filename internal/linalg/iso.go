package linalg

import "fmt"

// MatrixToColumnVectorList splits a matrix into its columns, returned
// as an ordered list of n×1 matrices. The order matches the column
// order of the input; downstream code depends on it positionally.
func MatrixToColumnVectorList(m *Matrix) []*Matrix {
	cols := make([]*Matrix, m.cols)
	for j := 0; j < m.cols; j++ {
		col := New(m.rows, 1)
		for i := 0; i < m.rows; i++ {
			col.data[i] = m.data[i*m.cols+j]
		}
		cols[j] = col
	}
	return cols
}

// ColumnVectorListToMatrix horizontally stacks an ordered list of n×1
// column vectors back into an n×len matrix. It is the inverse of
// MatrixToColumnVectorList: the round trip is exact for any matrix with
// at least one column.
func ColumnVectorListToMatrix(cols []*Matrix) *Matrix {
	if len(cols) == 0 {
		panic("linalg: ColumnVectorListToMatrix requires at least one column")
	}
	rows := cols[0].rows
	out := New(rows, len(cols))
	for j, col := range cols {
		if col.rows != rows || col.cols != 1 {
			panic(fmt.Sprintf("linalg: column %d has shape %dx%d, want %dx1", j, col.rows, col.cols, rows))
		}
		for i := 0; i < rows; i++ {
			out.data[i*out.cols+j] = col.data[i]
		}
	}
	return out
}
