package sim

import (
	"gonum.org/v1/gonum/mat"
)

// QueueLengthMatrix is the dense (runs × minutes) grid of queue snapshots.
// Row r holds run r+1; column m holds minute m+1.
type QueueLengthMatrix struct {
	dense *mat.Dense
}

// NewQueueLengthMatrix allocates a zeroed matrix. runs and minutes must be > 0.
func NewQueueLengthMatrix(runs, minutes int) *QueueLengthMatrix {
	return &QueueLengthMatrix{dense: mat.NewDense(runs, minutes, nil)}
}

// Dims returns (runs, minutes).
func (q *QueueLengthMatrix) Dims() (runs, minutes int) {
	return q.dense.Dims()
}

// At returns the snapshot for row and column (both 0-based).
func (q *QueueLengthMatrix) At(row, col int) float64 {
	return q.dense.At(row, col)
}

// SetRow stores one run's series into row.
func (q *QueueLengthMatrix) SetRow(row int, series []int) {
	_, minutes := q.dense.Dims()
	if len(series) != minutes {
		panic("QueueLengthMatrix.SetRow: series length does not match minutes")
	}
	vals := make([]float64, minutes)
	for i, v := range series {
		vals[i] = float64(v)
	}
	q.dense.SetRow(row, vals)
}

// Row returns a copy of one run's series.
func (q *QueueLengthMatrix) Row(row int) []float64 {
	return mat.Row(nil, row, q.dense)
}

// Column returns a copy of all runs' snapshots at column col.
func (q *QueueLengthMatrix) Column(col int) []float64 {
	return mat.Col(nil, col, q.dense)
}

// Matrix exposes the grid read-only for numeric consumers.
func (q *QueueLengthMatrix) Matrix() mat.Matrix {
	return q.dense
}
