package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueLengthMatrix_SetRowAndRead(t *testing.T) {
	m := NewQueueLengthMatrix(2, 3)
	m.SetRow(0, []int{1, 2, 3})
	m.SetRow(1, []int{4, 5, 6})

	runs, minutes := m.Dims()
	assert.Equal(t, 2, runs)
	assert.Equal(t, 3, minutes)
	assert.Equal(t, 5.0, m.At(1, 1))
	assert.Equal(t, []float64{1, 2, 3}, m.Row(0))
	assert.Equal(t, []float64{3, 6}, m.Column(2))
}

func TestQueueLengthMatrix_SetRow_WrongLength_Panics(t *testing.T) {
	m := NewQueueLengthMatrix(1, 3)
	assert.Panics(t, func() { m.SetRow(0, []int{1, 2}) })
}
