package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/persim/boardlife/rules"
)

// Board represents a square toroidal game board. Cells are stored in a
// single contiguous buffer in row-major order; true is alive, false is dead.
type Board struct {
	size  int
	cells []bool
}

// NewBoard creates an all-dead board with the given side length.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, errors.Errorf("[NewBoard] invalid board size: %d", size)
	}
	return &Board{size: size, cells: make([]bool, size*size)}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

func (b *Board) index(row, col int) int { return row*b.size + col }

func (b *Board) checkBounds(row, col int) error {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return errors.Errorf("cell (%d,%d) out of range for size %d", row, col, b.size)
	}
	return nil
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(row, col int, alive bool) error {
	if err := b.checkBounds(row, col); err != nil {
		return errors.Wrap(err, "[Set]")
	}
	b.cells[b.index(row, col)] = alive
	return nil
}

// Get returns the state of a cell
func (b *Board) Get(row, col int) (bool, error) {
	if err := b.checkBounds(row, col); err != nil {
		return false, errors.Wrap(err, "[Get]")
	}
	return b.cells[b.index(row, col)], nil
}

// CopyFrom overwrites the board with the contents of src.
func (b *Board) CopyFrom(src *Board) error {
	if src.size != b.size {
		return errors.Errorf("[CopyFrom] size mismatch: src %d, dst %d", src.size, b.size)
	}
	copy(b.cells, src.cells)
	return nil
}

// reset resizes the board for reuse from the pool, clearing every cell.
func (b *Board) reset(size int) {
	b.size = size
	if len(b.cells) != size*size {
		b.cells = make([]bool, size*size)
		return
	}
	b.clear()
}

// clear kills all cells
func (b *Board) clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// countNeighbors counts the live cells among the eight toroidal neighbors
// of (row, col). Each coordinate wraps modulo size, so the board has no
// edges: row -1 is row size-1 and so on.
func (b *Board) countNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + b.size) % b.size
			nc := (col + dc + b.size) % b.size
			if b.cells[b.index(nr, nc)] {
				count++
			}
		}
	}
	return count
}

// Step advances the board by one generation. All neighbor counts are read
// from an immutable snapshot of the previous generation taken from the
// pool, so cell updates are order-independent; workers > 1 splits the rows
// across that many goroutines without changing the result.
func (b *Board) Step(pool *BoardPool, workers int) error {
	prev := pool.Get(b.size)
	defer pool.Put(prev)

	if err := prev.CopyFrom(b); err != nil {
		return errors.Wrap(err, "[Step] snapshot")
	}

	if workers <= 1 {
		b.stepRows(prev, 0, b.size)
		return nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (b.size + workers - 1) / workers // Ceiling division
	)
	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.size)
		)
		if startRow >= b.size {
			break
		}

		eg.Go(func() error {
			b.stepRows(prev, startRow, endRow)
			return nil
		})
	}
	return errors.Wrap(eg.Wait(), "[Step]")
}

// stepRows computes rows [startRow, endRow) of the next generation from
// the prev snapshot.
func (b *Board) stepRows(prev *Board, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < b.size; col++ {
			idx := b.index(row, col)
			b.cells[idx] = rules.NextState(prev.cells[idx], prev.countNeighbors(row, col))
		}
	}
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}
