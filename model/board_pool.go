package model

import "sync"

// BoardPool recycles the scratch boards used as per-step snapshots
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, resetting its dimensions
func (p *BoardPool) Get(size int) *Board {
	b := p.pool.Get().(*Board)
	b.reset(size)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	// Clear the board before returning to pool
	b.clear()
	p.pool.Put(b)
}
