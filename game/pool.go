package game

import (
	"sync"
)

var (
	iterPoolLock sync.Mutex
	iterPool     = make(map[int32]map[int32]*sync.Pool)
)

func newIterator(m int32) interface{} { return make([][]Colour, m) }

func poolFor(m, n int32) *sync.Pool {
	iterPoolLock.Lock()
	defer iterPoolLock.Unlock()
	d, ok := iterPool[m]
	if !ok {
		d = make(map[int32]*sync.Pool)
		iterPool[m] = d
	}
	p, ok := d[n]
	if !ok {
		p = &sync.Pool{New: func() interface{} { return newIterator(m) }}
		d[n] = p
	}
	return p
}

func borrowIterator(m, n int32) [][]Colour { return poolFor(m, n).Get().([][]Colour) }

// MakeIterator makes a row iterator over a rowmajor board of m rows and n columns.
// The rows share the backing board. Return the iterator with ReturnIterator when done.
func MakeIterator(board []Colour, m, n int32) (retVal [][]Colour) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		start := i * int(n)
		retVal[i] = board[start : start+int(n) : start+int(n)]
	}
	return
}

// ReturnIterator returns an iterator made by MakeIterator to the pool.
func ReturnIterator(m, n int32, it [][]Colour) {
	for i := range it {
		it[i] = nil
	}
	poolFor(m, n).Put(it)
}
