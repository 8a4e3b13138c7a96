// Package pool recycles the scratch buffers used while normalizing and
// scanning text.
package pool

import "sync"

// BytePool hands out empty byte slices that keep their capacity between uses.
// Callers must copy out of a buffer before putting it back.
type BytePool struct {
	pool sync.Pool
}

func NewBytePool(capacity int) *BytePool {
	return &BytePool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, capacity)
				return &buf
			},
		},
	}
}

func (p *BytePool) Get() *[]byte {
	return p.pool.Get().(*[]byte)
}

func (p *BytePool) Put(buf *[]byte) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}

// RunePool hands out rune slices pre-filled with the runes of a string, so
// scanners can index text by rune position.
type RunePool struct {
	pool sync.Pool
}

func NewRunePool(capacity int) *RunePool {
	return &RunePool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]rune, 0, capacity)
				return &buf
			},
		},
	}
}

// Get returns a buffer holding the runes of s.
func (p *RunePool) Get(s string) *[]rune {
	buf := p.pool.Get().(*[]rune)
	for _, r := range s {
		*buf = append(*buf, r)
	}
	return buf
}

func (p *RunePool) Put(buf *[]rune) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
