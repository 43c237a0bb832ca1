package pathutil

import "sync"

const (
	defaultBufCap = 64
	maxBufCap     = 1024
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{
			buf:   make([]byte, 0, defaultBufCap),
			marks: make([]int, 0, 8),
		}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Builders that grew past maxBufCap are dropped.
func Put(p *PathBuilder) {
	if p == nil || cap(p.buf) > maxBufCap {
		return
	}
	builders.Put(p)
}
