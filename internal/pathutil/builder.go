package pathutil

import "strconv"

// PathBuilder builds a dotted document location one segment at a time.
// The zero value is ready to use.
type PathBuilder struct {
	buf   []byte
	marks []int // buf length before each pushed segment
}

// Push appends a named segment, separated from the previous one by a dot.
func (p *PathBuilder) Push(segment string) {
	p.marks = append(p.marks, len(p.buf))
	if len(p.buf) > 0 {
		p.buf = append(p.buf, '.')
	}
	p.buf = append(p.buf, segment...)
}

// PushIndex appends an array index segment ("[3]") with no separator.
func (p *PathBuilder) PushIndex(i int) {
	p.marks = append(p.marks, len(p.buf))
	p.buf = append(p.buf, '[')
	p.buf = strconv.AppendInt(p.buf, int64(i), 10)
	p.buf = append(p.buf, ']')
}

// Pop removes the most recent segment. Popping an empty builder is a no-op.
func (p *PathBuilder) Pop() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	p.buf = p.buf[:p.marks[n-1]]
	p.marks = p.marks[:n-1]
}

// Depth returns the number of pushed segments.
func (p *PathBuilder) Depth() int {
	return len(p.marks)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.buf = p.buf[:0]
	p.marks = p.marks[:0]
}

// String returns the current location.
func (p *PathBuilder) String() string {
	return string(p.buf)
}
