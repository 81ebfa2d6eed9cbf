package runner

import "HashBench/errutil"

// cursor walks window start offsets over a buffer.
//
// limit is the last legal start, bufLen-size. newCursor requires size >= 1
// and bufLen >= size, so limit >= 0, and advance only ever moves offset to
// offset+1 when offset < limit or back to 0. Hence
// 0 <= offset <= limit and offset+size <= bufLen hold after every step.
type cursor struct {
	offset int
	limit  int
	wraps  uint64
}

func newCursor(bufLen, size int) cursor {
	errutil.BugOn(size < 1 || bufLen < size, "window %d does not fit buffer %d", size, bufLen)
	return cursor{limit: bufLen - size}
}

// advance moves to the next start offset: one byte forward while the window
// still fits, otherwise back to 0.
func (c *cursor) advance() {
	if c.offset == c.limit {
		c.offset = 0
		c.wraps++
		return
	}
	c.offset++
}

// period is the number of advances that bring offset back to where it began.
func (c *cursor) period() int { return c.limit + 1 }
