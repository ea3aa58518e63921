package parallel

import "golang.org/x/sys/cpu"

// Padded keeps V on its own cache line, so per worker counters written in a
// hot loop do not false-share.
type Padded[T any] struct {
	_ cpu.CacheLinePad
	V T
	_ cpu.CacheLinePad
}

// Range is a half open interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of items in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split cuts [0, length) into at most parts contiguous ranges whose sizes
// differ by at most one. Empty ranges are not returned.
func Split(length, parts int) (out []Range) {
	if parts <= 0 {
		parts = 1
	}
	if parts > length {
		parts = length
	}
	var start int
	for p := 0; p < parts; p++ {
		size := length / parts
		if p < length%parts {
			size++
		}
		out = append(out, Range{start, start + size})
		start += size
	}
	return
}

// Shards runs body once per range of Split(length, workers), each on its own
// goroutine, passing the worker number and its range.
func Shards(length, workers int, body func(worker int, r Range)) {
	ranges := Split(length, workers)
	ForEach(len(ranges), len(ranges), func(i int) {
		body(i, ranges[i])
	})
}
