// Package search implements the read-only search engine: six algorithms over
// fixed-width element buffers, selectable through the typed per-algorithm API
// or the string-dispatched Exec entry point.
//
// Every algorithm except Linear assumes the buffer is already ordered per the
// requested direction; a violated assumption yields an undefined index or a
// miss, never a crash, and the engine performs no validation.
package search

import (
	"math"

	"github.com/arrkit/arrkit/compare"
	"github.com/arrkit/arrkit/record"
)

// Per-algorithm results. The algorithms themselves return an index or
// StatusNotFound; the remaining codes belong to Exec's return contract.
const (
	StatusNotFound         = -1
	StatusInvalidInput     = -2
	StatusUnknownType      = -3
	StatusUnknownAlgorithm = -4
)

// Linear scans once and returns the first matching index. Works for any
// type and order; unsorted input is tolerated.
func Linear(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	for i := 0; i < buf.Len(); i++ {
		if cmp(buf.At(i), key, desc) == 0 {
			return i
		}
	}
	return StatusNotFound
}

// Binary bisects a half-open range over a pre-sorted buffer.
func Binary(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	lo, hi := 0, buf.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(buf.At(mid), key, desc); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return StatusNotFound
}

// Jump advances block-by-block (block size = floor(sqrt(count))) while the
// block's last element still precedes the key, then linear-scans the block.
func Jump(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	n := buf.Len()
	if n == 0 {
		return StatusNotFound
	}
	block := int(math.Sqrt(float64(n)))
	if block < 1 {
		block = 1
	}

	prev, step := 0, block
	for {
		probe := step - 1
		if probe >= n {
			probe = n - 1
		}
		if cmp(buf.At(probe), key, desc) >= 0 {
			break
		}
		prev = step
		step += block
		if prev >= n {
			return StatusNotFound
		}
	}

	for i := prev; i < n && i < step; i++ {
		if cmp(buf.At(i), key, desc) == 0 {
			return i
		}
	}
	return StatusNotFound
}

// Interpolation estimates the probe position by linear interpolation between
// the range endpoints, assuming near-uniform value distribution. Elements are
// decoded as signed little-endian integers; Exec admits only the i32 and i64
// kinds. When the range collapses to equal endpoint values the remaining
// candidate is checked directly.
func Interpolation(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	n := buf.Len()
	k := record.Int(key)

	lo, hi := 0, n-1
	for lo <= hi {
		vlo := record.Int(buf.At(lo))
		vhi := record.Int(buf.At(hi))

		inRange := k >= vlo && k <= vhi
		if desc {
			inRange = k <= vlo && k >= vhi
		}
		if !inRange {
			break
		}

		if vhi == vlo {
			if cmp(buf.At(lo), key, desc) == 0 {
				return lo
			}
			break
		}

		pos := lo + int(float64(hi-lo)*float64(k-vlo)/float64(vhi-vlo))
		if pos < lo || pos > hi {
			break
		}
		if cmp(buf.At(pos), key, desc) == 0 {
			return pos
		}
		v := record.Int(buf.At(pos))
		if (desc && v < k) || (!desc && v > k) {
			hi = pos - 1
		} else {
			lo = pos + 1
		}
	}
	return StatusNotFound
}

// Exponential doubles a bound index until the element there no longer
// precedes the key (or the bound leaves the buffer), then binary-searches
// the bracketed range.
func Exponential(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	n := buf.Len()

	bound := 1
	for bound < n && cmp(buf.At(bound), key, desc) < 0 {
		bound *= 2
	}

	lo := bound / 2
	hi := bound
	if hi > n {
		hi = n
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(buf.At(mid), key, desc); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return StatusNotFound
}

// Fibonacci maintains a shrinking Fibonacci window over the index space,
// probing at offset+fib(m-2) and narrowing per the comparator result until
// the window width reaches 1.
func Fibonacci(buf record.Buffer, key []byte, cmp compare.Func, desc bool) int {
	n := buf.Len()

	fib2, fib1 := 0, 1
	fib := fib2 + fib1
	for fib < n {
		fib2, fib1 = fib1, fib
		fib = fib2 + fib1
	}

	offset := -1
	for fib > 1 {
		i := offset + fib2
		if i > n-1 {
			i = n - 1
		}
		switch c := cmp(buf.At(i), key, desc); {
		case c < 0:
			fib = fib1
			fib1 = fib2
			fib2 = fib - fib1
			offset = i
		case c > 0:
			fib = fib2
			fib1 -= fib2
			fib2 = fib - fib1
		default:
			return i
		}
	}

	if fib1 == 1 && offset+1 < n && cmp(buf.At(offset+1), key, desc) == 0 {
		return offset + 1
	}
	return StatusNotFound
}
