// Package sort implements the in-place sorting engine: nine interchangeable
// algorithms over fixed-width element buffers, selectable either through the
// typed per-algorithm API or through the string-dispatched Exec entry point.
package sort

import (
	"errors"
	"fmt"

	"github.com/arrkit/arrkit/compare"
	"github.com/arrkit/arrkit/record"
)

var (
	// ErrInvalidInput is returned for a nil comparator where one is required.
	ErrInvalidInput = errors.New("sort: invalid input")

	// ErrUnsupportedWidth is returned by the width-restricted algorithms
	// (radix, counting) for element widths they cannot handle.
	ErrUnsupportedWidth = errors.New("sort: unsupported element width")
)

// Order selects the comparison direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Stability selects whether equal elements must retain their relative order.
// Only Auto consults it; Merge is the one algorithm that guarantees it.
type Stability int

const (
	Unstable Stability = iota
	Stable
)

// Options configures a single sort call. The zero value is the documented
// default: ascending, unstable.
type Options struct {
	Order     Order
	Stability Stability
}

// autoThreshold is the cutoff below which Auto prefers insertion sort.
// It is a heuristic, not a correctness requirement.
const autoThreshold = 32

// Auto selects an algorithm from the input shape: insertion sort for small
// buffers, merge sort when stability is requested, quicksort otherwise.
func Auto(buf record.Buffer, cmp compare.Func, opts Options) error {
	switch {
	case buf.Len() < autoThreshold:
		return Insertion(buf, cmp, opts)
	case opts.Stability == Stable:
		return Merge(buf, cmp, opts)
	default:
		return Quick(buf, cmp, opts)
	}
}

// Quick sorts in place with Lomuto-partition quicksort (pivot = last element
// of the active range). Unstable; worst case O(n²) on adversarial input.
func Quick(buf record.Buffer, cmp compare.Func, opts Options) error {
	if buf.Len() <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	quick(buf, 0, buf.Len()-1, cmp, opts.Order == Descending)
	return nil
}

func quick(buf record.Buffer, lo, hi int, cmp compare.Func, desc bool) {
	if lo >= hi {
		return
	}
	p := partition(buf, lo, hi, cmp, desc)
	quick(buf, lo, p-1, cmp, desc)
	quick(buf, p+1, hi, cmp, desc)
}

func partition(buf record.Buffer, lo, hi int, cmp compare.Func, desc bool) int {
	pivot := buf.At(hi)
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(buf.At(j), pivot, desc) < 0 {
			buf.Swap(i, j)
			i++
		}
	}
	buf.Swap(i, hi)
	return i
}

// Merge sorts top-down with one auxiliary buffer sized to the whole array,
// allocated once per call. Stable: ties keep their original relative order.
func Merge(buf record.Buffer, cmp compare.Func, opts Options) error {
	if buf.Len() <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	tmp := make([]byte, buf.Len()*buf.Width())
	mergeSort(buf, 0, buf.Len(), cmp, opts.Order == Descending, tmp)
	return nil
}

func mergeSort(buf record.Buffer, left, right int, cmp compare.Func, desc bool, tmp []byte) {
	if right-left <= 1 {
		return
	}
	mid := left + (right-left)/2
	mergeSort(buf, left, mid, cmp, desc, tmp)
	mergeSort(buf, mid, right, cmp, desc, tmp)
	merge(buf, left, mid, right, cmp, desc, tmp)
}

func merge(buf record.Buffer, left, mid, right int, cmp compare.Func, desc bool, tmp []byte) {
	w := buf.Width()
	i, j, k := left, mid, left
	for i < mid && j < right {
		// <= keeps the left run first on ties, which is what makes
		// the sort stable.
		if cmp(buf.At(i), buf.At(j), desc) <= 0 {
			copy(tmp[k*w:(k+1)*w], buf.At(i))
			i++
		} else {
			copy(tmp[k*w:(k+1)*w], buf.At(j))
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		copy(tmp[k*w:(k+1)*w], buf.At(i))
	}
	for ; j < right; j, k = j+1, k+1 {
		copy(tmp[k*w:(k+1)*w], buf.At(j))
	}
	for m := left; m < right; m++ {
		buf.Set(m, tmp[m*w:(m+1)*w])
	}
}

// Heap sorts in place with a binary max-heap. Order is honored inside the
// heap's greater-than test via the comparator's descending flag. Not stable.
func Heap(buf record.Buffer, cmp compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	desc := opts.Order == Descending
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(buf, n, i, cmp, desc)
	}
	for i := n - 1; i > 0; i-- {
		buf.Swap(0, i)
		siftDown(buf, i, 0, cmp, desc)
	}
	return nil
}

func siftDown(buf record.Buffer, n, root int, cmp compare.Func, desc bool) {
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < n && cmp(buf.At(left), buf.At(largest), desc) > 0 {
			largest = left
		}
		if right < n && cmp(buf.At(right), buf.At(largest), desc) > 0 {
			largest = right
		}
		if largest == root {
			return
		}
		buf.Swap(root, largest)
		root = largest
	}
}

// Insertion sorts in place; quadratic, but the fastest choice for small
// buffers and the Auto default below the size threshold.
func Insertion(buf record.Buffer, cmp compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	desc := opts.Order == Descending
	tmp := make([]byte, buf.Width())
	for i := 1; i < n; i++ {
		copy(tmp, buf.At(i))
		j := i
		for j > 0 && cmp(tmp, buf.At(j-1), desc) < 0 {
			buf.Set(j, buf.At(j-1))
			j--
		}
		buf.Set(j, tmp)
	}
	return nil
}

// Shell sorts in place using the classic halving gap sequence
// (n/2, n/4, ..., 1).
func Shell(buf record.Buffer, cmp compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	desc := opts.Order == Descending
	tmp := make([]byte, buf.Width())
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			copy(tmp, buf.At(i))
			j := i
			for j >= gap && cmp(tmp, buf.At(j-gap), desc) < 0 {
				buf.Set(j, buf.At(j-gap))
				j -= gap
			}
			buf.Set(j, tmp)
		}
	}
	return nil
}

// Radix sorts strictly by the numeric value of the raw little-endian bytes,
// least significant byte first, ignoring the comparator. Supported element
// widths are 1, 2, 4, and 8 bytes. Descending order is a post-pass reversal.
func Radix(buf record.Buffer, _ compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	w := buf.Width()
	switch w {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: radix requires 1/2/4/8, got %d", ErrUnsupportedWidth, w)
	}

	out := make([]byte, n*w)
	for b := 0; b < w; b++ {
		var counts [256]int
		for i := 0; i < n; i++ {
			counts[buf.At(i)[b]]++
		}
		var pos [256]int
		sum := 0
		for v := 0; v < 256; v++ {
			pos[v] = sum
			sum += counts[v]
		}
		for i := 0; i < n; i++ {
			rec := buf.At(i)
			p := pos[rec[b]]
			pos[rec[b]]++
			copy(out[p*w:(p+1)*w], rec)
		}
		for i := 0; i < n; i++ {
			buf.Set(i, out[i*w:(i+1)*w])
		}
	}

	if opts.Order == Descending {
		buf.Reverse()
	}
	return nil
}

// Counting sorts by numeric value, ignoring the comparator. Supported element
// widths are 1, 2, and 4 bytes; the bucket array is sized to the maximum
// value present. Descending order reverses the emission order.
func Counting(buf record.Buffer, _ compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	w := buf.Width()
	switch w {
	case 1, 2, 4:
	default:
		return fmt.Errorf("%w: counting requires 1/2/4, got %d", ErrUnsupportedWidth, w)
	}

	var max uint64
	for i := 0; i < n; i++ {
		if v := record.Uint(buf.At(i)); v > max {
			max = v
		}
	}
	counts := make([]int, max+1)
	for i := 0; i < n; i++ {
		counts[record.Uint(buf.At(i))]++
	}

	idx := 0
	emit := func(v uint64) {
		for c := counts[v]; c > 0; c-- {
			record.PutUint(buf.At(idx), v)
			idx++
		}
	}
	if opts.Order == Descending {
		for v := max; ; v-- {
			emit(v)
			if v == 0 {
				break
			}
		}
	} else {
		for v := uint64(0); v <= max; v++ {
			emit(v)
		}
	}
	return nil
}

// Bubble sorts in place, exiting early once a full pass makes no swap.
// Kept for small and didactic use, not for asymptotic guarantees.
func Bubble(buf record.Buffer, cmp compare.Func, opts Options) error {
	n := buf.Len()
	if n <= 1 {
		return nil
	}
	if cmp == nil {
		return ErrInvalidInput
	}
	desc := opts.Order == Descending
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if cmp(buf.At(j), buf.At(j+1), desc) > 0 {
				buf.Swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return nil
}
