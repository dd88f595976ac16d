// Package compare provides the total-order comparators backing the sort and
// search engines.
//
// A comparator receives two raw elements and an explicit descending flag and
// returns negative/zero/positive. Descending order is applied by swapping the
// operands at the comparison site, never by negating the result, so equal
// values (including float boundary cases) keep returning zero.
package compare

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/arrkit/arrkit/kind"
	"github.com/arrkit/arrkit/record"
)

// ErrUnsupportedKind is returned by Provider for kinds with no total order
// (any, null) or identifiers outside the closed vocabulary.
var ErrUnsupportedKind = errors.New("compare: no comparator for kind")

// Func is a total-order comparator over two equally sized raw elements.
type Func func(a, b []byte, desc bool) int

// StringTable resolves cstr handles to string values. Elements of kind cstr
// are 8-byte handles: handle 0 and out-of-range handles resolve to the empty
// string, handles 1..len(t) resolve to t[handle-1].
type StringTable []string

// Lookup returns the string for a handle, or "" for the null handle and any
// handle outside the table.
func (t StringTable) Lookup(handle uint64) string {
	if handle == 0 || handle > uint64(len(t)) {
		return ""
	}
	return t[handle-1]
}

// ordered builds a comparator from an element loader. The single generic
// body covers every integer, float, and byte-shaped kind.
func ordered[T cmp.Ordered](load func([]byte) T) Func {
	return func(a, b []byte, desc bool) int {
		va, vb := load(a), load(b)
		if desc {
			va, vb = vb, va
		}
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	}
}

func cstr(table StringTable) Func {
	return func(a, b []byte, desc bool) int {
		sa := table.Lookup(record.Uint(a))
		sb := table.Lookup(record.Uint(b))
		if desc {
			sa, sb = sb, sa
		}
		return strings.Compare(sa, sb)
	}
}

func loadF32(rec []byte) float32 {
	return math.Float32frombits(uint32(record.Uint(rec)))
}

func loadF64(rec []byte) float64 {
	return math.Float64frombits(record.Uint(rec))
}

func loadBool(rec []byte) uint8 {
	if rec[0] != 0 {
		return 1
	}
	return 0
}

// Provider returns the comparator for a kind. The table is consulted only
// for kind.CStr; a nil table resolves every handle to the empty string.
func Provider(k kind.Kind, table StringTable) (Func, error) {
	switch k {
	case kind.I8, kind.I16, kind.I32, kind.I64, kind.Datetime, kind.Duration:
		return ordered(record.Int), nil
	case kind.U8, kind.U16, kind.U32, kind.U64, kind.Size, kind.Hex, kind.Oct, kind.Bin:
		return ordered(record.Uint), nil
	case kind.F32:
		return ordered(loadF32), nil
	case kind.F64:
		return ordered(loadF64), nil
	case kind.Bool:
		// true > false in ascending order.
		return ordered(loadBool), nil
	case kind.Char:
		return ordered(func(rec []byte) byte { return rec[0] }), nil
	case kind.CStr:
		return cstr(table), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
}
