package search

import (
	"github.com/arrkit/arrkit/compare"
	"github.com/arrkit/arrkit/kind"
	"github.com/arrkit/arrkit/record"
)

// algorithmFn is the common shape of every search algorithm in this package.
type algorithmFn func(record.Buffer, []byte, compare.Func, bool) int

// The closed algorithm vocabulary. "auto" and the empty identifier resolve
// to linear, the only algorithm safe on unsorted input.
var algorithms = map[string]algorithmFn{
	"auto":          Linear,
	"linear":        Linear,
	"binary":        Binary,
	"jump":          Jump,
	"interpolation": Interpolation,
	"exponential":   Exponential,
	"fibonacci":     Fibonacci,
}

// SizeOf returns the element width in bytes for a type identifier, or 0 for
// unrecognized or unsupported identifiers. Unlike the sort engine, the search
// engine treats hex, oct, bin, datetime, and duration as unsupported.
func SizeOf(typeID string) int {
	return kindWidth(kind.Parse(typeID))
}

// Supported reports whether the search engine accepts the type identifier.
func Supported(typeID string) bool {
	return SizeOf(typeID) != 0
}

func kindWidth(k kind.Kind) int {
	switch k {
	case kind.I8, kind.U8, kind.Bool, kind.Char:
		return 1
	case kind.I16, kind.U16:
		return 2
	case kind.I32, kind.U32, kind.F32:
		return 4
	case kind.I64, kind.U64, kind.F64, kind.Size, kind.CStr:
		return 8
	default:
		return 0
	}
}

// interpolationKind reports whether interpolation search supports the kind:
// only elements that decode as 32- or 64-bit signed integers qualify.
func interpolationKind(k kind.Kind) bool {
	return k == kind.I32 || k == kind.I64
}

type execOptions struct {
	strings compare.StringTable
}

// ExecOption configures a single Exec call.
type ExecOption func(*execOptions)

// WithStringTable supplies the table that cstr handles resolve against.
func WithStringTable(table compare.StringTable) ExecOption {
	return func(o *execOptions) {
		o.strings = table
	}
}

// Exec searches base for key using string-selected type, algorithm, and
// order. base holds count elements encoded per the type identifier; key is a
// single element of the same width. The buffer is never mutated.
//
// Returns a zero-based index on success, or a negative status:
// StatusNotFound for a well-formed query with no match; StatusInvalidInput
// for a nil or short buffer or key, zero count, or missing type identifier;
// StatusUnknownType for an identifier outside the vocabulary;
// StatusUnknownAlgorithm for an unrecognized algorithm or one that does not
// support the element type. The four outcomes stay distinguishable.
func Exec(base []byte, count int, key []byte, typeID, algorithmID, orderID string, opts ...ExecOption) int {
	if base == nil || key == nil || count == 0 || typeID == "" {
		return StatusInvalidInput
	}

	var o execOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	k := kind.Parse(typeID)
	width := kindWidth(k)
	if width == 0 {
		return StatusUnknownType
	}
	buf, err := record.Wrap(base, count, width)
	if err != nil {
		return StatusInvalidInput
	}
	if len(key) < width {
		return StatusInvalidInput
	}
	cmp, err := compare.Provider(k, o.strings)
	if err != nil {
		return StatusUnknownType
	}

	if algorithmID == "" {
		algorithmID = "auto"
	}
	algo, ok := algorithms[algorithmID]
	if !ok {
		return StatusUnknownAlgorithm
	}
	if algorithmID == "interpolation" && !interpolationKind(k) {
		return StatusUnknownAlgorithm
	}

	return algo(buf, key[:width], cmp, orderID == "desc")
}
