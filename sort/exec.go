package sort

import (
	"errors"

	"github.com/arrkit/arrkit/compare"
	"github.com/arrkit/arrkit/kind"
	"github.com/arrkit/arrkit/record"
)

// Exec status codes.
const (
	StatusOK               = 0
	StatusInvalidInput     = -1
	StatusUnknownType      = -2
	StatusUnknownAlgorithm = -3

	// StatusUnsupportedWidth reports a width-restricted algorithm (radix,
	// counting) given an element width it cannot sort.
	StatusUnsupportedWidth = -4
)

// Algorithm is the common shape of every sorting algorithm in this package.
type Algorithm func(record.Buffer, compare.Func, Options) error

// algorithms is the closed identifier vocabulary, built once so that Exec
// never re-matches strings per element.
var algorithms = map[string]Algorithm{
	"auto":      Auto,
	"quick":     Quick,
	"merge":     Merge,
	"heap":      Heap,
	"insertion": Insertion,
	"shell":     Shell,
	"radix":     Radix,
	"counting":  Counting,
	"bubble":    Bubble,
}

// SizeOf returns the element width in bytes for a type identifier, or 0 for
// unrecognized or unsupported identifiers. The sort engine aliases hex, oct
// and bin to u64 and datetime/duration to i64; any and null are unsupported.
func SizeOf(typeID string) int {
	return kindWidth(kind.Parse(typeID))
}

// Supported reports whether the sort engine accepts the type identifier.
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
	case kind.I64, kind.U64, kind.F64, kind.Size, kind.CStr,
		kind.Hex, kind.Oct, kind.Bin, kind.Datetime, kind.Duration:
		return 8
	default:
		return 0
	}
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

// Exec sorts base in place using string-selected type, algorithm, and order.
// base holds count elements encoded per the type identifier; an empty or
// unrecognized-but-default-friendly algorithm identifier of "" selects auto.
//
// Returns StatusOK, or a negative status: StatusInvalidInput for a nil or
// short buffer, zero count, or missing type identifier; StatusUnknownType for
// an identifier outside the closed vocabulary; StatusUnknownAlgorithm for an
// unrecognized algorithm; StatusUnsupportedWidth when radix/counting reject
// the element width. Inputs rejected with a status are never mutated.
func Exec(base []byte, count int, typeID, algorithmID, orderID string, opts ...ExecOption) int {
	if base == nil || count == 0 || typeID == "" {
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

	if err := algo(buf, cmp, Options{Order: parseOrder(orderID)}); err != nil {
		return statusOf(err)
	}
	return StatusOK
}

func parseOrder(orderID string) Order {
	if orderID == "desc" {
		return Descending
	}
	return Ascending
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedWidth):
		return StatusUnsupportedWidth
	default:
		return StatusInvalidInput
	}
}
