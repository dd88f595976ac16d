// Package kind defines the closed vocabulary of element type identifiers
// shared by the sort, search, and shuffle engines.
//
// A Kind names the logical type of a buffer element (e.g. a signed 32-bit
// integer). Each engine resolves a Kind to a byte width through its own
// table, because the engines deliberately disagree about which kinds they
// support (search rejects datetime/duration, shuffle accepts any/null).
package kind

import "fmt"

// Kind is one element type from the closed identifier vocabulary.
type Kind int

const (
	Invalid Kind = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	Bool
	Char
	CStr
	Size
	Hex
	Oct
	Bin
	Datetime
	Duration
	Any
	Null
)

var names = map[Kind]string{
	I8:       "i8",
	I16:      "i16",
	I32:      "i32",
	I64:      "i64",
	U8:       "u8",
	U16:      "u16",
	U32:      "u32",
	U64:      "u64",
	F32:      "f32",
	F64:      "f64",
	Bool:     "bool",
	Char:     "char",
	CStr:     "cstr",
	Size:     "size",
	Hex:      "hex",
	Oct:      "oct",
	Bin:      "bin",
	Datetime: "datetime",
	Duration: "duration",
	Any:      "any",
	Null:     "null",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, n := range names {
		m[n] = k
	}
	return m
}()

// Parse resolves a type identifier string to its Kind.
// Unrecognized identifiers (including the empty string) yield Invalid.
func Parse(typeID string) Kind {
	return byName[typeID]
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Invalid(%d)", int(k))
}

// Integer reports whether k is an integer-valued kind, including the
// numeric-alias kinds that share an integer representation.
func (k Kind) Integer() bool {
	switch k {
	case I8, I16, I32, I64, U8, U16, U32, U64, Size, Hex, Oct, Bin, Datetime, Duration:
		return true
	default:
		return false
	}
}

// Signed reports whether k compares as a signed integer.
func (k Kind) Signed() bool {
	switch k {
	case I8, I16, I32, I64, Datetime, Duration:
		return true
	default:
		return false
	}
}
