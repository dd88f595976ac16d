package compare

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrkit/arrkit/kind"
)

func i32rec(v int32) []byte {
	rec := make([]byte, 4)
	binary.LittleEndian.PutUint32(rec, uint32(v))
	return rec
}

func u64rec(v uint64) []byte {
	rec := make([]byte, 8)
	binary.LittleEndian.PutUint64(rec, v)
	return rec
}

func f64rec(v float64) []byte {
	return u64rec(math.Float64bits(v))
}

func f32rec(v float32) []byte {
	rec := make([]byte, 4)
	binary.LittleEndian.PutUint32(rec, math.Float32bits(v))
	return rec
}

func TestProviderInt(t *testing.T) {
	tests := []struct {
		name string
		k    kind.Kind
		a, b []byte
		want int
	}{
		{"I32Less", kind.I32, i32rec(-5), i32rec(3), -1},
		{"I32Greater", kind.I32, i32rec(7), i32rec(3), 1},
		{"I32Equal", kind.I32, i32rec(42), i32rec(42), 0},
		{"I8SignExtend", kind.I8, []byte{0xFF}, []byte{0x01}, -1}, // -1 < 1
		{"U8NoSignExtend", kind.U8, []byte{0xFF}, []byte{0x01}, 1},
		{"U64Large", kind.U64, u64rec(1 << 63), u64rec(1), 1},
		{"DatetimeSigned", kind.Datetime, u64rec(^uint64(0)), u64rec(0), -1}, // -1 < 0
		{"HexUnsigned", kind.Hex, u64rec(^uint64(0)), u64rec(0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Provider(tt.k, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmp(tt.a, tt.b, false))
			// Descending swaps operands at the comparison site.
			assert.Equal(t, -tt.want, cmp(tt.a, tt.b, true))
		})
	}
}

func TestProviderFloat(t *testing.T) {
	cmp64, err := Provider(kind.F64, nil)
	require.NoError(t, err)

	assert.Equal(t, -1, cmp64(f64rec(1.5), f64rec(2.5), false))
	assert.Equal(t, 1, cmp64(f64rec(1.5), f64rec(2.5), true))
	assert.Equal(t, 0, cmp64(f64rec(3.25), f64rec(3.25), false))
	assert.Equal(t, 0, cmp64(f64rec(3.25), f64rec(3.25), true))
	assert.Equal(t, 1, cmp64(f64rec(-1), f64rec(-2), false))

	// NaN compares equal to everything in both directions, matching the
	// strict less-than/greater-than probes.
	nan := f64rec(math.NaN())
	assert.Equal(t, 0, cmp64(nan, f64rec(1), false))
	assert.Equal(t, 0, cmp64(nan, f64rec(1), true))

	cmp32, err := Provider(kind.F32, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp32(f32rec(-0.5), f32rec(0.5), false))
	assert.Equal(t, 1, cmp32(f32rec(-0.5), f32rec(0.5), true))
}

func TestProviderBool(t *testing.T) {
	cmp, err := Provider(kind.Bool, nil)
	require.NoError(t, err)

	// true > false ascending.
	assert.Equal(t, 1, cmp([]byte{1}, []byte{0}, false))
	assert.Equal(t, -1, cmp([]byte{0}, []byte{1}, false))
	assert.Equal(t, 0, cmp([]byte{1}, []byte{1}, false))
	// Any non-zero byte is true.
	assert.Equal(t, 0, cmp([]byte{0x7F}, []byte{1}, false))
}

func TestProviderChar(t *testing.T) {
	cmp, err := Provider(kind.Char, nil)
	require.NoError(t, err)

	assert.Equal(t, -1, cmp([]byte{'a'}, []byte{'b'}, false))
	assert.Equal(t, 1, cmp([]byte{'a'}, []byte{'b'}, true))
	assert.Equal(t, 0, cmp([]byte{'x'}, []byte{'x'}, false))
}

func TestProviderCStr(t *testing.T) {
	table := StringTable{"banana", "apple", "apple"}
	cmp, err := Provider(kind.CStr, table)
	require.NoError(t, err)

	// Handles are 1-based.
	assert.Equal(t, 1, cmp(u64rec(1), u64rec(2), false))  // banana > apple
	assert.Equal(t, -1, cmp(u64rec(1), u64rec(2), true))  //
	assert.Equal(t, 0, cmp(u64rec(2), u64rec(3), false))  // equal strings, distinct handles
	assert.Equal(t, -1, cmp(u64rec(0), u64rec(2), false)) // null handle reads as ""
	assert.Equal(t, 0, cmp(u64rec(0), u64rec(99), false)) // out of range reads as ""

	// A nil table resolves every handle to the empty string.
	cmpNil, err := Provider(kind.CStr, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cmpNil(u64rec(1), u64rec(7), false))
}

func TestProviderUnsupported(t *testing.T) {
	for _, k := range []kind.Kind{kind.Any, kind.Null, kind.Invalid} {
		_, err := Provider(k, nil)
		assert.ErrorIs(t, err, ErrUnsupportedKind, "kind %s", k)
	}
}

func TestStringTableLookup(t *testing.T) {
	table := StringTable{"a", "b"}
	assert.Equal(t, "", table.Lookup(0))
	assert.Equal(t, "a", table.Lookup(1))
	assert.Equal(t, "b", table.Lookup(2))
	assert.Equal(t, "", table.Lookup(3))
	assert.Equal(t, "", StringTable(nil).Lookup(1))
}
