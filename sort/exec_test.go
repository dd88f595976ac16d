package sort

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrkit/arrkit/compare"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"i8", 1}, {"u8", 1}, {"bool", 1}, {"char", 1},
		{"i16", 2}, {"u16", 2},
		{"i32", 4}, {"u32", 4}, {"f32", 4},
		{"i64", 8}, {"u64", 8}, {"f64", 8}, {"size", 8}, {"cstr", 8},
		{"hex", 8}, {"oct", 8}, {"bin", 8}, {"datetime", 8}, {"duration", 8},
		{"any", 0}, {"null", 0}, {"", 0}, {"notatype", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeOf(tt.id))
			assert.Equal(t, tt.want != 0, Supported(tt.id))
		})
	}
}

func TestExecMergeDescI32(t *testing.T) {
	data := packI32(1, 4, 2, 8, 6)
	status := Exec(data, 5, "i32", "merge", "desc")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []int32{8, 6, 4, 2, 1}, unpackI32(data))
}

func TestExecCountingAscU8(t *testing.T) {
	data := []byte{5, 1, 3, 2, 4}
	status := Exec(data, 5, "u8", "counting", "asc")
	require.Equal(t, StatusOK, status)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, data)
}

func TestExecF64HeapAsc(t *testing.T) {
	vals := []float64{3.5, -1.25, 9.75, 0}
	data := make([]byte, 32)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
	}
	require.Equal(t, StatusOK, Exec(data, 4, "f64", "heap", "asc"))

	got := make([]float64, 4)
	for i := range got {
		got[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	assert.Equal(t, []float64{-1.25, 0, 3.5, 9.75}, got)
}

func TestExecCStrInsertionDesc(t *testing.T) {
	table := compare.StringTable{"cherry", "apple", "banana"}
	data := packI64(1, 2, 3)
	status := Exec(data, 3, "cstr", "insertion", "desc", WithStringTable(table))
	require.Equal(t, StatusOK, status)
	// cherry > banana > apple
	assert.Equal(t, []int64{1, 3, 2}, unpackI64(data))
}

func TestExecDatetimeAlias(t *testing.T) {
	// datetime sorts as a signed 64-bit integer.
	data := packI64(100, -5, 7)
	require.Equal(t, StatusOK, Exec(data, 3, "datetime", "quick", "asc"))
	assert.Equal(t, []int64{-5, 7, 100}, unpackI64(data))
}

func TestExecDefaultsToAuto(t *testing.T) {
	data := packI32(3, 1, 2)
	require.Equal(t, StatusOK, Exec(data, 3, "i32", "", ""))
	assert.Equal(t, []int32{1, 2, 3}, unpackI32(data))
}

func TestExecFailures(t *testing.T) {
	valid := packI32(3, 1, 2)

	t.Run("NilBase", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(nil, 3, "i32", "quick", "asc"))
	})
	t.Run("ZeroCount", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(valid, 0, "i32", "quick", "asc"))
	})
	t.Run("EmptyTypeID", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(valid, 3, "", "quick", "asc"))
	})
	t.Run("ShortBuffer", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(valid, 4, "i32", "quick", "asc"))
	})
	t.Run("UnknownType", func(t *testing.T) {
		assert.Equal(t, StatusUnknownType, Exec(valid, 3, "notatype", "quick", "asc"))
	})
	t.Run("AnyUnsupported", func(t *testing.T) {
		assert.Equal(t, StatusUnknownType, Exec(valid, 3, "any", "quick", "asc"))
	})
	t.Run("UnknownAlgorithm", func(t *testing.T) {
		assert.Equal(t, StatusUnknownAlgorithm, Exec(valid, 3, "i32", "notalgo", "asc"))
	})
	t.Run("CountingU64Width", func(t *testing.T) {
		data := packI64(2, 1)
		assert.Equal(t, StatusUnsupportedWidth, Exec(data, 2, "u64", "counting", "asc"))
	})

	t.Run("NoMutationOnFailure", func(t *testing.T) {
		data := packI32(3, 1, 2)
		Exec(data, 3, "i32", "notalgo", "asc")
		assert.Equal(t, []int32{3, 1, 2}, unpackI32(data))
	})
}
