package search

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

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
		// Unlike sort, the alias kinds are unsupported here.
		{"hex", 0}, {"oct", 0}, {"bin", 0},
		{"datetime", 0}, {"duration", 0},
		{"any", 0}, {"null", 0}, {"", 0}, {"notatype", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeOf(tt.id))
			assert.Equal(t, tt.want != 0, Supported(tt.id))
		})
	}
}

func TestExecInterpolationI32(t *testing.T) {
	data := packI32(10, 20, 30, 40, 50)
	assert.Equal(t, 2, Exec(data, 5, i32key(30), "i32", "interpolation", "asc"))
	assert.Equal(t, StatusNotFound, Exec(data, 5, i32key(35), "i32", "interpolation", "asc"))
}

func TestExecAlgorithms(t *testing.T) {
	data := packI32(10, 20, 30, 40, 50)
	for _, algo := range []string{"auto", "linear", "binary", "jump", "interpolation", "exponential", "fibonacci"} {
		t.Run(algo, func(t *testing.T) {
			assert.Equal(t, 3, Exec(data, 5, i32key(40), "i32", algo, "asc"))
			assert.Equal(t, StatusNotFound, Exec(data, 5, i32key(41), "i32", algo, "asc"))
		})
	}
}

func TestExecEmptyAlgorithmIsLinear(t *testing.T) {
	// Unsorted input: only the linear default can find the key.
	data := packI32(40, 10, 30)
	assert.Equal(t, 2, Exec(data, 3, i32key(30), "i32", "", "asc"))
}

func TestExecDescending(t *testing.T) {
	data := packI32(50, 40, 30, 20, 10)
	assert.Equal(t, 1, Exec(data, 5, i32key(40), "i32", "binary", "desc"))
	assert.Equal(t, 4, Exec(data, 5, i32key(10), "i32", "interpolation", "desc"))
}

func TestExecCStr(t *testing.T) {
	table := compare.StringTable{"apple", "banana", "cherry"}
	data := make([]byte, 24)
	for i, h := range []uint64{1, 2, 3} {
		binary.LittleEndian.PutUint64(data[i*8:], h)
	}
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, 2)

	idx := Exec(data, 3, key, "cstr", "binary", "asc", WithStringTable(table))
	assert.Equal(t, 1, idx)
}

func TestExecInterpolationUnsupportedKinds(t *testing.T) {
	// Width coincides with i32/i64, but interpolation is restricted to the
	// signed integer kinds.
	f32buf := make([]byte, 20)
	for i, v := range []float32{1, 2, 3, 4, 5} {
		binary.LittleEndian.PutUint32(f32buf[i*4:], math.Float32bits(v))
	}
	key := make([]byte, 4)
	binary.LittleEndian.PutUint32(key, math.Float32bits(3))
	assert.Equal(t, StatusUnknownAlgorithm, Exec(f32buf, 5, key, "f32", "interpolation", "asc"))

	u64buf := make([]byte, 16)
	assert.Equal(t, StatusUnknownAlgorithm, Exec(u64buf, 2, make([]byte, 8), "u64", "interpolation", "asc"))
}

func TestExecFailures(t *testing.T) {
	data := packI32(10, 20, 30)
	key := i32key(20)

	t.Run("NilBase", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(nil, 3, key, "i32", "linear", "asc"))
	})
	t.Run("NilKey", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(data, 3, nil, "i32", "linear", "asc"))
	})
	t.Run("ZeroCount", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(data, 0, key, "i32", "linear", "asc"))
	})
	t.Run("EmptyTypeID", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(data, 3, key, "", "linear", "asc"))
	})
	t.Run("ShortKey", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(data, 3, []byte{20}, "i32", "linear", "asc"))
	})
	t.Run("ShortBuffer", func(t *testing.T) {
		assert.Equal(t, StatusInvalidInput, Exec(data, 4, key, "i32", "linear", "asc"))
	})
	t.Run("UnknownType", func(t *testing.T) {
		assert.Equal(t, StatusUnknownType, Exec(data, 3, key, "notatype", "linear", "asc"))
	})
	t.Run("DatetimeUnsupportedHere", func(t *testing.T) {
		assert.Equal(t, StatusUnknownType, Exec(data, 3, key, "datetime", "linear", "asc"))
	})
	t.Run("UnknownAlgorithm", func(t *testing.T) {
		assert.Equal(t, StatusUnknownAlgorithm, Exec(data, 3, key, "i32", "notalgo", "asc"))
	})
}
