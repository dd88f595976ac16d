// Package shuffle implements the randomized permutation engine: Fisher-Yates
// and inside-out shuffles over fixed-width element buffers, with a mode-aware
// seed derivation step performed once before dispatch.
package shuffle

import (
	crand "crypto/rand"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/arrkit/arrkit/kind"
	"github.com/arrkit/arrkit/record"
)

// Exec status codes.
const (
	StatusOK               = 0
	StatusInvalidInput     = -1
	StatusUnknownType      = -2
	StatusUnknownAlgorithm = -3
)

// Seed derivation modes. Unrecognized modes fall back to ModeAuto.
const (
	ModeAuto   = "auto"
	ModeSeeded = "seeded"
	ModeSecure = "secure"
)

// SizeOf returns the element width in bytes for a type identifier, or 0 for
// unrecognized identifiers. The shuffle engine is the most permissive of the
// three: it never compares values, so even any/null are accepted at pointer
// width.
func SizeOf(typeID string) int {
	switch kind.Parse(typeID) {
	case kind.I8, kind.U8, kind.Bool, kind.Char:
		return 1
	case kind.I16, kind.U16:
		return 2
	case kind.I32, kind.U32, kind.F32:
		return 4
	case kind.I64, kind.U64, kind.F64, kind.Size, kind.CStr,
		kind.Hex, kind.Oct, kind.Bin, kind.Datetime, kind.Duration,
		kind.Any, kind.Null:
		return 8
	default:
		return 0
	}
}

// Supported reports whether the shuffle engine accepts the type identifier.
func Supported(typeID string) bool {
	return SizeOf(typeID) != 0
}

var seedCounter atomic.Uint64

// autoSeed derives a weak, non-cryptographic seed from the current time
// mixed with a per-process counter perturbation. Adequate only for
// non-adversarial shuffling.
func autoSeed() uint64 {
	return uint64(time.Now().UnixNano()) ^ (seedCounter.Add(1) * 0x9e3779b97f4a7c15)
}

// DeriveSeed resolves the caller's seed and mode identifier into the seed
// the shuffle will actually use.
//
// ModeSeeded uses the caller's seed verbatim, substituting a time-derived
// seed only for a zero seed. ModeSecure reads the seed from crypto/rand and
// falls back to the weak automatic derivation only if that read fails.
// ModeAuto and unrecognized modes use the automatic derivation.
func DeriveSeed(seed uint64, modeID string) uint64 {
	switch modeID {
	case ModeSeeded:
		if seed != 0 {
			return seed
		}
		return uint64(time.Now().UnixNano())
	case ModeSecure:
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			return record.Uint(b[:])
		}
		return autoSeed()
	default:
		return autoSeed()
	}
}

// newRNG builds the one generator instance used for a single shuffle call,
// seeded exactly once from the derived seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed))) // nolint gosec
}

// FisherYates shuffles in place, iterating from the last index down to 1 and
// swapping element i with a uniformly chosen element in [0, i]. Repeatable
// given the same seed.
func FisherYates(buf record.Buffer, seed uint64) {
	rng := newRNG(seed)
	for i := buf.Len() - 1; i > 0; i-- {
		buf.Swap(i, rng.Intn(i+1))
	}
}

// InsideOut shuffles in place, iterating from index 1 upward and swapping
// element i with a uniformly chosen element in [0, i] when the choice differs
// from i. Same permutation distribution as FisherYates, different access
// pattern.
func InsideOut(buf record.Buffer, seed uint64) {
	rng := newRNG(seed)
	for i := 1; i < buf.Len(); i++ {
		if j := rng.Intn(i + 1); j != i {
			buf.Swap(i, j)
		}
	}
}

// Exec shuffles base in place using string-selected type, algorithm, and
// seed mode. An empty algorithm identifier or "auto" selects Fisher-Yates.
//
// Returns StatusOK, or a negative status: StatusInvalidInput for a nil or
// short buffer, zero count, or missing type identifier; StatusUnknownType
// for an identifier outside the vocabulary; StatusUnknownAlgorithm for an
// unrecognized algorithm. Inputs rejected with a status are never mutated.
func Exec(base []byte, count int, typeID, algorithmID, modeID string, seed uint64) int {
	if base == nil || count == 0 || typeID == "" {
		return StatusInvalidInput
	}
	width := SizeOf(typeID)
	if width == 0 {
		return StatusUnknownType
	}
	buf, err := record.Wrap(base, count, width)
	if err != nil {
		return StatusInvalidInput
	}

	switch algorithmID {
	case "", "auto", "fisher-yates":
		FisherYates(buf, DeriveSeed(seed, modeID))
	case "inside-out":
		InsideOut(buf, DeriveSeed(seed, modeID))
	default:
		return StatusUnknownAlgorithm
	}
	return StatusOK
}
