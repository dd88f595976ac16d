package arrkit

import (
	"errors"
	"fmt"

	"github.com/arrkit/arrkit/search"
	"github.com/arrkit/arrkit/shuffle"
	"github.com/arrkit/arrkit/sort"
)

var (
	// ErrInvalidInput is returned for nil or short buffers or keys, zero
	// counts, and missing required identifiers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownType is returned for a type identifier outside the engine's
	// closed vocabulary.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAlgorithm is returned for an algorithm identifier outside
	// the engine's vocabulary, or one unsupported for the element type.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnsupportedWidth is returned when a width-restricted sort
	// algorithm rejects the element width.
	ErrUnsupportedWidth = errors.New("unsupported element width")

	// ErrNotFound is returned by search translation for a well-formed
	// query with no matching element.
	ErrNotFound = errors.New("not found")
)

// SortStatusError translates a sort Exec status into an error, or nil for
// StatusOK.
func SortStatusError(status int) error {
	switch status {
	case sort.StatusOK:
		return nil
	case sort.StatusInvalidInput:
		return ErrInvalidInput
	case sort.StatusUnknownType:
		return ErrUnknownType
	case sort.StatusUnknownAlgorithm:
		return ErrUnknownAlgorithm
	case sort.StatusUnsupportedWidth:
		return ErrUnsupportedWidth
	default:
		return fmt.Errorf("sort: unexpected status %d", status)
	}
}

// SearchStatusError translates a search Exec result into an error: nil for
// any index at or above zero.
func SearchStatusError(status int) error {
	switch {
	case status >= 0:
		return nil
	case status == search.StatusNotFound:
		return ErrNotFound
	case status == search.StatusInvalidInput:
		return ErrInvalidInput
	case status == search.StatusUnknownType:
		return ErrUnknownType
	case status == search.StatusUnknownAlgorithm:
		return ErrUnknownAlgorithm
	default:
		return fmt.Errorf("search: unexpected status %d", status)
	}
}

// ShuffleStatusError translates a shuffle Exec status into an error, or nil
// for StatusOK.
func ShuffleStatusError(status int) error {
	switch status {
	case shuffle.StatusOK:
		return nil
	case shuffle.StatusInvalidInput:
		return ErrInvalidInput
	case shuffle.StatusUnknownType:
		return ErrUnknownType
	case shuffle.StatusUnknownAlgorithm:
		return ErrUnknownAlgorithm
	default:
		return fmt.Errorf("shuffle: unexpected status %d", status)
	}
}
