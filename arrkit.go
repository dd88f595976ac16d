package arrkit

import (
	"time"

	"github.com/arrkit/arrkit/compare"
	"github.com/arrkit/arrkit/search"
	"github.com/arrkit/arrkit/shuffle"
	"github.com/arrkit/arrkit/sort"
)

// Engine is the facade over the three algorithm engines, adding structured
// logging and metrics around the string-dispatched Exec entry points.
//
// Engine holds no buffer state: every method is a one-shot synchronous call
// that owns its buffer only for the call's duration. An Engine is safe for
// concurrent use as long as no two concurrent calls mutate the same buffer.
type Engine struct {
	logger  *Logger
	metrics MetricsCollector
	strings compare.StringTable
}

// New creates an Engine. Without options it neither logs nor collects
// metrics.
func New(optFns ...Option) *Engine {
	o := applyOptions(optFns)
	return &Engine{
		logger:  o.logger,
		metrics: o.metrics,
		strings: o.strings,
	}
}

// Sort sorts base in place. See the sort package for the identifier
// vocabularies and status codes.
func (e *Engine) Sort(base []byte, count int, typeID, algorithmID, orderID string) int {
	start := time.Now()
	status := sort.Exec(base, count, typeID, algorithmID, orderID,
		sort.WithStringTable(e.strings))
	e.metrics.RecordSort(count, time.Since(start), status)
	e.logger.LogSort(typeID, algorithmID, orderID, count, status)
	return status
}

// Search searches base for key without mutating it. Returns a zero-based
// index or a negative status; see the search package.
func (e *Engine) Search(base []byte, count int, key []byte, typeID, algorithmID, orderID string) int {
	start := time.Now()
	result := search.Exec(base, count, key, typeID, algorithmID, orderID,
		search.WithStringTable(e.strings))
	e.metrics.RecordSearch(count, time.Since(start), result)
	e.logger.LogSearch(typeID, algorithmID, orderID, count, result)
	return result
}

// Shuffle permutes base in place. See the shuffle package for modes and
// status codes.
func (e *Engine) Shuffle(base []byte, count int, typeID, algorithmID, modeID string, seed uint64) int {
	start := time.Now()
	status := shuffle.Exec(base, count, typeID, algorithmID, modeID, seed)
	e.metrics.RecordShuffle(count, time.Since(start), status)
	e.logger.LogShuffle(typeID, algorithmID, modeID, count, status)
	return status
}

// SortSizeOf returns the sort engine's element width for a type identifier,
// or 0 if unsupported.
func (e *Engine) SortSizeOf(typeID string) int { return sort.SizeOf(typeID) }

// SearchSizeOf returns the search engine's element width for a type
// identifier, or 0 if unsupported.
func (e *Engine) SearchSizeOf(typeID string) int { return search.SizeOf(typeID) }

// ShuffleSizeOf returns the shuffle engine's element width for a type
// identifier, or 0 if unsupported.
func (e *Engine) ShuffleSizeOf(typeID string) int { return shuffle.SizeOf(typeID) }
