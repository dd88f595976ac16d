// Package arrkit provides a runtime-configurable array algorithm engine for Go.
//
// Arrkit sorts, searches, and shuffles buffers of homogeneous fixed-width
// elements in place, selecting the element type, algorithm, and order or mode
// from string identifiers supplied at call time. It targets callers such as
// scripting layers and configuration-driven pipelines that know an element's
// logical type only as a string at the call site and cannot supply a
// statically typed comparator.
//
// # Engines
//
// Three engines share one type vocabulary and dispatch model:
//
//   - sort: auto, quick, merge, heap, insertion, shell, radix, counting, bubble
//   - search: auto (=linear), linear, binary, jump, interpolation, exponential, fibonacci
//   - shuffle: auto (=fisher-yates), fisher-yates, inside-out
//
// Each engine exposes one string-dispatched Exec entry point plus SizeOf and
// Supported type introspection. Buffers are raw []byte slices of count
// elements, little-endian for multi-byte values; every element access is
// bounds-checked, so a validated call never touches bytes outside
// [0, count*width).
//
// # Quick Start
//
// Direct engine use:
//
//	buf := []byte{...}                                // 5 little-endian int32 values
//	status := sort.Exec(buf, 5, "i32", "merge", "desc")
//	idx := search.Exec(buf, 5, key, "i32", "binary", "desc")
//	shuffle.Exec(buf, 5, "i32", "fisher-yates", "seeded", 42)
//
// Or through the facade, which adds structured logging and metrics:
//
//	eng := arrkit.New(
//	    arrkit.WithLogLevel(slog.LevelDebug),
//	    arrkit.WithMetricsCollector(&arrkit.BasicMetricsCollector{}),
//	)
//	status := eng.Sort(buf, 5, "i32", "auto", "asc")
//
// # Status Codes
//
// Every Exec reports outcomes synchronously through its return value; the
// codes per engine are documented on the engine packages. Callers preferring
// errors can translate codes with SortStatusError, SearchStatusError, and
// ShuffleStatusError.
//
// # Ownership
//
// Every call is synchronous and stateless: the engine owns the buffer only
// for the call's duration and retains nothing between calls. Sort and shuffle
// mutate the buffer; search treats it as immutable. Callers must not touch a
// buffer concurrently with a sort or shuffle of it; SortBatch runs jobs
// concurrently only across disjoint buffers.
package arrkit
