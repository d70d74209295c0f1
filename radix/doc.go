// Package radix provides an allocation-free LSD radix sort over caller
// supplied buffers, with an adaptive fallback to comparison sort.
//
// # Algorithm
//
// Keys are described by a Key, an ordered schema of primitive fields. Each
// field is mapped to an unsigned integer whose order matches the field's
// natural order, then sorted with one stable counting pass per byte,
// least significant byte first. Composite keys sort their fields from the
// least to the most significant one, so the last pass decides ties of
// the earlier ones without disturbing them.
//
// Every pass moves all elements from one buffer to the other. Nothing is
// copied back: the sort functions return a flag telling which buffer
// holds the result.
//
// # Supported Keys
//
//   - bool (false before true)
//   - signed and unsigned integers of 1, 2, 4 and 8 bytes
//   - float32, float64 (the placement of NaN is unspecified)
//   - uint16 and rune character code units, compared unsigned
//   - pairs, tuples and fixed-size arrays of the above, nested freely
//
// # Example Usage
//
//	type point struct{ x, y int32 }
//
//	key := radix.Pair(
//	    radix.Of(func(p point) int32 { return p.x }),
//	    radix.Of(func(p point) int32 { return p.y }),
//	)
//	buf := make([]point, len(points))
//	inBuf := radix.RadixSort(points, buf, key)
//	sorted := radix.Result(points, buf, inBuf)
//
// LinearSort runs comparison sort instead when the input is short or the
// key needs many passes; see Selector.
//
// # Concurrency
//
// Calls do not share state. Concurrent calls are safe as long as each has
// its own data and buffer.
package radix
