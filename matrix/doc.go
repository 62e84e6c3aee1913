// Package matrix implements a dense, immutable float32 matrix with the
// textbook triple-loop product.
//
// Storage is a single row-major slice: element (i, j) lives at i*cols + j.
// Matrices are values; no operation mutates its receiver or its arguments.
//
// The product is deliberately unoptimised. It walks i, j and k in order,
// reads every element through the bounds-checked Get and accumulates in
// float32 with ascending k, which makes results bit-reproducible and gives
// profilers a stable baseline to measure against.
//
// Element access comes in two flavours: Get panics on an out-of-range index,
// At reports it as an *IndexError. Shape mismatches in Multiply are always
// returned as a *DimensionError.
package matrix
