// SPDX-License-Identifier: MIT

// Package export writes generated grids out of process: a line-oriented text
// dump of every vertex and a PNG scatter plot of the vertex positions.
//
// Dump format, one vertex per line in id order:
//
//	vertex id: 1, x: 0.0000, y: 0.0000, z: 1.0000
//
// DumpFile compresses by extension: ".gz" (gzip) and ".zst" (zstd) via
// github.com/klauspost/compress; anything else is written as plain text.
// LoadDumpFile reverses the process.
//
// Plots are 1600×800 pixel PNG images rendered with gonum.org/v1/plot.
package export
