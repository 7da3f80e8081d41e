// Package procgen implements small procedural generation routines:
// recursive Sierpinski triangle subdivision, a sine-based grayscale
// noise texture, and an escape-time Julia set renderer.
//
// All output is produced in memory, as line segments or standard
// library images; the package does no drawing, file, or window I/O.
// Generation is single-threaded and deterministic for fixed inputs.
package procgen
