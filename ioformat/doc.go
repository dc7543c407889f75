// Package ioformat reads the graph and path-decomposition file formats and
// writes minor records, for all three search engines, using a small
// participle grammar rather than hand-rolled token scanning. A format error
// raised for a specific parsed record carries that record's line; grammar
// failures and the end-of-stream bag check carry Line 0 (see FormatError).
package ioformat
