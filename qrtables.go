// Package qrtables extracts the numeric reference tables of the QR code
// standard from published HTML documentation and renders them as fixed-length
// array declarations for embedding in an encoder.
//
// This package contains domain types, interfaces and the pure extraction
// stages following Ben Johnson's Standard Package Layout. Implementations of
// the I/O collaborators live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, slog/).
package qrtables

// Period is the number of physical table rows that make up one symbol
// version. It drives both the row-span normalization (the version label is
// present once per Period rows) and the round-robin bucket assignment.
const Period = 4

// VersionCount is the number of symbol versions defined by the standard.
const VersionCount = 40
