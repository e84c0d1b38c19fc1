package builder

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNilDescription is returned when Build receives a nil description.
	ErrNilDescription = errors.New("builder: description is nil")

	// ErrInvalidNodeID is returned when a node spec carries an identifier
	// that is neither a string nor a non-negative number.
	ErrInvalidNodeID = errors.New("builder: invalid node id")

	// ErrDuplicateNodeID is returned when two node specs share an identifier.
	ErrDuplicateNodeID = errors.New("builder: duplicate node id")

	// ErrMissingEndpoint is returned when an edge spec lacks a source or
	// names no target.
	ErrMissingEndpoint = errors.New("builder: missing edge endpoint")

	// ErrUnknownEndpoint is returned when an edge spec references an
	// identifier that no node spec declares.
	ErrUnknownEndpoint = errors.New("builder: unknown edge endpoint")

	// ErrDecode is returned when YAML input cannot be decoded.
	ErrDecode = errors.New("builder: decode failed")
)
