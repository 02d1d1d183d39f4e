package valence

import "errors"

var (
	// ErrBadPower indicates a non-positive spreading power.
	ErrBadPower = errors.New("valence: spreading power must be positive")
	// ErrBadGroupSizes indicates an empty partition or a non-positive group size.
	ErrBadGroupSizes = errors.New("valence: group sizes must be positive")
	// ErrBadTrust indicates a non-positive trust weight.
	ErrBadTrust = errors.New("valence: trust must be positive")
	// ErrNotFinite indicates a NaN or ±Inf weight or score.
	ErrNotFinite = errors.New("valence: value must be finite")
	// ErrSameGroup indicates a relationship between elements of one group.
	ErrSameGroup = errors.New("valence: relationship endpoints must belong to different groups")
	// ErrOutOfRange indicates a group or element index outside the partition.
	ErrOutOfRange = errors.New("valence: group or element index out of range")
	// ErrDimensionMismatch indicates an Apply vector of the wrong length.
	ErrDimensionMismatch = errors.New("valence: dimension mismatch")
	// ErrNotInitialized indicates Apply was called before Init.
	ErrNotInitialized = errors.New("valence: Init must be called before Apply")
	// ErrAlreadyInitialized indicates a second Init or a mutation after Init.
	ErrAlreadyInitialized = errors.New("valence: matrix is frozen after Init")
	// ErrEmptyModel indicates a spread over a model with no terms or no documents.
	ErrEmptyModel = errors.New("valence: nothing to spread")
)
