package backup

import "errors"

var (
	// ErrUnsupportedVersion means the snapshot was written by a newer build.
	ErrUnsupportedVersion = errors.New("unsupported backup version")

	// ErrInvalidSnapshot means the snapshot failed validation before any
	// record was written. Imports are all-or-nothing up to the first write.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
