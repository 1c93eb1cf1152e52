package arrayio

import "errors"

// Sentinel errors, matched with errors.Is.
var (
	ErrBadMagic         = errors.New("arrayio: invalid magic bytes")
	ErrBadVersion       = errors.New("arrayio: unsupported format version")
	ErrChecksumMismatch = errors.New("arrayio: checksum mismatch, archive may be corrupted")
	ErrCorrupt          = errors.New("arrayio: malformed archive")
	ErrNotFound         = errors.New("arrayio: no array with that name")
	ErrKindMismatch     = errors.New("arrayio: element kind mismatch")
	ErrDuplicateName    = errors.New("arrayio: duplicate array name")
)
