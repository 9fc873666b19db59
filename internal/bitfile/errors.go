package bitfile

import "errors"

// Error taxonomy for container parsing and payload extraction.
// Callers match with errors.Is; wrapped forms carry stream context.
var (
	ErrTruncated         = errors.New("bitfile: truncated read")
	ErrInvalidMagic      = errors.New("bitfile: invalid magic header")
	ErrFieldTooLarge     = errors.New("bitfile: meta field too large")
	ErrUnknownFieldTag   = errors.New("bitfile: unknown field tag")
	ErrPayloadTooSmall   = errors.New("bitfile: payload too small")
	ErrMisalignedPayload = errors.New("bitfile: payload not 4-byte aligned")
	ErrInvalidSyncWord   = errors.New("bitfile: invalid sync word")
	ErrWrite             = errors.New("bitfile: write failed")
	ErrMisalignedBuffer  = errors.New("bitfile: buffer not 4-byte aligned")
)
