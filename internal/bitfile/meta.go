package bitfile

import (
	"fmt"
	"io"
)

// MetaField is one decoded metadata field. Value holds the raw bytes
// from the stream, trailing NUL included when the container carries one.
type MetaField struct {
	Tag   byte
	Value []byte
}

// readMetaField reads one length-prefixed metadata field body. The
// length cap is enforced before any body byte is consumed, so an
// oversized declaration never allocates.
func readMetaField(r io.Reader, tag byte, limits Limits) (MetaField, error) {
	length, err := readUint(r, 2)
	if err != nil {
		return MetaField{}, err
	}
	if int(length) > limits.MaxMetaField {
		return MetaField{}, fmt.Errorf("%w: tag 0x%02x declares %d bytes (cap %d)",
			ErrFieldTooLarge, tag, length, limits.MaxMetaField)
	}
	value := make([]byte, length)
	if _, err := io.ReadFull(r, value); err != nil {
		return MetaField{}, fmt.Errorf("%w: meta field body (%d bytes)", ErrTruncated, length)
	}
	return MetaField{Tag: tag, Value: value}, nil
}
