package bitfile

import (
	"bytes"
	"fmt"
	"io"
)

// readUint reads a big-endian unsigned integer of width 1 to 4 bytes.
func readUint(r io.Reader, width int) (uint32, error) {
	var buf [4]byte
	if width < 1 || width > len(buf) {
		return 0, fmt.Errorf("bitfile: integer width %d out of range", width)
	}
	if _, err := io.ReadFull(r, buf[:width]); err != nil {
		return 0, fmt.Errorf("%w: %d byte integer", ErrTruncated, width)
	}
	var v uint32
	for _, b := range buf[:width] {
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// readMagic consumes len(expected) bytes and requires an exact match.
// The matched bytes are discarded; name labels the error on failure.
func readMagic(r io.Reader, expected []byte, name string) error {
	buf := make([]byte, len(expected))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %s", ErrTruncated, name)
	}
	if !bytes.Equal(buf, expected) {
		return fmt.Errorf("%w: %s", ErrInvalidMagic, name)
	}
	return nil
}
