package bitfile

import "fmt"

// SwapWords reverses the byte order of every 4-byte group in b, in
// place. Applying it twice restores the original buffer.
func SwapWords(b []byte) error {
	if len(b)%wordSize != 0 {
		return fmt.Errorf("%w: %d bytes", ErrMisalignedBuffer, len(b))
	}
	for i := 0; i < len(b); i += wordSize {
		b[i], b[i+1], b[i+2], b[i+3] = b[i+3], b[i+2], b[i+1], b[i]
	}
	return nil
}
