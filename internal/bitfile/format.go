package bitfile

// Byte-level constants of the .bit container format.
var (
	// outerMagic opens every container. Nothing before it is legal.
	outerMagic = []byte{
		0x00, 0x09, 0x0f, 0xf0, 0x0f, 0xf0,
		0x0f, 0xf0, 0x0f, 0xf0, 0x00, 0x00, 0x01,
	}

	// payloadMagic sits at the front of the payload field body and is
	// counted by the declared payload length. It never reaches the
	// output stream.
	payloadMagic = []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0xbb, 0x11, 0x22, 0x00, 0x44,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}

	// syncWord is the canonical device sync pattern. A bitstream that
	// instead opens with syncWordSwapped was stored with reversed
	// word byte order and is normalized during extraction.
	syncWord        = []byte{0x66, 0x55, 0x99, 0xaa}
	syncWordSwapped = []byte{0xaa, 0x99, 0x55, 0x66}
)

const (
	payloadMagicLen = 48
	syncWordLen     = 4
	wordSize        = 4
)
