package bitfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// payloadHeader is the validated payload preamble: the declared field
// length and the bitstream length left after the payload magic.
type payloadHeader struct {
	declaredLen uint32
	dataLen     uint32
}

// readPayloadHeader reads the payload length, validates it against the
// format floor and word alignment, and strips the payload magic.
func readPayloadHeader(r io.Reader) (payloadHeader, error) {
	length, err := readUint(r, 4)
	if err != nil {
		return payloadHeader{}, err
	}
	if length < payloadMagicLen+syncWordLen {
		return payloadHeader{}, fmt.Errorf("%w: %d bytes declared", ErrPayloadTooSmall, length)
	}
	if length%wordSize != 0 {
		return payloadHeader{}, fmt.Errorf("%w: %d bytes declared", ErrMisalignedPayload, length)
	}
	if err := readMagic(r, payloadMagic, "payload header"); err != nil {
		return payloadHeader{}, err
	}
	return payloadHeader{declaredLen: length, dataLen: length - payloadMagicLen}, nil
}

// classifySync decides word order from the first bitstream word.
func classifySync(word []byte) (bool, error) {
	switch {
	case bytes.Equal(word, syncWord):
		return false, nil
	case bytes.Equal(word, syncWordSwapped):
		return true, nil
	default:
		return false, fmt.Errorf("%w: %x", ErrInvalidSyncWord, word)
	}
}

type payloadResult struct {
	bytesOut int64
	swapped  bool
}

// extractPayload validates the payload preamble and streams the
// bitstream to w in chunk-sized pieces. The sync word arrives inside
// the first chunk; when it is byte-swapped, every chunk (sync word
// included) is word-swapped before it is written, so the output always
// opens with the canonical sync pattern.
func extractPayload(r io.Reader, w io.Writer, limits Limits) (payloadResult, error) {
	var res payloadResult

	hdr, err := readPayloadHeader(r)
	if err != nil {
		return res, err
	}
	log.Debug().
		Uint32("declared_len", hdr.declaredLen).
		Uint32("data_len", hdr.dataLen).
		Msg("payload header accepted")

	chunk := make([]byte, limits.ChunkSize)
	remaining := int64(hdr.dataLen)
	first := true
	swap := false
	for remaining > 0 {
		buf := chunk[:min(remaining, int64(len(chunk)))]
		if _, err := io.ReadFull(r, buf); err != nil {
			return res, fmt.Errorf("%w: payload body (%d bytes missing)", ErrTruncated, remaining)
		}
		if first {
			swap, err = classifySync(buf[:syncWordLen])
			if err != nil {
				return res, err
			}
			log.Debug().Bool("swapped", swap).Msg("sync word classified")
			first = false
		}
		if swap {
			if err := SwapWords(buf); err != nil {
				return res, err
			}
		}
		n, err := w.Write(buf)
		if err != nil {
			return res, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if n != len(buf) {
			return res, fmt.Errorf("%w: short write (%d of %d bytes)", ErrWrite, n, len(buf))
		}
		res.bytesOut += int64(n)
		remaining -= int64(len(buf))
	}
	res.swapped = swap
	return res, nil
}
