package bitfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/bitctl/internal/testutil/testlog"
)

func TestExtractPayloadMultiChunk(t *testing.T) {
	testlog.Start(t)

	stream := canonicalStream(
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	)
	body := buildPayloadBody(uint32(payloadMagicLen+len(stream)), append(append([]byte{}, payloadMagic...), stream...))

	var out bytes.Buffer
	res, err := extractPayload(bytes.NewReader(body), &out, Limits{ChunkSize: 8})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !bytes.Equal(out.Bytes(), stream) {
		t.Fatalf("output % x, want % x", out.Bytes(), stream)
	}
	if res.bytesOut != int64(len(stream)) {
		t.Fatalf("bytes out %d, want %d", res.bytesOut, len(stream))
	}
	if res.swapped {
		t.Fatalf("canonical stream reported as swapped")
	}
}

func TestExtractPayloadMultiChunkSwapped(t *testing.T) {
	testlog.Start(t)

	canonical := canonicalStream(
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c,
	)
	swapped := swapCopy(t, canonical)
	body := buildPayloadBody(uint32(payloadMagicLen+len(swapped)), append(append([]byte{}, payloadMagic...), swapped...))

	var out bytes.Buffer
	res, err := extractPayload(bytes.NewReader(body), &out, Limits{ChunkSize: 8})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !res.swapped {
		t.Fatalf("swapped stream not detected")
	}
	// Every chunk is normalized, not just the first.
	if !bytes.Equal(out.Bytes(), canonical) {
		t.Fatalf("output % x, want % x", out.Bytes(), canonical)
	}
}

func TestPayloadHeaderTooSmall(t *testing.T) {
	for _, declared := range []uint32{0, 4, 48, 50, 51} {
		body := buildPayloadBody(declared, payloadMagic)
		_, err := readPayloadHeader(bytes.NewReader(body))
		if !errors.Is(err, ErrPayloadTooSmall) {
			t.Fatalf("declared %d: expected ErrPayloadTooSmall, got %v", declared, err)
		}
	}
}

func TestPayloadHeaderMisaligned(t *testing.T) {
	for _, declared := range []uint32{53, 54, 55} {
		body := buildPayloadBody(declared, payloadMagic)
		_, err := readPayloadHeader(bytes.NewReader(body))
		if !errors.Is(err, ErrMisalignedPayload) {
			t.Fatalf("declared %d: expected ErrMisalignedPayload, got %v", declared, err)
		}
	}
}

func TestPayloadHeaderBadMagic(t *testing.T) {
	corrupted := append([]byte{}, payloadMagic...)
	corrupted[35] ^= 0xff
	body := buildPayloadBody(52, corrupted)

	_, err := readPayloadHeader(bytes.NewReader(body))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestPayloadHeaderAccepted(t *testing.T) {
	body := buildPayloadBody(52, payloadMagic)
	hdr, err := readPayloadHeader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if hdr.declaredLen != 52 {
		t.Fatalf("declared %d, want 52", hdr.declaredLen)
	}
	if hdr.dataLen != 4 {
		t.Fatalf("data len %d, want 4", hdr.dataLen)
	}
}

func TestExtractPayloadInvalidSync(t *testing.T) {
	testlog.Start(t)

	stream := []byte{0x00, 0x00, 0x00, 0x00}
	body := buildPayloadBody(uint32(payloadMagicLen+len(stream)), append(append([]byte{}, payloadMagic...), stream...))

	var out bytes.Buffer
	_, err := extractPayload(bytes.NewReader(body), &out, DefaultLimits())
	if !errors.Is(err, ErrInvalidSyncWord) {
		t.Fatalf("expected ErrInvalidSyncWord, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output written despite bad sync word: %d bytes", out.Len())
	}
}

func TestExtractPayloadTruncatedBody(t *testing.T) {
	testlog.Start(t)

	// Declares 8 stream bytes but carries only the sync word.
	body := buildPayloadBody(payloadMagicLen+8, append(append([]byte{}, payloadMagic...), syncWord...))

	_, err := extractPayload(bytes.NewReader(body), &bytes.Buffer{}, DefaultLimits())
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestExtractPayloadWriterFailure(t *testing.T) {
	testlog.Start(t)

	stream := canonicalStream(1, 2, 3, 4)
	body := buildPayloadBody(uint32(payloadMagicLen+len(stream)), append(append([]byte{}, payloadMagic...), stream...))

	_, err := extractPayload(bytes.NewReader(body), failWriter{}, DefaultLimits())
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}

// shortWriter accepts all but the last byte of every write and reports no error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

func TestExtractPayloadShortWrite(t *testing.T) {
	testlog.Start(t)

	stream := canonicalStream(1, 2, 3, 4)
	body := buildPayloadBody(uint32(payloadMagicLen+len(stream)), append(append([]byte{}, payloadMagic...), stream...))

	_, err := extractPayload(bytes.NewReader(body), shortWriter{}, DefaultLimits())
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if !strings.Contains(err.Error(), "7 of 8 bytes") {
		t.Fatalf("error %q missing partial write count", err)
	}
}

func TestClassifySyncWords(t *testing.T) {
	cases := []struct {
		word    []byte
		swapped bool
		wantErr bool
	}{
		{syncWord, false, false},
		{syncWordSwapped, true, false},
		{[]byte{0x66, 0x55, 0x99, 0xab}, false, true},
		{[]byte{0x00, 0x00, 0x00, 0x00}, false, true},
	}
	for _, tc := range cases {
		swapped, err := classifySync(tc.word)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidSyncWord) {
				t.Fatalf("word % x: expected ErrInvalidSyncWord, got %v", tc.word, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("word % x: %v", tc.word, err)
		}
		if swapped != tc.swapped {
			t.Fatalf("word % x: swapped=%v, want %v", tc.word, swapped, tc.swapped)
		}
	}
}

func buildPayloadBody(declared uint32, rest []byte) []byte {
	buf := binary.BigEndian.AppendUint32(nil, declared)
	return append(buf, rest...)
}
