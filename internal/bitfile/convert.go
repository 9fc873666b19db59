package bitfile

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxMetaField = 256
	defaultChunkSize    = 4096
)

// Limits bounds converter memory use. Zero values take the defaults.
type Limits struct {
	// MaxMetaField caps the declared length of a metadata field.
	MaxMetaField int
	// ChunkSize is the payload copy buffer size in bytes. It must be
	// a multiple of 4 so word swapping never straddles a chunk.
	ChunkSize int
}

// DefaultLimits returns the limits used by the stock converter.
func DefaultLimits() Limits {
	return Limits{
		MaxMetaField: defaultMaxMetaField,
		ChunkSize:    defaultChunkSize,
	}
}

func (l Limits) withDefaults() Limits {
	if l.MaxMetaField == 0 {
		l.MaxMetaField = defaultMaxMetaField
	}
	if l.ChunkSize == 0 {
		l.ChunkSize = defaultChunkSize
	}
	return l
}

func (l Limits) validate() error {
	if l.MaxMetaField < 0 {
		return fmt.Errorf("%w: cap %d out of range", ErrFieldTooLarge, l.MaxMetaField)
	}
	if l.ChunkSize <= 0 || l.ChunkSize%wordSize != 0 {
		return fmt.Errorf("%w: chunk size %d", ErrMisalignedBuffer, l.ChunkSize)
	}
	return nil
}

// Result summarizes one completed conversion.
type Result struct {
	// Meta holds the metadata fields in stream order.
	Meta []MetaField
	// PayloadBytes counts bytes written to the output stream.
	PayloadBytes int64
	// Swapped reports whether word order was normalized on the way out.
	Swapped bool
}

// Convert reads one .bit container from r and writes the embedded
// bitstream to w as raw .bin payload. Each metadata field is echoed to
// diag as one "* <text>" line. The input is consumed strictly forward;
// the payload field terminates the scan and trailing bytes are never
// read. On error the output may hold a partial payload.
func Convert(r io.Reader, w io.Writer, diag io.Writer, limits Limits) (Result, error) {
	limits = limits.withDefaults()
	if err := limits.validate(); err != nil {
		return Result{}, err
	}

	var res Result
	if err := readMagic(r, outerMagic, "outer header"); err != nil {
		return res, err
	}
	for {
		tag, err := readUint(r, 1)
		if err != nil {
			return res, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		spec, ok := LookupTag(byte(tag))
		if !ok {
			return res, fmt.Errorf("%w: 0x%02x", ErrUnknownFieldTag, tag)
		}
		switch spec.Kind {
		case KindMeta:
			field, err := readMetaField(r, byte(tag), limits)
			if err != nil {
				return res, err
			}
			log.Debug().
				Uint8("tag", field.Tag).
				Str("label", spec.Label).
				Int("len", len(field.Value)).
				Msg("meta field")
			if _, err := fmt.Fprintf(diag, "* %s\n", field.Value); err != nil {
				return res, fmt.Errorf("%w: diagnostics: %v", ErrWrite, err)
			}
			res.Meta = append(res.Meta, field)
		case KindPayload:
			pr, err := extractPayload(r, w, limits)
			if err != nil {
				return res, err
			}
			res.PayloadBytes = pr.bytesOut
			res.Swapped = pr.swapped
			log.Debug().
				Int64("payload_bytes", res.PayloadBytes).
				Bool("swapped", res.Swapped).
				Msg("conversion complete")
			return res, nil
		}
	}
}
