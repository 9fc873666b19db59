package bitfile

import (
	"fmt"
	"io"
)

// Info describes a container without extracting its payload.
type Info struct {
	// Meta holds the metadata fields in stream order.
	Meta []MetaField
	// PayloadLen is the declared payload length, magic header included.
	PayloadLen uint32
	// DataLen is the bitstream length after the magic header is stripped.
	DataLen uint32
	// SyncWord holds the first bitstream word as stored.
	SyncWord [4]byte
	// Swapped reports whether extraction would normalize word order.
	Swapped bool
}

// ReadInfo parses a container far enough to describe it: metadata
// fields, payload preamble, and sync word classification. The
// bitstream body past the sync word is not consumed.
func ReadInfo(r io.Reader, limits Limits) (Info, error) {
	limits = limits.withDefaults()
	if err := limits.validate(); err != nil {
		return Info{}, err
	}

	var info Info
	if err := readMagic(r, outerMagic, "outer header"); err != nil {
		return info, err
	}
	for {
		tag, err := readUint(r, 1)
		if err != nil {
			return info, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		spec, ok := LookupTag(byte(tag))
		if !ok {
			return info, fmt.Errorf("%w: 0x%02x", ErrUnknownFieldTag, tag)
		}
		switch spec.Kind {
		case KindMeta:
			field, err := readMetaField(r, byte(tag), limits)
			if err != nil {
				return info, err
			}
			info.Meta = append(info.Meta, field)
		case KindPayload:
			hdr, err := readPayloadHeader(r)
			if err != nil {
				return info, err
			}
			if _, err := io.ReadFull(r, info.SyncWord[:]); err != nil {
				return info, fmt.Errorf("%w: sync word", ErrTruncated)
			}
			swapped, err := classifySync(info.SyncWord[:])
			if err != nil {
				return info, err
			}
			info.PayloadLen = hdr.declaredLen
			info.DataLen = hdr.dataLen
			info.Swapped = swapped
			return info, nil
		}
	}
}
