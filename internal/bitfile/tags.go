package bitfile

// Field tags defined by the container format.
const (
	TagDesign    byte = 0x61
	TagPart      byte = 0x62
	TagBuildDate byte = 0x63
	TagBuildTime byte = 0x64
	TagBitstream byte = 0x65
)

// FieldKind partitions field tags by body shape.
type FieldKind uint8

const (
	// KindMeta marks a u16-length-prefixed text field.
	KindMeta FieldKind = iota + 1
	// KindPayload marks the u32-length-prefixed bitstream field.
	KindPayload
)

// TagSpec describes one known field tag.
type TagSpec struct {
	Kind  FieldKind
	Label string
}

var tagRegistry = map[byte]TagSpec{
	TagDesign:    {Kind: KindMeta, Label: "design"},
	TagPart:      {Kind: KindMeta, Label: "part"},
	TagBuildDate: {Kind: KindMeta, Label: "build date"},
	TagBuildTime: {Kind: KindMeta, Label: "build time"},
	TagBitstream: {Kind: KindPayload, Label: "bitstream"},
}

// LookupTag reports whether tag is part of the container format and,
// if so, how its body is shaped.
func LookupTag(tag byte) (TagSpec, bool) {
	spec, ok := tagRegistry[tag]
	return spec, ok
}
