// Package bitfile owns .bit container parsing and .bin transcoding.
//
// Ownership boundary:
// - container field scanning and tag dispatch
// - payload extraction and sync-word endianness normalization
// - conversion limits and the bitfile error taxonomy
//
// Container layout (all multi-byte integers big-endian):
//
//	outer magic header (13 bytes)
//	repeated tagged fields: one tag byte, then a tag-specific body
//	  meta field body:    u16 length, then that many bytes of text
//	  payload field body: u32 length, then a 48-byte payload magic
//	                      header, then (length-48) bytes of bitstream
//
// The payload field terminates the scan. The first bitstream word is
// the sync word; its byte order decides whether the remainder is
// word-swapped on the way out.
package bitfile
