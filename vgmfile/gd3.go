package vgmfile

import "unicode/utf16"

// GD3FieldCount is the number of fixed-order text fields in a GD3 tag.
const GD3FieldCount = 11

// GD3 field indices, in their on-wire order.
const (
	GD3TitleEng = iota
	GD3TitleJap
	GD3GameEng
	GD3GameJap
	GD3ConsoleEng
	GD3ConsoleJap
	GD3ArtistEng
	GD3ArtistJap
	GD3Date
	GD3Creator
	GD3Notes
)

// GD3 holds the eleven UTF-16LE metadata fields of a GD3 tag, in raw
// (zero-terminator-stripped) wire form — a field's value is its decoded
// []uint16 code points, not a Go string, to avoid lossy re-encoding on
// the VGM-write round trip.
type GD3 struct {
	Fields [GD3FieldCount][]uint16
}

// UTF16FromString encodes a plain ASCII/Latin-1 Go string to UTF-16 code
// points suitable for a GD3 field.
func UTF16FromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// String decodes a GD3 field's UTF-16 code points back to a Go string.
func (g GD3) String(field int) string {
	return string(utf16.Decode(g.Fields[field]))
}

// DefaultGD3 synthesizes the fallback GD3 record used when the source VGM
// has no tag or a malformed one (fewer than 9 fields):
// title <- filename, artist <- "Unknown".
func DefaultGD3(filename string) GD3 {
	var g GD3
	g.Fields[GD3TitleEng] = UTF16FromString(filename)
	g.Fields[GD3ArtistEng] = UTF16FromString("Unknown")
	return g
}
