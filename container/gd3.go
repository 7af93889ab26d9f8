package container

import (
	"encoding/binary"

	"vgmforge/vgmfile"
)

const gd3Tag = "Gd3 "

// parseGD3 decodes the GD3 block at its absolute offset: an 8-byte tag+
// version header, a u32 length, then that many bytes of zero-terminated
// UTF-16LE fields.
//
// If the block is missing, truncated, or carries fewer than 9 fields, a
// synthesized default GD3 (title <- filename, artist <-
// "Unknown") is returned along with ok=false so the caller can log a
// warning rather than fail the parse.
func parseGD3(data []byte, m vgmfile.Metadata, sourceFilename string) (gd3 vgmfile.GD3, ok bool) {
	abs := gd3AbsoluteOffset(m)
	if m.GD3Offset == 0 || abs+12 > len(data) {
		return vgmfile.DefaultGD3(sourceFilename), false
	}

	// Skip 8 bytes: "Gd3 " tag + 4-byte version.
	lengthOff := abs + 8
	length := int(binary.LittleEndian.Uint32(data[lengthOff:]))
	fieldsStart := lengthOff + 4
	fieldsEnd := fieldsStart + length
	if fieldsEnd > len(data) {
		return vgmfile.DefaultGD3(sourceFilename), false
	}

	fields := splitUTF16Fields(data[fieldsStart:fieldsEnd])
	if len(fields) < 9 {
		return vgmfile.DefaultGD3(sourceFilename), false
	}

	var g vgmfile.GD3
	for i := 0; i < vgmfile.GD3FieldCount; i++ {
		if i < len(fields) {
			g.Fields[i] = fields[i]
		}
	}
	if len(g.Fields[vgmfile.GD3TitleEng]) == 0 {
		g.Fields[vgmfile.GD3TitleEng] = vgmfile.UTF16FromString(sourceFilename)
	}
	return g, true
}

// splitUTF16Fields splits a run of UTF-16LE code units into
// zero-terminated fields.
func splitUTF16Fields(raw []byte) [][]uint16 {
	var fields [][]uint16
	var current []uint16
	for i := 0; i+1 < len(raw); i += 2 {
		unit := binary.LittleEndian.Uint16(raw[i:])
		if unit == 0 {
			fields = append(fields, current)
			current = nil
			continue
		}
		current = append(current, unit)
	}
	return fields
}
