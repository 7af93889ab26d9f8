// Package writer serializes a vgmfile.Pipeline back out, either as a
// VGM 1.51 container (WriteVGM) or as the compact tick-packet binary
// format (WriteBinary).
package writer

import (
	"bytes"
	"encoding/binary"

	"vgmforge/vgmfile"
)

const (
	offMagic         = 0x00
	offEOFOffset     = 0x04
	offVersion       = 0x08
	offSNClock       = 0x0c
	offYM2413Clock   = 0x10
	offGD3Offset     = 0x14
	offTotalSamples  = 0x18
	offLoopOffset    = 0x1c
	offLoopSamples   = 0x20
	offRate          = 0x24
	offSNFeedback    = 0x28
	offSNSRWidth     = 0x2a
	offYM2612Clock   = 0x2c
	offYM2151Clock   = 0x30
	offVGMDataOffset = 0x34

	headerSize = 0x40
	gd3Version = uint32(0x00000100)
)

// WriteVGM re-serializes p as a conformant VGM 1.51 file: a fixed
// 64-byte header with loop markers reset to zero and every other-chip
// clock zeroed, the command stream re-encoded with only the opcodes
// this core ever produces, and the GD3 tag reattached if present.
func WriteVGM(p vgmfile.Pipeline) ([]byte, error) {
	var body bytes.Buffer
	if err := encodeCommands(&body, p.Events); err != nil {
		return nil, err
	}

	var gd3Block []byte
	if p.HasGD3 {
		gd3Block = encodeGD3(p.GD3)
	}

	header := make([]byte, headerSize)
	copy(header[offMagic:], "Vgm ")

	totalSize := headerSize + body.Len() + len(gd3Block)
	binary.LittleEndian.PutUint32(header[offEOFOffset:], uint32(totalSize-4))
	binary.LittleEndian.PutUint32(header[offVersion:], vgmfile.OutputVersion)
	binary.LittleEndian.PutUint32(header[offSNClock:], p.Metadata.SN76489Clock)
	binary.LittleEndian.PutUint32(header[offYM2413Clock:], 0)
	binary.LittleEndian.PutUint32(header[offTotalSamples:], p.Metadata.TotalSamples)
	binary.LittleEndian.PutUint32(header[offLoopOffset:], 0)
	binary.LittleEndian.PutUint32(header[offLoopSamples:], 0)
	binary.LittleEndian.PutUint32(header[offRate:], p.Metadata.Rate)
	binary.LittleEndian.PutUint16(header[offSNFeedback:], p.Metadata.SN76489Feedback)
	header[offSNSRWidth] = p.Metadata.SN76489SRWidth
	binary.LittleEndian.PutUint32(header[offYM2612Clock:], 0)
	binary.LittleEndian.PutUint32(header[offYM2151Clock:], 0)
	// vgm_data_offset is a delta from its own slot; data always starts
	// immediately after this fixed 64-byte header.
	binary.LittleEndian.PutUint32(header[offVGMDataOffset:], headerSize-offVGMDataOffset)

	if p.HasGD3 {
		binary.LittleEndian.PutUint32(header[offGD3Offset:], uint32(headerSize+body.Len()-offGD3Offset))
	}

	out := make([]byte, 0, totalSize)
	out = append(out, header...)
	out = append(out, body.Bytes()...)
	out = append(out, gd3Block...)
	return out, nil
}

// encodeGD3 serializes g as a "Gd3 " tagged block: tag, version, u32
// length, then all eleven fields concatenated with u16(0) terminators.
func encodeGD3(g vgmfile.GD3) []byte {
	var fields bytes.Buffer
	for _, f := range g.Fields {
		for _, unit := range f {
			binary.Write(&fields, binary.LittleEndian, unit)
		}
		binary.Write(&fields, binary.LittleEndian, uint16(0))
	}

	var out bytes.Buffer
	out.WriteString("Gd3 ")
	binary.Write(&out, binary.LittleEndian, gd3Version)
	binary.Write(&out, binary.LittleEndian, uint32(fields.Len()))
	out.Write(fields.Bytes())
	return out.Bytes()
}
