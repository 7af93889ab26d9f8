package container

import (
	"encoding/binary"

	"vgmforge/vgmfile"
)

// Header byte offsets within the 64-byte VGM header. All six supported
// versions share this layout.
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

	// HeaderSize is the fixed size of the VGM header this core reads and
	// writes.
	HeaderSize = 0x40
)

// parseHeader decodes the 64-byte VGM header and validates it: version
// must be one of the six supported values, the SN76489 clock must be
// non-zero, and every other chip clock (YM2413/YM2612/YM2151) must be
// zero — this core only ever accepts an SN76489-only VGM.
func parseHeader(data []byte) (vgmfile.Metadata, error) {
	if len(data) < HeaderSize {
		return vgmfile.Metadata{}, vgmfile.NewMalformed("header truncated: got %d bytes, need %d", len(data), HeaderSize)
	}

	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(data[off:]) }
	u16 := func(off int) uint16 { return binary.LittleEndian.Uint16(data[off:]) }
	u8 := func(off int) uint8 { return data[off] }

	version := u32(offVersion)
	if !vgmfile.SupportedVersions[version] {
		return vgmfile.Metadata{}, vgmfile.NewUnsupportedVersion("version 0x%08x is not in the supported set", version)
	}

	snClock := u32(offSNClock)
	ym2413 := u32(offYM2413Clock)
	ym2612 := u32(offYM2612Clock)
	ym2151 := u32(offYM2151Clock)
	if snClock == 0 || ym2413 != 0 || ym2612 != 0 || ym2151 != 0 {
		return vgmfile.Metadata{}, vgmfile.NewNotPsgOnly(
			"this core only supports VGMs whose sole active chip is the SN76489 (sn_clock=0x%x ym2413=0x%x ym2612=0x%x ym2151=0x%x)",
			snClock, ym2413, ym2612, ym2151,
		)
	}

	return vgmfile.Metadata{
		Version:         version,
		SN76489Clock:    snClock,
		YM2413Clock:     ym2413,
		YM2612Clock:     ym2612,
		YM2151Clock:     ym2151,
		SN76489Feedback: u16(offSNFeedback),
		SN76489SRWidth:  u8(offSNSRWidth),
		GD3Offset:       u32(offGD3Offset),
		TotalSamples:    u32(offTotalSamples),
		LoopOffset:      u32(offLoopOffset),
		LoopSamples:     u32(offLoopSamples),
		Rate:            u32(offRate),
		VGMDataOffset:   u32(offVGMDataOffset),
	}, nil
}

// gd3AbsoluteOffset returns the absolute byte offset of the GD3 block,
// given that m.GD3Offset is stored as a delta from its own header slot.
func gd3AbsoluteOffset(m vgmfile.Metadata) int {
	return offGD3Offset + int(m.GD3Offset)
}

// vgmDataAbsoluteOffset returns the absolute byte offset of the first
// command-stream byte, given that m.VGMDataOffset is a delta from its own
// header slot.
func vgmDataAbsoluteOffset(m vgmfile.Metadata) int {
	return offVGMDataOffset + int(m.VGMDataOffset)
}
