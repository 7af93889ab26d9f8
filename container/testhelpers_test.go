package container

import "encoding/binary"

// buildHeader returns a 64-byte VGM header with the given SN76489 clock
// and version, its EoF offset, and everything else zeroed, followed by
// body appended verbatim. The VGM data offset is always written as a
// delta from its own header slot so the command stream starts right
// after the header (the common, "no extra header bytes" case used
// throughout these tests).
func buildHeader(snClock uint32, version uint32, body []byte) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[offMagic:], "Vgm ")
	binary.LittleEndian.PutUint32(buf[offVersion:], version)
	binary.LittleEndian.PutUint32(buf[offSNClock:], snClock)
	binary.LittleEndian.PutUint32(buf[offVGMDataOffset:], uint32(HeaderSize-offVGMDataOffset))
	binary.LittleEndian.PutUint32(buf[offEOFOffset:], uint32(HeaderSize+len(body)-offEOFOffset))
	return append(buf, body...)
}
