package writer

import (
	"bytes"
	"encoding/binary"

	"vgmforge/vgmfile"
)

// encodeCommands re-serializes events using only the opcodes this core
// ever produces on output: 0x50, 0x61, 0x62, 0x63, 0x66, 0x70-0x7f.
// EventWriteDual and EventOther never reach the output stream.
func encodeCommands(out *bytes.Buffer, events []vgmfile.Event) error {
	for _, ev := range events {
		switch ev.Kind {
		case vgmfile.EventWrite:
			out.WriteByte(0x50)
			out.WriteByte(ev.Byte)

		case vgmfile.EventWait:
			out.WriteByte(0x61)
			var buf [2]byte
			binary.LittleEndian.PutUint16(buf[:], ev.Samples)
			out.Write(buf[:])

		case vgmfile.EventWait60:
			out.WriteByte(0x62)

		case vgmfile.EventWait50:
			out.WriteByte(0x63)

		case vgmfile.EventWaitN:
			out.WriteByte(ev.Opcode)

		case vgmfile.EventEnd:
			out.WriteByte(0x66)

		case vgmfile.EventWriteDual, vgmfile.EventOther:
			// Dropped on output.
		}
	}
	return nil
}
