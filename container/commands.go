package container

import (
	"encoding/binary"

	"vgmforge/vgmfile"
)

// VGM command opcodes relevant to parsing.
const (
	opGGStereo  = 0x4f
	opPSGWrite  = 0x50
	opDualWrite = 0x30
	opYM2413    = 0x51
	opYM2612P0  = 0x52
	opYM2612P1  = 0x53
	opYM2151    = 0x54
	opWait      = 0x61
	opWait60    = 0x62
	opWait50    = 0x63
	opEnd       = 0x66
	opDataBlock = 0x67
	opSeekPCM   = 0xe0
)

// parseCommands walks the command stream starting at its absolute offset
// and decodes it into a typed Event list. Unrecognized opcodes are
// skipped with no arguments; this never fails the parse.
func parseCommands(data []byte, startOffset int, dualChipEnabled bool) ([]vgmfile.Event, error) {
	var events []vgmfile.Event
	i := startOffset

	for i < len(data) {
		op := data[i]
		i++

		switch {
		case op == opGGStereo || op == opYM2413 || op == opYM2612P0 || op == opYM2612P1 || op == opYM2151:
			// 0x4f: 1 data byte. 0x51-0x54: 2 data bytes.
			n := 1
			if op != opGGStereo {
				n = 2
			}
			if i+n > len(data) {
				return events, vgmfile.NewMalformed("truncated arguments for opcode 0x%02x", op)
			}
			events = append(events, vgmfile.Event{Kind: vgmfile.EventOther, Opcode: op})
			i += n

		case op == opPSGWrite:
			if i >= len(data) {
				return events, vgmfile.NewMalformed("truncated PSG write at end of stream")
			}
			events = append(events, vgmfile.NewWrite(data[i]))
			i++

		case op == opDualWrite:
			if i >= len(data) {
				return events, vgmfile.NewMalformed("truncated dual-chip write at end of stream")
			}
			if dualChipEnabled {
				events = append(events, vgmfile.NewWriteDual(data[i]))
			}
			i++

		case op == opWait:
			if i+2 > len(data) {
				return events, vgmfile.NewMalformed("truncated wait argument at end of stream")
			}
			events = append(events, vgmfile.NewWait(binary.LittleEndian.Uint16(data[i:])))
			i += 2

		case op == opWait60:
			events = append(events, vgmfile.Event{Kind: vgmfile.EventWait60})

		case op == opWait50:
			events = append(events, vgmfile.Event{Kind: vgmfile.EventWait50})

		case op == opEnd:
			events = append(events, vgmfile.NewEnd())
			return events, nil

		case op == opDataBlock:
			if i+6 > len(data) {
				return events, vgmfile.NewMalformed("truncated data block header")
			}
			// Skip compatibility + type bytes (0x66 tt), then read size.
			size := binary.LittleEndian.Uint32(data[i+2:])
			i += 6
			blockEnd := i + int(size)
			if blockEnd > len(data) || blockEnd < i {
				return events, vgmfile.NewMalformed("data block size %d overruns stream", size)
			}
			events = append(events, vgmfile.Event{Kind: vgmfile.EventOther, Opcode: op})
			i = blockEnd

		case op >= 0x70 && op <= 0x7f:
			events = append(events, vgmfile.NewWaitN(op&0x0f))

		case op >= 0x80 && op <= 0x8f:
			events = append(events, vgmfile.Event{Kind: vgmfile.EventOther, Opcode: op})

		case op == opSeekPCM:
			if i+4 > len(data) {
				return events, vgmfile.NewMalformed("truncated PCM seek argument")
			}
			events = append(events, vgmfile.Event{Kind: vgmfile.EventOther, Opcode: op})
			i += 4

		default:
			// Unrecognized opcode: ignore, consume no arguments.
		}
	}

	return events, nil
}
