package writer

import (
	"bytes"

	"vgmforge/vgmfile"
)

const binaryHeaderLen = 5

// WriteBinary emits the compact packet-binary format: a small fixed
// header (rate, packet count, duration) followed by length-prefixed
// title/author strings and one length-prefixed packet per tick.
// p.Events must already be quantized — every wait's sample length must
// be an exact multiple of the tick interval, or this returns a
// StreamError.
func WriteBinary(p vgmfile.Pipeline) ([]byte, error) {
	if p.Metadata.Rate == 0 {
		return nil, vgmfile.NewStreamError("cannot emit packet binary: metadata.rate is zero (quantize was never run)")
	}
	interval := uint64(44100) / uint64(p.Metadata.Rate)

	packets, packetCount, err := buildPackets(p.Events, interval)
	if err != nil {
		return nil, err
	}

	title := transcodeASCII(p.GD3.String(vgmfile.GD3TitleEng))
	author := transcodeASCII(p.GD3.String(vgmfile.GD3ArtistEng))
	if author == "" {
		author = transcodeASCII(p.SourceFilename)
	}
	if title == "" {
		title = transcodeASCII(p.SourceFilename)
	}

	var out bytes.Buffer
	out.WriteByte(binaryHeaderLen)
	out.WriteByte(byte(p.Metadata.Rate))
	out.WriteByte(byte(packetCount & 0xff))
	out.WriteByte(byte((packetCount >> 8) & 0xff))

	// Duration bytes are written in (seconds%60, seconds/60) order
	// despite being named minutes-then-seconds on the wire.
	totalSeconds := packetCount / uint32(p.Metadata.Rate)
	out.WriteByte(byte(totalSeconds % 60))
	out.WriteByte(byte(totalSeconds / 60))

	writeASCIIField(&out, title)
	writeASCIIField(&out, author)

	out.Write(packets)
	out.WriteByte(0x00) // trailing empty packet
	out.WriteByte(0xff) // EOF sentinel

	return out.Bytes(), nil
}

// buildPackets groups Write-event bytes into per-tick records: every
// wait event closes out the current tick's packet (and, if the wait
// spans more than one interval, appends the corresponding number of
// empty packets for the silent ticks in between). End closes out the
// final tick's packet, emitting it even when it is empty; writes left
// over with no End after them are flushed as one last packet.
func buildPackets(events []vgmfile.Event, interval uint64) ([]byte, uint32, error) {
	var out bytes.Buffer
	var current []byte
	var count uint32

	emit := func(b []byte) {
		out.WriteByte(byte(len(b)))
		out.Write(b)
		count++
	}

	for _, ev := range events {
		switch ev.Kind {
		case vgmfile.EventWrite:
			current = append(current, ev.Byte)

		case vgmfile.EventWriteDual, vgmfile.EventOther:
			// Not PSG-relevant; contributes nothing to a packet.

		case vgmfile.EventEnd:
			emit(current)
			current = nil

		default:
			samples := uint64(ev.WaitSamples())
			if samples%interval != 0 {
				return nil, 0, vgmfile.NewStreamError(
					"wait of %d samples is not a multiple of the %d-sample tick interval", samples, interval)
			}
			ticks := samples / interval
			emit(current)
			current = nil
			for k := uint64(1); k < ticks; k++ {
				emit(nil)
			}
		}
	}

	if current != nil {
		emit(current)
	}

	return out.Bytes(), count, nil
}

// transcodeASCII drops every rune outside 1..127 (NUL and anything
// beyond 7-bit ASCII; control characters are kept), a lossy UTF-16-to-ASCII GD3 transcoding, and truncates to 254 bytes
// so title_len/author_len (len+1) fit in a single byte.
func transcodeASCII(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0 && r < 128 {
			b = append(b, byte(r))
		}
	}
	if len(b) > 254 {
		b = b[:254]
	}
	return string(b)
}

func writeASCIIField(out *bytes.Buffer, s string) {
	out.WriteByte(byte(len(s) + 1))
	out.WriteString(s)
	out.WriteByte(0x00)
}
