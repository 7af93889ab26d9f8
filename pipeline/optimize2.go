package pipeline

import (
	"vgmforge/psg"
	"vgmforge/vgmfile"
)

// Optimize2 partitions the event list into segments delimited by
// non-Write events, and within each segment keeps only the last
// volume-latch and the last tone-latch (plus its paired data byte) per
// channel, reordering survivors so every volume write precedes every
// tone write. This matters because transpose needs a
// channel's settled volume visible before its tone latch in the same
// tick.
func Optimize2(events []vgmfile.Event) []vgmfile.Event {
	out := make([]vgmfile.Event, 0, len(events))

	var segment []vgmfile.Event
	var latchedChannel uint8

	flush := func() {
		out = append(out, dedupeSegment(segment, &latchedChannel)...)
		segment = segment[:0]
	}

	for _, ev := range events {
		if ev.Kind != vgmfile.EventWrite {
			flush()
			out = append(out, ev)
			continue
		}
		segment = append(segment, ev)
	}
	flush()

	return out
}

// dedupeSegment applies the per-channel last-write-wins rule to one
// segment of consecutive Write events and returns any leading data bytes,
// then volumes, then tones.
// latchedChannel carries PSG latch state across segment boundaries,
// since the underlying chip's latch register is never reset by a wait.
func dedupeSegment(segment []vgmfile.Event, latchedChannel *uint8) []vgmfile.Event {
	var lastVolume [4]*vgmfile.Event
	var lastToneLatch [4]*vgmfile.Event
	var lastToneData [4]*vgmfile.Event
	var leading, stray []vgmfile.Event
	seenLatch := false

	for i := 0; i < len(segment); i++ {
		ev := segment[i]
		b := ev.Byte

		if !psg.IsLatch(b) {
			// Data byte with no latch earlier in this segment: carries
			// over the channel latched by a prior segment, so it can't
			// be paired with a tone-latch kept from this one. Keep it
			// verbatim, in place at the front of the segment. A data
			// byte after a latch that was not taken as a tone latch's
			// pair is kept verbatim after the survivors.
			if seenLatch {
				stray = append(stray, ev)
			} else {
				leading = append(leading, ev)
			}
			continue
		}
		seenLatch = true

		ch := psg.LatchChannel(b)
		*latchedChannel = ch

		if psg.IsVolumeLatch(b) {
			v := ev
			lastVolume[ch] = &v
			continue
		}

		v := ev
		lastToneLatch[ch] = &v
		lastToneData[ch] = nil
		if i+1 < len(segment) && !psg.IsLatch(segment[i+1].Byte) {
			d := segment[i+1]
			lastToneData[ch] = &d
			i++
		}
	}

	result := make([]vgmfile.Event, 0, len(segment))
	result = append(result, leading...)
	for ch := 0; ch < 4; ch++ {
		if lastVolume[ch] != nil {
			result = append(result, *lastVolume[ch])
		}
	}
	for ch := 0; ch < 4; ch++ {
		if lastToneLatch[ch] != nil {
			result = append(result, *lastToneLatch[ch])
			if lastToneData[ch] != nil {
				result = append(result, *lastToneData[ch])
			}
		}
	}
	result = append(result, stray...)
	return result
}
