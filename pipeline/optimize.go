package pipeline

import (
	"vgmforge/psg"
	"vgmforge/vgmfile"
)

// Optimize performs a single forward pass of lossless deduplication
// a volume latch that repeats the channel's current
// volume is dropped, and a tone latch (plus its paired data byte, via a
// one-event lookahead) is dropped when the reconstructed 10-bit tone
// matches the channel's cached value. Non-Write events pass through
// unchanged.
func Optimize(events []vgmfile.Event) []vgmfile.Event {
	out := make([]vgmfile.Event, 0, len(events))

	var cachedTone [4]int32
	var cachedVolume [4]int32
	for i := range cachedTone {
		cachedTone[i] = -1
		cachedVolume[i] = -1
	}

	for i := 0; i < len(events); i++ {
		ev := events[i]
		if ev.Kind != vgmfile.EventWrite {
			out = append(out, ev)
			continue
		}

		b := ev.Byte
		if !psg.IsLatch(b) {
			// Stray data byte with nothing latched in this pass;
			// malformed but tolerated.
			out = append(out, ev)
			continue
		}

		ch := psg.LatchChannel(b)

		if psg.IsVolumeLatch(b) {
			vol := int32(b & 0x0f)
			if cachedVolume[ch] == vol {
				continue
			}
			cachedVolume[ch] = vol
			out = append(out, ev)
			continue
		}

		low4 := int32(b & 0x0f)
		pairedIdx := -1
		var newTone int32
		if i+1 < len(events) && events[i+1].Kind == vgmfile.EventWrite && !psg.IsLatch(events[i+1].Byte) {
			pairedIdx = i + 1
			high6 := int32(events[i+1].Byte & 0x3f)
			newTone = high6<<4 | low4
		} else {
			cachedHigh := int32(0)
			if cachedTone[ch] >= 0 {
				cachedHigh = cachedTone[ch] >> 4
			}
			newTone = cachedHigh<<4 | low4
		}

		if cachedTone[ch] == newTone {
			if pairedIdx >= 0 {
				i = pairedIdx
			}
			continue
		}

		cachedTone[ch] = newTone
		out = append(out, ev)
		if pairedIdx >= 0 {
			out = append(out, events[pairedIdx])
			i = pairedIdx
		}
	}

	return out
}
