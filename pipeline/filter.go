// Package pipeline holds the stateful transform passes that run over a
// vgmfile.Pipeline's event list: channel filtering, lossless and
// per-tick deduplication, clock transpose, and quantization. None of
// these re-parse bytes; they all walk the already-decoded Event slice.
package pipeline

import (
	"vgmforge/psg"
	"vgmforge/vgmfile"
)

// FilterChannel drops every Write event whose effective channel (the
// channel a latch byte selects, or the channel still latched for a data
// byte) equals ch. All non-Write events pass through untouched.
func FilterChannel(events []vgmfile.Event, ch uint8) []vgmfile.Event {
	out := make([]vgmfile.Event, 0, len(events))
	var latchedChannel uint8

	for _, ev := range events {
		if ev.Kind != vgmfile.EventWrite {
			out = append(out, ev)
			continue
		}

		effective := latchedChannel
		if psg.IsLatch(ev.Byte) {
			effective = psg.LatchChannel(ev.Byte)
			latchedChannel = effective
		}

		if effective == ch {
			continue
		}
		out = append(out, ev)
	}
	return out
}
