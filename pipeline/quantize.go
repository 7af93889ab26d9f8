package pipeline

import "vgmforge/vgmfile"

// Quantize resamples an irregular wait-event stream onto a fixed tick
// grid. rateHz must evenly divide 44100; every Write
// between two tick boundaries is buffered and flushed immediately ahead
// of the wait that crosses the boundary, and that wait is re-emitted as
// a run of canonical Wait50/Wait60 events when it is a whole multiple of
// 882/735 samples and that unit is a whole number of ticks, falling back
// to a single raw Wait otherwise. A single
// flush may consolidate several silent ticks (capped at 65535 samples,
// the largest value a raw Wait argument can carry) when no writes fall
// between them. m.Rate is updated to rateHz.
func Quantize(events []vgmfile.Event, m *vgmfile.Metadata, rateHz uint32) ([]vgmfile.Event, error) {
	if rateHz == 0 || 44100%rateHz != 0 {
		return nil, vgmfile.NewBadQuantizationRate("44100 is not evenly divisible by rate %d", rateHz)
	}
	interval := uint64(44100) / uint64(rateHz)
	maxChunk := (uint64(65535) / interval) * interval

	out := make([]vgmfile.Event, 0, len(events))
	var pending []vgmfile.Event

	var sampleNow uint64
	var tickNow uint64

	// emitWait decomposes a chunk into whole 882-sample (Wait50) or
	// 735-sample (Wait60) units when it divides evenly into one of them
	// and that unit is itself a whole number of ticks, otherwise emits it
	// as a single raw Wait.
	emitWait := func(samples uint64) {
		switch {
		case 882%interval == 0 && samples%882 == 0:
			for n := samples / 882; n > 0; n-- {
				out = append(out, vgmfile.Event{Kind: vgmfile.EventWait50})
			}
		case 735%interval == 0 && samples%735 == 0:
			for n := samples / 735; n > 0; n-- {
				out = append(out, vgmfile.Event{Kind: vgmfile.EventWait60})
			}
		default:
			out = append(out, vgmfile.NewWait(uint16(samples)))
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case vgmfile.EventEnd:
			out = append(out, pending...)
			pending = nil
			out = append(out, ev)
			continue

		case vgmfile.EventWrite, vgmfile.EventWriteDual, vgmfile.EventOther:
			pending = append(pending, ev)
			continue
		}

		sampleNow += uint64(ev.WaitSamples())

		for sampleNow-tickNow >= interval {
			remaining := sampleNow - tickNow
			chunk := remaining - remaining%interval
			if chunk > maxChunk {
				chunk = maxChunk
			}

			out = append(out, pending...)
			pending = nil
			emitWait(chunk)
			tickNow += chunk
		}
	}

	out = append(out, pending...)
	m.Rate = rateHz
	return out, nil
}
