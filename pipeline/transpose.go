package pipeline

import (
	"vgmforge/psg"
	"vgmforge/vgmfile"
)

// Transpose retunes every tone register to a new clock profile so the
// perceived pitch is preserved, including the coupled periodic-noise
// correction on channel 2. It updates m's clock,
// feedback, and shift-register-width fields in place and returns the
// rewritten event list; if the target clock equals the source clock,
// the event list is returned unchanged.
func Transpose(events []vgmfile.Event, m *vgmfile.Metadata, target vgmfile.ClockProfile) []vgmfile.Event {
	sourceClock := m.ClockHz()
	sourceSRWidth := int(m.SN76489SRWidth)
	if sourceSRWidth == 0 {
		sourceSRWidth = 16
	}

	dualChip := m.DualChipEnabled()
	newClock := target.ClockHz
	if dualChip {
		newClock |= vgmfile.DualChipBit
	}
	m.SN76489Clock = newClock
	m.SN76489Feedback = target.Feedback
	m.SN76489SRWidth = uint8(target.SRWidth)

	if target.ClockHz == sourceClock {
		return events
	}

	out := make([]vgmfile.Event, len(events))
	copy(out, events)

	var latchedChannel uint8
	// latchedTone holds the raw, source-clock register value merged from
	// latch+data bytes. It is never overwritten with a retuned value, so
	// a later retroactive rewrite (channel 3 below) always retunes from
	// the original frequency rather than compounding an earlier retune.
	var latchedTone [4]uint16
	var latchedVolume [4]int8
	for i := range latchedVolume {
		latchedVolume[i] = -1
	}

	t2LoIdx, t2HiIdx := -1, -1

	retuneAt := func(idx int, newTone uint16) {
		b := out[idx].Byte
		out[idx] = vgmfile.NewWrite((b &^ 0x0f) | byte(newTone&0x0f))
	}
	retuneDataAt := func(idx int, newTone uint16) {
		b := out[idx].Byte
		out[idx] = vgmfile.NewWrite((b &^ 0x3f) | byte((newTone>>4)&0x3f))
	}

	for i := 0; i < len(out); i++ {
		ev := out[i]
		if ev.Kind != vgmfile.EventWrite {
			continue
		}
		b := ev.Byte

		ch, kind, payload := psg.Decode(b, latchedChannel)
		if psg.IsLatch(b) {
			latchedChannel = ch
		}

		switch kind {
		case psg.VolumeLatch:
			latchedVolume[ch] = int8(payload)

		case psg.ToneLatchLow4:
			latchedTone[ch] = psg.MergeLatchLow4(latchedTone[ch], byte(payload))

			dataIdx := -1
			for j := i + 1; j < len(out); j++ {
				if out[j].Kind != vgmfile.EventWrite {
					continue
				}
				if !psg.IsLatch(out[j].Byte) {
					dataIdx = j
					latchedTone[ch] = psg.MergeDataHigh6(latchedTone[ch], out[j].Byte)
				}
				break
			}

			if ch == 2 {
				t2LoIdx, t2HiIdx = i, dataIdx
			}

			if ch == 3 {
				// Noise-control value itself is never retuned; only
				// possibly triggers a retroactive ch2 rewrite below.
				noiseVal := latchedTone[3]
				if noiseVal&0x03 == 0x03 && latchedVolume[2] == 15 && t2LoIdx >= 0 {
					n2 := psg.Retune(latchedTone[2], sourceClock, target.ClockHz, true, sourceSRWidth, target.SRWidth)
					retuneAt(t2LoIdx, n2)
					if t2HiIdx >= 0 {
						retuneDataAt(t2HiIdx, n2)
					}
				}
				continue
			}

			periodic := ch == 2 && latchedVolume[2] == 15 && latchedTone[3]&0x03 == 0x03
			n := psg.Retune(latchedTone[ch], sourceClock, target.ClockHz, periodic, sourceSRWidth, target.SRWidth)
			retuneAt(i, n)
			if dataIdx >= 0 {
				retuneDataAt(dataIdx, n)
				i = dataIdx
			}
		}
	}

	return out
}
