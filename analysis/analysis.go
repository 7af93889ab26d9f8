// Package analysis implements the human-readable song summary: a
// thin, best-effort report over a parsed Pipeline. It is explicitly
// out of the core pipeline's scope — nothing downstream consumes
// its output except the CLI's --analyse flag.
package analysis

import (
	"fmt"
	"strings"

	"vgmforge/psg"
	"vgmforge/vgmfile"
)

// Report is a summary of one Pipeline's event list, grouped by channel.
type Report struct {
	TotalEvents    int
	WriteCount     int
	WaitCount      int
	EndCount       int
	TotalWaitTicks uint64
	ChannelWrites  [4]int
	ToneWrites     [4]int
	VolumeWrites   [4]int
	MaxRunLength   int
}

// Analyse walks events once, tallying write/wait counts per channel.
// This mirrors the counting pass the reference tool's analyse()/
// insights() dump over the command list, trimmed to the fields this
// core's CLI actually prints.
func Analyse(events []vgmfile.Event) Report {
	var r Report
	var latchedChannel uint8
	run := 0

	for _, ev := range events {
		r.TotalEvents++
		switch ev.Kind {
		case vgmfile.EventWrite:
			r.WriteCount++
			run++
			if run > r.MaxRunLength {
				r.MaxRunLength = run
			}

			ch, kind, _ := psg.Decode(ev.Byte, latchedChannel)
			if psg.IsLatch(ev.Byte) {
				latchedChannel = ch
			}
			r.ChannelWrites[ch]++
			switch kind {
			case psg.VolumeLatch:
				r.VolumeWrites[ch]++
			case psg.ToneLatchLow4, psg.ToneDataHigh6:
				r.ToneWrites[ch]++
			}

		case vgmfile.EventEnd:
			r.EndCount++
			run = 0

		default:
			if samples := ev.WaitSamples(); samples > 0 {
				r.WaitCount++
				r.TotalWaitTicks += uint64(samples)
				run = 0
			}
		}
	}

	return r
}

// String renders a short multi-line summary, in the same spirit as the
// reference tool's console dump.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "events: %d  writes: %d  waits: %d  ends: %d\n", r.TotalEvents, r.WriteCount, r.WaitCount, r.EndCount)
	fmt.Fprintf(&b, "total wait samples: %d  longest write run: %d\n", r.TotalWaitTicks, r.MaxRunLength)
	for ch := 0; ch < 4; ch++ {
		fmt.Fprintf(&b, "  ch%d: %d writes (%d tone, %d volume)\n", ch, r.ChannelWrites[ch], r.ToneWrites[ch], r.VolumeWrites[ch])
	}
	return b.String()
}
