package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"vgmforge/vgmfile"
)

func TestQuantizeRejectsNonDivisorRate(t *testing.T) {
	_, err := Quantize(nil, &vgmfile.Metadata{}, 7000)
	k, ok := vgmfile.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, vgmfile.BadQuantizationRate, k)
}

func TestQuantizeRejectsZeroRate(t *testing.T) {
	_, err := Quantize(nil, &vgmfile.Metadata{}, 0)
	assert.Error(t, err)
}

func TestQuantizeTo50Hz(t *testing.T) {
	// Both writes fall within the first tick, so
	// no wait is emitted for them individually; the combined 882-sample
	// wait becomes a single canonical Wait50.
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		vgmfile.NewWait(441),
		vgmfile.NewWrite(0x0A),
		vgmfile.NewWait(441),
		vgmfile.NewEnd(),
	}
	var m vgmfile.Metadata
	got, err := Quantize(events, &m, 50)
	require.NoError(t, err)

	want := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		vgmfile.NewWrite(0x0A),
		{Kind: vgmfile.EventWait50},
		vgmfile.NewEnd(),
	}
	assert.Equal(t, want, got)
	assert.Equal(t, uint32(50), m.Rate)
}

func TestQuantizeDecomposesMultipleIntervals(t *testing.T) {
	// A single 1764-sample wait (= 2*882) decomposes into two Wait50s,
	// not one raw Wait: a flushed chunk that evenly divides into whole
	// 882- or 735-sample units emits that many canonical wait events.
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		vgmfile.NewWait(1764),
		vgmfile.NewEnd(),
	}
	var m vgmfile.Metadata
	got, err := Quantize(events, &m, 50)
	require.NoError(t, err)

	want := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		{Kind: vgmfile.EventWait50},
		{Kind: vgmfile.EventWait50},
		vgmfile.NewEnd(),
	}
	assert.Equal(t, want, got)
}

func TestQuantizeNonCanonicalIntervalEmitsRawWait(t *testing.T) {
	// interval = 44100/100 = 441, not a multiple of 735 or 882.
	events := []vgmfile.Event{
		vgmfile.NewWait(441),
		vgmfile.NewEnd(),
	}
	var m vgmfile.Metadata
	got, err := Quantize(events, &m, 100)
	require.NoError(t, err)

	want := []vgmfile.Event{
		vgmfile.NewWait(441),
		vgmfile.NewEnd(),
	}
	assert.Equal(t, want, got)
}

func TestQuantizeEveryWaitIsAMultipleOfInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.SampledFrom([]uint32{25, 30, 50, 60, 100, 150}).Draw(t, "rate")
		n := rapid.IntRange(0, 12).Draw(t, "n")

		var events []vgmfile.Event
		var totalBefore uint64
		for i := 0; i < n; i++ {
			w := uint16(rapid.IntRange(1, 2000).Draw(t, "w"))
			events = append(events, vgmfile.NewWait(w))
			totalBefore += uint64(w)
		}
		events = append(events, vgmfile.NewEnd())

		var m vgmfile.Metadata
		got, err := Quantize(events, &m, rate)
		require.NoError(t, err)

		interval := uint64(44100) / uint64(rate)
		var totalAfter uint64
		for _, ev := range got {
			s := ev.WaitSamples()
			if s == 0 {
				continue
			}
			assert.Equal(t, uint64(0), uint64(s)%interval)
			totalAfter += uint64(s)
		}

		var diff uint64
		if totalAfter > totalBefore {
			diff = totalAfter - totalBefore
		} else {
			diff = totalBefore - totalAfter
		}
		assert.Less(t, diff, interval)
	})
}
