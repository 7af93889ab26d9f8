package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vgmforge/vgmfile"
)

func TestOptimizeDropsRepeatedVolume(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x90), // ch0 vol=0
		vgmfile.NewWrite(0x90), // same vol again, redundant
		vgmfile.NewEnd(),
	}
	got := Optimize(events)
	want := []vgmfile.Event{vgmfile.NewWrite(0x90), vgmfile.NewEnd()}
	assert.Equal(t, want, got)
}

func TestOptimizeDropsRedundantTonePair(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x8F), // ch0 tone latch low=0xf
		vgmfile.NewWrite(0x00), // data high=0x00 -> N=15
		vgmfile.NewWrite(0x8F), // same N=15 again
		vgmfile.NewWrite(0x00),
		vgmfile.NewEnd(),
	}
	got := Optimize(events)
	want := []vgmfile.Event{
		vgmfile.NewWrite(0x8F),
		vgmfile.NewWrite(0x00),
		vgmfile.NewEnd(),
	}
	assert.Equal(t, want, got)
}

func TestOptimizeKeepsDifferingTone(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x8F),
		vgmfile.NewWrite(0x00),
		vgmfile.NewWrite(0x81), // same channel, different low nibble -> different N
		vgmfile.NewWrite(0x00),
	}
	got := Optimize(events)
	assert.Equal(t, events, got)
}

func TestOptimizeIdempotent(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x90),
		vgmfile.NewWrite(0x90),
		vgmfile.NewWrite(0x8F),
		vgmfile.NewWrite(0x00),
		vgmfile.NewWrite(0x8F),
		vgmfile.NewWrite(0x00),
		vgmfile.NewWait(100),
		vgmfile.NewEnd(),
	}
	once := Optimize(events)
	twice := Optimize(once)
	assert.Equal(t, once, twice)
}
