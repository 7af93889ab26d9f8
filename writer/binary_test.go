package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgmforge/vgmfile"
)

func TestWriteBinaryHeader(t *testing.T) {
	// A quantized 60Hz stream of 120 ticks, title "X", empty author
	// (falls back to the source filename "f.vgm").
	events := make([]vgmfile.Event, 0, 121)
	for i := 0; i < 119; i++ {
		events = append(events, vgmfile.Event{Kind: vgmfile.EventWait60})
	}
	events = append(events, vgmfile.NewEnd())

	p := vgmfile.Pipeline{
		Metadata:       vgmfile.Metadata{Rate: 60},
		HasGD3:         true,
		Events:         events,
		SourceFilename: "f.vgm",
	}
	p.GD3.Fields[vgmfile.GD3TitleEng] = vgmfile.UTF16FromString("X")

	out, err := WriteBinary(p)
	require.NoError(t, err)

	want := []byte{0x05, 0x3C, 0x78, 0x00, 0x02, 0x00, 0x02, 0x58, 0x00, 0x06, 0x66, 0x2E, 0x76, 0x67, 0x6D, 0x00}
	require.GreaterOrEqual(t, len(out), len(want))
	assert.Equal(t, want, out[:len(want)])
}

func TestWriteBinaryRequiresQuantizedRate(t *testing.T) {
	p := vgmfile.Pipeline{Events: []vgmfile.Event{vgmfile.NewEnd()}}
	_, err := WriteBinary(p)
	k, ok := vgmfile.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, vgmfile.StreamError, k)
}

func TestBuildPacketsGroupsWritesByTick(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		vgmfile.NewWrite(0x0A),
		{Kind: vgmfile.EventWait50}, // interval 882, one tick elapses
		vgmfile.NewEnd(),
	}
	packets, count, err := buildPackets(events, 882)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)
	assert.Equal(t, []byte{0x02, 0x9F, 0x0A, 0x00}, packets)
}

func TestBuildPacketsEmitsEmptyPacketsForSilentTicks(t *testing.T) {
	events := []vgmfile.Event{
		vgmfile.NewWrite(0x9F),
		vgmfile.NewWait(1764), // two ticks at interval 882, no writes in between
		vgmfile.NewEnd(),
	}
	packets, count, err := buildPackets(events, 882)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), count)
	assert.Equal(t, []byte{0x01, 0x9F, 0x00, 0x00}, packets)
}

func TestBuildPacketsRejectsNonMultipleWait(t *testing.T) {
	events := []vgmfile.Event{vgmfile.NewWait(100), vgmfile.NewEnd()}
	_, _, err := buildPackets(events, 882)
	k, ok := vgmfile.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, vgmfile.StreamError, k)
}

func TestTranscodeASCIIDropsNonASCII(t *testing.T) {
	assert.Equal(t, "caf", transcodeASCII("café"))
}
