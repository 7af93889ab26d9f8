package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgmforge/vgmfile"
)

func TestWriteVGMMinimumFile(t *testing.T) {
	// 64-byte header, eof_offset = 1+64-4 = 61, data starts at 0x40,
	// byte 0x40 = 0x66, no GD3.
	p := vgmfile.Pipeline{
		Metadata: vgmfile.Metadata{SN76489Clock: 3579545},
		Events:   []vgmfile.Event{vgmfile.NewEnd()},
	}
	out, err := WriteVGM(p)
	require.NoError(t, err)

	require.Len(t, out, 65)
	assert.Equal(t, "Vgm ", string(out[0:4]))
	assert.Equal(t, byte(0x66), out[0x40])

	eofOffset := uint32(out[4]) | uint32(out[5])<<8 | uint32(out[6])<<16 | uint32(out[7])<<24
	assert.Equal(t, uint32(61), eofOffset)
}

func TestWriteVGMDropsDualWrite(t *testing.T) {
	// Only the single-chip write and End survive.
	p := vgmfile.Pipeline{
		Metadata: vgmfile.Metadata{SN76489Clock: 3579545},
		Events: []vgmfile.Event{
			vgmfile.NewWrite(0xAA),
			vgmfile.NewWriteDual(0xBB),
			vgmfile.NewEnd(),
		},
	}
	out, err := WriteVGM(p)
	require.NoError(t, err)

	body := out[headerSize:]
	assert.Equal(t, []byte{0x50, 0xAA, 0x66}, body)
}

func TestWriteVGMReattachesGD3(t *testing.T) {
	p := vgmfile.Pipeline{
		Metadata: vgmfile.Metadata{SN76489Clock: 3579545},
		HasGD3:   true,
		Events:   []vgmfile.Event{vgmfile.NewEnd()},
	}
	p.GD3.Fields[vgmfile.GD3TitleEng] = vgmfile.UTF16FromString("Title")

	out, err := WriteVGM(p)
	require.NoError(t, err)

	gd3Off := uint32(out[offGD3Offset]) | uint32(out[offGD3Offset+1])<<8 |
		uint32(out[offGD3Offset+2])<<16 | uint32(out[offGD3Offset+3])<<24
	abs := offGD3Offset + int(gd3Off)
	assert.Equal(t, "Gd3 ", string(out[abs:abs+4]))
}

func TestWriteVGMAlwaysZeroesLoopAndOtherChipClocks(t *testing.T) {
	p := vgmfile.Pipeline{
		Metadata: vgmfile.Metadata{
			SN76489Clock: 3579545,
			LoopOffset:   1234,
			LoopSamples:  5678,
		},
		Events: []vgmfile.Event{vgmfile.NewEnd()},
	}
	out, err := WriteVGM(p)
	require.NoError(t, err)

	for _, off := range []int{offLoopOffset, offLoopSamples, offYM2413Clock, offYM2612Clock, offYM2151Clock} {
		assert.Equal(t, []byte{0, 0, 0, 0}, out[off:off+4])
	}
}
