package vgmfile

// DualChipBit is bit 30 of sn76489_clock, which enables second-chip mode.
const DualChipBit = uint32(1) << 30

// ClockMask isolates the 30 low bits of sn76489_clock that carry the Hz
// value (bit 30 is the dual-chip flag, bit 31 is unused).
const ClockMask = DualChipBit - 1

// Metadata mirrors the recognized VGM header fields. Offset
// fields (GD3Offset, LoopOffset, VGMDataOffset) are stored as deltas from
// their own header slot, matching the on-wire representation.
type Metadata struct {
	Version uint32

	SN76489Clock    uint32
	YM2413Clock     uint32
	YM2612Clock     uint32
	YM2151Clock     uint32
	SN76489Feedback uint16
	SN76489SRWidth  uint8

	GD3Offset     uint32
	TotalSamples  uint32
	LoopOffset    uint32
	LoopSamples   uint32
	Rate          uint32
	VGMDataOffset uint32
}

// DualChipEnabled reports whether bit 30 of SN76489Clock is set.
func (m Metadata) DualChipEnabled() bool {
	return m.SN76489Clock&DualChipBit != 0
}

// ClockHz returns the SN76489 clock frequency with the dual-chip flag bit
// masked out.
func (m Metadata) ClockHz() uint32 {
	return m.SN76489Clock & ClockMask
}

// DisableDualChip clears bit 30 of SN76489Clock, the working-metadata
// suppression needed once dual-chip mode has been
// detected and its WriteDual events decoded; the writers drop those
// events on output.
func (m *Metadata) DisableDualChip() {
	m.SN76489Clock &^= DualChipBit
}

// SupportedVersions is the accepted set of VGM version numbers on input.
// All versions in this set share the same 64-byte header layout for the
// purposes of this core.
var SupportedVersions = map[uint32]bool{
	0x0101: true,
	0x0110: true,
	0x0150: true,
	0x0151: true,
	0x0160: true,
	0x0161: true,
}

// OutputVersion is the VGM version every WriteVGM call emits, regardless of
// the source version.
const OutputVersion = uint32(0x00000151)

// ClockProfile describes a target chip clock domain.
type ClockProfile struct {
	Name     string
	ClockHz  uint32
	Feedback uint16
	SRWidth  int
}

// Named clock profiles selectable by transpose().
var (
	ProfileNTSC = ClockProfile{Name: "ntsc", ClockHz: 3579545, Feedback: 0x0006, SRWidth: 16}
	ProfilePAL  = ClockProfile{Name: "pal", ClockHz: 4433619, Feedback: 0x0006, SRWidth: 16}
	ProfileBBC  = ClockProfile{Name: "bbc", ClockHz: 4000000, Feedback: 0x0003, SRWidth: 15}
)

// ClockProfileByName looks up a profile case-insensitively. The second
// return value is false for an unrecognized name.
func ClockProfileByName(name string) (ClockProfile, bool) {
	switch lower(name) {
	case "ntsc":
		return ProfileNTSC, true
	case "pal":
		return ProfilePAL, true
	case "bbc":
		return ProfileBBC, true
	default:
		return ClockProfile{}, false
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
