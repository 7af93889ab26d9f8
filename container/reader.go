// Package container reads and writes the outer VGM file format: the
// gzip wrapper, the 64-byte header, the GD3 tag, and the command stream.
// It knows nothing about PSG semantics or the transform passes; it hands
// back (and re-serializes) a vgmfile.Pipeline.
package container

import (
	"vgmforge/vgmfile"
)

// Parse decodes a VGM or VGZ byte stream into a Pipeline: gunzip if
// needed, parse the header, parse GD3, decode the command stream, then
// suppress the dual-chip flag bit in the working metadata now that any
// WriteDual events have been captured.
//
// sourceFilename is used only to synthesize a default GD3 title when
// none is present in the file.
func Parse(raw []byte, sourceFilename string) (vgmfile.Pipeline, error) {
	data, err := maybeGunzip(raw)
	if err != nil {
		return vgmfile.Pipeline{}, vgmfile.NewNotVgm("not a VGM file and not gzip-compressed: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "Vgm " {
		return vgmfile.Pipeline{}, vgmfile.NewNotVgm("missing \"Vgm \" magic number")
	}

	meta, err := parseHeader(data)
	if err != nil {
		return vgmfile.Pipeline{}, err
	}

	gd3, hasGD3 := parseGD3(data, meta, sourceFilename)

	dualChip := meta.DualChipEnabled()
	events, err := parseCommands(data, vgmDataAbsoluteOffset(meta), dualChip)
	if err != nil {
		return vgmfile.Pipeline{}, err
	}

	// The dual-chip flag has done its job (gating WriteDual decoding
	// above); the working metadata no longer needs it, and every
	// downstream consumer should treat the clock as single-chip.
	meta.DisableDualChip()

	return vgmfile.Pipeline{
		Metadata:       meta,
		GD3:            gd3,
		HasGD3:         hasGD3,
		Events:         events,
		SourceFilename: sourceFilename,
	}, nil
}
