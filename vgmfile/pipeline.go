// Package vgmfile is the shared intermediate representation that every
// stage of the conversion pipeline reads and writes: a typed event list
// plus header metadata plus a GD3 text record. Container parsing produces
// one; the transform passes (package pipeline) consume and return one;
// the writers (package writer) serialize one.
//
// This replaces the source tool's single stateful VgmStream class (which
// held command_list/metadata/gd3_data as loose instance attributes) with
// one explicit value threaded through pure(ish) methods, per DESIGN NOTES
// §9 ("Single global state in VGM class").
package vgmfile

// Pipeline is the owned, in-memory representation of one VGM song as it
// moves through the conversion stages.
type Pipeline struct {
	Metadata Metadata
	GD3      GD3
	HasGD3   bool
	Events   []Event

	// SourceFilename is used to synthesize a default GD3 title and, for
	// the binary writer, a default author/title when GD3 fields are
	// empty.
	SourceFilename string
}

// Clone returns a deep copy of p; transforms that want to preserve the
// pre-transform state (e.g. for testing round-trip invariants) can clone
// first instead of mutating shared state.
func (p Pipeline) Clone() Pipeline {
	out := p
	out.Events = make([]Event, len(p.Events))
	copy(out.Events, p.Events)
	out.GD3 = GD3{}
	for i, f := range p.GD3.Fields {
		if f != nil {
			cp := make([]uint16, len(f))
			copy(cp, f)
			out.GD3.Fields[i] = cp
		}
	}
	return out
}
