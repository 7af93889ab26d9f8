package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"vgmforge/analysis"
	"vgmforge/container"
	"vgmforge/pipeline"
	"vgmforge/vgmfile"
	"vgmforge/writer"
)

// convertJob describes one file's worth of work, shared by the
// single-file CLI path and each entry of a batch manifest.
type convertJob struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`

	Transpose  string `yaml:"transpose"`
	QuantizeHz uint32 `yaml:"quantize"`
	StripGD3   bool   `yaml:"strip_gd3"`
	Analyse    bool   `yaml:"analyse"`

	// FilterChannel selects a PSG channel (0-3) to drop entirely; -1
	// (the CLI flag default) means "no filtering". A batch manifest
	// entry that omits this field gets Go's zero value, 0, which filters
	// channel 0 -- manifests that want no filtering must write -1
	// explicitly.
	FilterChannel int `yaml:"filter_channel"`
}

// runConvert executes the pipeline of §4.3 over job.Input and writes
// the result to job.Output in the requested format, following the
// fixed ordering: filter, optimize, optimize2, optimize,
// transpose, quantize, optimize, optimize2, optimize.
func runConvert(job convertJob) error {
	raw, err := os.ReadFile(job.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", job.Input, err)
	}

	p, err := container.Parse(raw, filepath.Base(job.Input))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", job.Input, err)
	}
	log.Debug("parsed", "file", job.Input, "events", len(p.Events), "clock", p.Metadata.ClockHz())

	if job.FilterChannel >= 0 {
		p.Events = pipeline.FilterChannel(p.Events, uint8(job.FilterChannel))
	}

	p.Events = pipeline.Optimize(p.Events)
	p.Events = pipeline.Optimize2(p.Events)
	p.Events = pipeline.Optimize(p.Events)

	if job.Transpose != "" {
		profile, ok := vgmfile.ClockProfileByName(job.Transpose)
		if !ok {
			return fmt.Errorf("unrecognized clock profile %q", job.Transpose)
		}
		p.Events = pipeline.Transpose(p.Events, &p.Metadata, profile)
	}

	if job.QuantizeHz != 0 {
		p.Events, err = pipeline.Quantize(p.Events, &p.Metadata, job.QuantizeHz)
		if err != nil {
			return fmt.Errorf("quantizing %s: %w", job.Input, err)
		}
	}

	p.Events = pipeline.Optimize(p.Events)
	p.Events = pipeline.Optimize2(p.Events)
	p.Events = pipeline.Optimize(p.Events)

	if job.StripGD3 {
		p.HasGD3 = false
		p.GD3 = vgmfile.GD3{}
	}

	if job.Analyse {
		report := analysis.Analyse(p.Events)
		fmt.Fprintf(os.Stderr, "%s:\n%s", job.Input, report.String())
	}

	var out []byte
	switch job.Format {
	case "", "vgm":
		out, err = writer.WriteVGM(p)
	case "bin":
		out, err = writer.WriteBinary(p)
	default:
		return fmt.Errorf("unrecognized output format %q", job.Format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", job.Output, err)
	}

	if err := os.WriteFile(job.Output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", job.Output, err)
	}
	log.Info("wrote", "file", job.Output, "bytes", len(out))
	return nil
}
