package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// batchManifest is the YAML document shape for -b/--batch: a flat list
// of convertJob entries, each with the same fields as the single-file
// CLI flags.
type batchManifest struct {
	Jobs []convertJob `yaml:"jobs"`
}

// runBatch loads a YAML manifest and runs every job in order, collecting
// (rather than aborting on) per-job failures so one bad entry doesn't
// block the rest of the run.
func runBatch(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var manifest batchManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var failures int
	for _, job := range manifest.Jobs {
		if job.Format == "" {
			job.Format = "vgm"
		}
		log.Info("converting", "input", job.Input, "output", job.Output)
		if err := runConvert(job); err != nil {
			log.Error("job failed", "input", job.Input, "err", err)
			failures++
			continue
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d jobs failed", failures, len(manifest.Jobs))
	}
	return nil
}
