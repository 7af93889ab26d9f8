// Command vgmforge converts SN76489 VGM chiptunes between clock
// domains and tick rates, and can re-emit either a VGM 1.51 container
// or the compact packet-binary format.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func main() {
	var (
		batchFile      = pflag.StringP("batch", "b", "", "YAML batch manifest; when set, all other flags except --verbose are ignored")
		output         = pflag.StringP("output", "o", "", "output file path (required in single-file mode)")
		format         = pflag.StringP("format", "f", "vgm", "output format: vgm or bin")
		transposeTo    = pflag.String("transpose", "", "retarget clock profile: ntsc, pal, or bbc")
		quantizeRate   = pflag.Uint32("quantize", 0, "resample to this tick rate in Hz (0 disables quantization)")
		filterChannel  = pflag.Int("filter-channel", -1, "drop all writes to this PSG channel (0-3)")
		stripGD3       = pflag.Bool("strip-gd3", false, "drop the GD3 tag on output")
		analyse        = pflag.Bool("analyse", false, "print a summary of the event stream to stderr")
		verbose        = pflag.BoolP("verbose", "v", false, "enable debug logging")
		help           = pflag.BoolP("help", "h", false, "show usage")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vgmforge - retune and quantize SN76489 VGM chiptunes\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vgmforge [flags] input.vgm\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *batchFile != "" {
		if err := runBatch(*batchFile); err != nil {
			log.Fatal("batch run failed", "err", err)
		}
		return
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	job := convertJob{
		Input:         pflag.Arg(0),
		Output:        *output,
		Format:        *format,
		Transpose:     *transposeTo,
		QuantizeHz:    *quantizeRate,
		FilterChannel: *filterChannel,
		StripGD3:      *stripGD3,
		Analyse:       *analyse,
	}
	if job.Output == "" {
		log.Fatal("--output is required")
	}
	if err := runConvert(job); err != nil {
		log.Fatal("conversion failed", "input", job.Input, "err", err)
	}
}
