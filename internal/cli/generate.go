package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/me/seqchk/internal/pairing"
	"github.com/me/seqchk/internal/workspace"
	"github.com/spf13/cobra"
)

// generate is the whole program: validate options, pair filenames, merge
// the optional sample sheet, materialize the workspace, confirm. All
// validation happens before the first write so a doomed run leaves no
// partial workspace behind.
func generate(cmd *cobra.Command, opts workspace.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	samples := pairing.Pair(opts.Reads, logger)
	logger.Debug("paired input reads", "samples", samples.Len(), "files", len(opts.Reads))

	if opts.SampleSheet != "" {
		sheet, err := pairing.LoadSheet(opts.SampleSheet)
		if err != nil {
			return err
		}
		if err := workspace.ResolveSheet(sheet); err != nil {
			return err
		}
		samples.Merge(sheet)
		logger.Debug("merged sample sheet", "sheet", opts.SampleSheet, "entries", len(sheet))
	}

	if err := workspace.Materialize(opts.Dir, workspace.NewConfig(opts, samples)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Workspace ready: %s\n", opts.Dir)
	fmt.Fprintf(out, "  %d samples, %d read files (%s)\n",
		samples.Len(), samples.NumFiles(), humanize.IBytes(totalSize(samples.Paths())))
	fmt.Fprintf(out, "\nNext:\n  cd %s\n  snakemake --cores all\n", opts.Dir)
	return nil
}

// totalSize sums the input file sizes. The files were stat'd during
// validation, so errors here are ignored rather than fatal.
func totalSize(paths []string) uint64 {
	var n uint64
	for _, path := range paths {
		if fi, err := os.Stat(path); err == nil {
			n += uint64(fi.Size())
		}
	}
	return n
}
