package cli

import (
	"log/slog"

	"github.com/me/seqchk/internal/logging"
	"github.com/me/seqchk/internal/workspace"
	"github.com/spf13/cobra"
)

// Version of the seqchk tool.
const Version = "0.3.1"

var logger *slog.Logger

// NewRootCmd creates the root cobra command for the seqchk CLI. The root
// command itself does the work: seqchk is a single-purpose generator.
func NewRootCmd() *cobra.Command {
	var (
		flagDebug     bool
		flagLogLevel  string
		flagLogFormat string
		opts          workspace.Options
	)

	root := &cobra.Command{
		Use:   "seqchk [flags] READS...",
		Short: "seqchk — quickly QC, map, and check a new sequencing run",
		Long: `seqchk pairs raw paired-end FASTQ files into samples and writes a
self-contained snakemake workspace (config.json, Snakefile, .gitignore).
Running snakemake from that workspace performs the actual trimming,
mapping, classification, and reporting via external tools.`,
		Version:      Version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Reads = args
			return generate(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.Flags().StringVarP(&opts.Dir, "output", "o", "seqchk-out", "Workspace directory to generate")
	root.Flags().StringVarP(&opts.Reference, "reference", "r", "", "Reference genome to map reads against (optional)")
	root.Flags().StringVarP(&opts.KrakenDB, "kraken-db", "k", "", "Kraken2 database directory, enables classification (optional)")
	root.Flags().StringVar(&opts.SampleSheet, "sample-sheet", "", "YAML sample sheet overriding filename pairing (optional)")
	root.Flags().IntVarP(&opts.Subsample, "subsample", "s", 0, "Randomly subsample each sample to this many reads (0 = off)")
	root.Flags().IntVar(&opts.Head, "head", 0, "Take this many reads from the start of each file instead (0 = off)")
	root.Flags().IntVar(&opts.Seed, "seed", 1234, "Seed for random subsampling")
	root.Flags().BoolVarP(&opts.Mash, "mash", "m", false, "Estimate pairwise mash distances between samples")

	return root
}
