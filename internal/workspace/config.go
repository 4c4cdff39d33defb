package workspace

import (
	"github.com/me/seqchk/internal/pairing"
)

// Config is the document written to config.json in the workspace. The
// snakemake workflow reads it at execution time; nothing in this program
// reads it back. All paths are absolute by the time a Config is built.
type Config struct {
	Samples       *pairing.Set `json:"samples"`
	Reference     string       `json:"reference,omitempty"`
	Subsample     int          `json:"subsample"`
	Head          int          `json:"head"`
	SubsampleSeed int          `json:"subsample_seed"`
	KrakenDB      string       `json:"kraken_db,omitempty"`
	Mash          bool         `json:"mash"`
}

// NewConfig assembles the config document from validated options and the
// paired sample set.
func NewConfig(opts Options, samples *pairing.Set) *Config {
	return &Config{
		Samples:       samples,
		Reference:     opts.Reference,
		Subsample:     opts.Subsample,
		Head:          opts.Head,
		SubsampleSeed: opts.Seed,
		KrakenDB:      opts.KrakenDB,
		Mash:          opts.Mash,
	}
}
