package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/me/seqchk/internal/pairing"
)

// Options holds everything the generator needs to materialize a workspace.
// Values come straight from the command line.
type Options struct {
	Dir         string   // workspace directory
	Reads       []string // raw read files, positional
	Reference   string   // optional reference genome
	KrakenDB    string   // optional kraken2 database directory
	SampleSheet string   // optional explicit sample sheet (YAML)
	Subsample   int      // random subsample target, 0 = off
	Head        int      // head-truncation count, 0 = off
	Seed        int      // subsampling seed
	Mash        bool     // pairwise mash distances
}

// Validate checks option combinations and path existence before any
// artifact is written, and normalizes all accepted paths to absolute
// form in place. Errors name the offending argument value.
func (o *Options) Validate() error {
	if o.Subsample > 0 && o.Head > 0 {
		return fmt.Errorf("--subsample and --head are mutually exclusive, pick one")
	}

	for i, path := range o.Reads {
		abs, err := absExisting("read file", path)
		if err != nil {
			return err
		}
		o.Reads[i] = abs
	}

	if o.Reference != "" {
		abs, err := absExisting("reference", o.Reference)
		if err != nil {
			return err
		}
		o.Reference = abs
	}

	if o.KrakenDB != "" {
		abs, err := absExisting("kraken database", o.KrakenDB)
		if err != nil {
			return err
		}
		o.KrakenDB = abs
	}

	if o.SampleSheet != "" {
		abs, err := absExisting("sample sheet", o.SampleSheet)
		if err != nil {
			return err
		}
		o.SampleSheet = abs
	}

	abs, err := filepath.Abs(o.Dir)
	if err != nil {
		return fmt.Errorf("workspace directory %q: %w", o.Dir, err)
	}
	o.Dir = abs

	return nil
}

// ResolveSheet validates and absolutizes every path declared in an
// explicit sample sheet, in place.
func ResolveSheet(sheet pairing.Sheet) error {
	for key, slots := range sheet {
		for slot, path := range slots {
			abs, err := absExisting(fmt.Sprintf("sample sheet entry %s/%s", key, slot), path)
			if err != nil {
				return err
			}
			slots[slot] = abs
		}
	}
	return nil
}

// absExisting resolves path to absolute form and verifies it exists.
func absExisting(kind, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", kind, path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%s %q: %w", kind, path, err)
	}
	return abs, nil
}
