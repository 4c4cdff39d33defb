package workspace

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact names inside the workspace directory.
const (
	ConfigFile   = "config.json"
	WorkflowFile = "Snakefile"
	IgnoreFile   = ".gitignore"
)

// The workflow description is a fixed artifact; its interface to the
// generator is only the config.json field set. Versioned independently
// (see the header comment inside the file).
//
//go:embed Snakefile
var workflowText []byte

// Subdirectories the executor populates; kept out of version control.
const ignoreRules = "output/\ntmp/\nlogs/\n.snakemake/\n"

// Materialize creates the workspace directory if needed and writes the
// three artifacts: config document, workflow description, ignore list.
// Re-running with the same Config overwrites them with identical bytes;
// nothing else in a pre-existing directory is touched.
func Materialize(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create workspace %q: %w", dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	files := []struct {
		name    string
		content []byte
	}{
		{ConfigFile, data},
		{WorkflowFile, workflowText},
		{IgnoreFile, []byte(ignoreRules)},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}
