package workspace

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/seqchk/internal/pairing"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("@r1\nACGT\n+\nIIII\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptions_Validate_SubsampleHeadConflict(t *testing.T) {
	opts := Options{Dir: t.TempDir(), Subsample: 5, Head: 5}
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected error for --subsample + --head")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should say mutually exclusive, got: %v", err)
	}
}

func TestOptions_Validate_MissingReadFile(t *testing.T) {
	opts := Options{Dir: t.TempDir(), Reads: []string{"/no/such/reads_R1.fastq.gz"}}
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected error for missing read file")
	}
	if !strings.Contains(err.Error(), "/no/such/reads_R1.fastq.gz") {
		t.Errorf("error should name the missing path, got: %v", err)
	}
}

func TestOptions_Validate_MissingReference(t *testing.T) {
	dir := t.TempDir()
	reads := writeFile(t, filepath.Join(dir, "s_R1.fastq.gz"))

	opts := Options{Dir: dir, Reads: []string{reads}, Reference: filepath.Join(dir, "ref.fa")}
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected error for missing reference")
	}
	if !strings.Contains(err.Error(), "reference") {
		t.Errorf("error should identify the reference argument, got: %v", err)
	}
}

func TestOptions_Validate_AbsolutizesPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "s_R1.fastq.gz"))

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	opts := Options{Dir: "ws", Reads: []string{"s_R1.fastq.gz"}}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !filepath.IsAbs(opts.Reads[0]) {
		t.Errorf("read path not absolute: %q", opts.Reads[0])
	}
	if !filepath.IsAbs(opts.Dir) {
		t.Errorf("workspace dir not absolute: %q", opts.Dir)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func testConfig(t *testing.T, opts Options) *Config {
	t.Helper()
	return NewConfig(opts, pairing.Pair(opts.Reads, quietLogger()))
}

func TestMaterialize_WritesThreeArtifacts(t *testing.T) {
	dir := t.TempDir()
	reads := writeFile(t, filepath.Join(dir, "SAMPLE1_R1_001.fastq.gz"))

	ws := filepath.Join(dir, "ws")
	opts := Options{Dir: ws, Reads: []string{reads}, Seed: 1234}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if err := Materialize(opts.Dir, testConfig(t, opts)); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	for _, name := range []string{ConfigFile, WorkflowFile, IgnoreFile} {
		if _, err := os.Stat(filepath.Join(ws, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(ws, ConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config.json is not valid JSON: %v", err)
	}
	samples, ok := cfg["samples"].(map[string]any)
	if !ok || samples["SAMPLE1"] == nil {
		t.Errorf("config samples = %v, want SAMPLE1", cfg["samples"])
	}
	if cfg["subsample_seed"] != float64(1234) {
		t.Errorf("subsample_seed = %v, want 1234", cfg["subsample_seed"])
	}
	if _, present := cfg["reference"]; present {
		t.Error("reference should be omitted when unset")
	}

	ignore, err := os.ReadFile(filepath.Join(ws, IgnoreFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(ignore) != "output/\ntmp/\nlogs/\n.snakemake/\n" {
		t.Errorf("ignore list = %q", ignore)
	}

	wf, err := os.ReadFile(filepath.Join(ws, WorkflowFile))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(wf, []byte(`configfile: "config.json"`)) {
		t.Error("workflow should read config.json")
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	dir := t.TempDir()
	reads := writeFile(t, filepath.Join(dir, "S_R1.fastq.gz"))

	ws := filepath.Join(dir, "ws")
	opts := Options{Dir: ws, Reads: []string{reads}, Seed: 7, Mash: true}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}

	read := func() (string, string) {
		t.Helper()
		c, err := os.ReadFile(filepath.Join(ws, ConfigFile))
		if err != nil {
			t.Fatal(err)
		}
		w, err := os.ReadFile(filepath.Join(ws, WorkflowFile))
		if err != nil {
			t.Fatal(err)
		}
		return string(c), string(w)
	}

	if err := Materialize(opts.Dir, testConfig(t, opts)); err != nil {
		t.Fatal(err)
	}
	cfg1, wf1 := read()
	if err := Materialize(opts.Dir, testConfig(t, opts)); err != nil {
		t.Fatal(err)
	}
	cfg2, wf2 := read()

	if cfg1 != cfg2 {
		t.Error("config.json differs across identical regenerations")
	}
	if wf1 != wf2 {
		t.Error("Snakefile differs across identical regenerations")
	}
}

func TestMaterialize_ReusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	reads := writeFile(t, filepath.Join(dir, "S_R1.fastq.gz"))

	ws := filepath.Join(dir, "ws")
	if err := os.MkdirAll(ws, 0o755); err != nil {
		t.Fatal(err)
	}
	unrelated := filepath.Join(ws, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep me\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := Options{Dir: ws, Reads: []string{reads}}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := Materialize(opts.Dir, testConfig(t, opts)); err != nil {
		t.Fatalf("Materialize() into existing dir: %v", err)
	}

	data, err := os.ReadFile(unrelated)
	if err != nil || string(data) != "keep me\n" {
		t.Errorf("unrelated file touched: %q, %v", data, err)
	}
}
