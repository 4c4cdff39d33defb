package pairing

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
)

// SlotUnknown is the read-slot recorded for a file whose role within a
// pair could not be determined from its name.
const SlotUnknown = "??"

var (
	// One trailing format suffix, optionally compressed. Applied once.
	suffixRe = regexp.MustCompile(`\.(fq|fastq)(\.(gz|bz2|zstd|zst))?$`)
	// Illumina-style read-slot marker: _R1/_R2 followed by _001 or the
	// end of the name. Leftmost occurrence wins.
	slotRe = regexp.MustCompile(`_(R1|R2)(_001|$)`)
)

// Set is the collection of samples inferred from a batch of read files.
// Keys keep the first-occurrence order of the input paths so that
// regenerating a workspace from the same command line produces
// byte-identical output.
type Set struct {
	keys  []string
	reads map[string]map[string]string
}

func NewSet() *Set {
	return &Set{reads: map[string]map[string]string{}}
}

// Add records path under (key, slot). A later Add for the same (key, slot)
// overwrites the earlier path without error.
func (s *Set) Add(key, slot, path string) {
	slots, ok := s.reads[key]
	if !ok {
		slots = map[string]string{}
		s.reads[key] = slots
		s.keys = append(s.keys, key)
	}
	slots[slot] = path
}

// Keys returns the sample keys in first-occurrence order.
func (s *Set) Keys() []string {
	return s.keys
}

// Reads returns the slot→path mapping for a sample key, or nil if the
// key is unknown.
func (s *Set) Reads(key string) map[string]string {
	return s.reads[key]
}

// Len returns the number of samples.
func (s *Set) Len() int {
	return len(s.keys)
}

// NumFiles returns the total number of read files across all samples.
func (s *Set) NumFiles() int {
	n := 0
	for _, slots := range s.reads {
		n += len(slots)
	}
	return n
}

// Paths returns every read path in the set, in key order then sorted
// slot order.
func (s *Set) Paths() []string {
	var paths []string
	for _, key := range s.keys {
		slots := s.reads[key]
		names := make([]string, 0, len(slots))
		for slot := range slots {
			names = append(names, slot)
		}
		sort.Strings(names)
		for _, slot := range names {
			paths = append(paths, slots[slot])
		}
	}
	return paths
}

// MarshalJSON renders the set as a JSON object whose keys appear in
// first-occurrence order rather than the alphabetical order encoding/json
// would impose on a plain map.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.reads[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Pair classifies input read paths into samples by filename convention,
// in one pass and in input order. Files without a recognizable read-slot
// marker are kept under SlotUnknown and a warning naming the file is
// logged, because downstream pairing cannot be done safely for them.
func Pair(paths []string, logger *slog.Logger) *Set {
	set := NewSet()
	for _, path := range paths {
		key, slot := splitName(filepath.Base(path))
		if slot == SlotUnknown {
			logger.Warn("no _R1/_R2 marker in filename, cannot pair", "file", path)
		}
		set.Add(key, slot, path)
	}
	return set
}

// splitName strips one compression/format suffix from a filename and
// splits it into sample key and read-slot.
func splitName(base string) (key, slot string) {
	name := suffixRe.ReplaceAllString(base, "")
	m := slotRe.FindStringSubmatchIndex(name)
	if m == nil {
		return name, SlotUnknown
	}
	return name[:m[0]], name[m[2]:m[3]]
}
