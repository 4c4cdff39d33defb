package pairing

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Sheet is an explicit sample declaration loaded from a YAML file:
//
//	sample1:
//	  R1: /runs/nov/sample1_R1.fastq.gz
//	  R2: /runs/nov/sample1_R2.fastq.gz
//
// Sheet entries take precedence over filename-inferred pairing.
type Sheet map[string]map[string]string

// LoadSheet reads and parses a YAML sample sheet.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample sheet: %w", err)
	}
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse sample sheet %q: %w", path, err)
	}
	return sheet, nil
}

// Merge applies sheet entries over the inferred pairing. Entries are
// applied in sorted order so the resulting key order is deterministic
// regardless of YAML map iteration.
func (s *Set) Merge(sheet Sheet) {
	keys := make([]string, 0, len(sheet))
	for key := range sheet {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		slots := make([]string, 0, len(sheet[key]))
		for slot := range sheet[key] {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			s.Add(key, slot, sheet[key][slot])
		}
	}
}
