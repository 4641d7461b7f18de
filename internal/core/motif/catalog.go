// Package motif loads and compiles the conserved-motif catalog from the
// embedded motifs.json. It prepares literal and regex patterns for the
// annotation scanner
package motif

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed motifs.json
var embedded []byte

// Kind discriminates how an entry's pattern is matched
type Kind string

const (
	// KindLiteral matches the pattern as a fixed substring, first occurrence only
	KindLiteral Kind = "literal"
	// KindRegex matches the pattern as a regular expression over the residue
	// alphabet, all non-overlapping occurrences
	KindRegex Kind = "regex"
)

// Categories is the closed set of functional categories entries may carry
var Categories = []string{
	"Signaling",
	"Enzymatic Activity",
	"Structural",
	"Metabolism",
	"Nucleotide Binding",
	"DNA Binding",
	"Dimerization",
	"Cell Adhesion",
	"Protein Modification",
}

type rawEntry struct {
	Key      string `json:"key"`
	Kind     string `json:"kind"`
	Pattern  string `json:"pattern"`
	Name     string `json:"name"`
	Function string `json:"function"`
	Desc     string `json:"desc,omitempty"`
	Color    string `json:"color,omitempty"`
}

type rawCatalog struct {
	Version int        `json:"version"`
	Motifs  []rawEntry `json:"motifs"`
}

// Entry is one compiled catalog row. Immutable after Parse
type Entry struct {
	Key      string
	Kind     Kind
	Pattern  string
	Name     string
	Function string
	Desc     string
	Color    string

	re *regexp.Regexp // nil for literal entries
}

// Regexp returns the compiled pattern for regex entries, nil otherwise
func (e Entry) Regexp() *regexp.Regexp { return e.re }

// Catalog is the compiled, read-only motif table shared across requests
type Catalog struct {
	Version int
	Entries []Entry
}

// Load returns the compiled catalog from the embedded motifs.json
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse builds a catalog from raw JSON. Entries are sorted by key so
// iteration order is deterministic across processes
func Parse(data []byte) (*Catalog, error) {
	var rc rawCatalog
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("motif: parse motifs.json: %w", err)
	}
	if rc.Version != 1 {
		return nil, fmt.Errorf("motif: unsupported motifs.json version %d (want 1)", rc.Version)
	}

	c := &Catalog{Version: rc.Version}
	seen := make(map[string]struct{}, len(rc.Motifs))
	for _, r := range rc.Motifs {
		key := strings.TrimSpace(r.Key)
		if key == "" {
			return nil, fmt.Errorf("motif: entry with empty key")
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("motif: duplicate key %q", key)
		}
		seen[key] = struct{}{}

		if r.Pattern == "" {
			return nil, fmt.Errorf("motif: %s: empty pattern", key)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("motif: %s: empty name", key)
		}
		if !validCategory(r.Function) {
			return nil, fmt.Errorf("motif: %s: unknown functional category %q", key, r.Function)
		}

		e := Entry{
			Key:      key,
			Pattern:  r.Pattern,
			Name:     r.Name,
			Function: r.Function,
			Desc:     r.Desc,
			Color:    r.Color,
		}
		switch Kind(r.Kind) {
		case KindLiteral:
			e.Kind = KindLiteral
		case KindRegex:
			e.Kind = KindRegex
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("motif: %s: compile %q: %w", key, r.Pattern, err)
			}
			// a zero-width match would yield a span with start > end
			if re.MatchString("") {
				return nil, fmt.Errorf("motif: %s: pattern %q can match an empty string", key, r.Pattern)
			}
			e.re = re
		default:
			return nil, fmt.Errorf("motif: %s: unknown kind %q", key, r.Kind)
		}
		c.Entries = append(c.Entries, e)
	}

	sort.Slice(c.Entries, func(i, j int) bool {
		return c.Entries[i].Key < c.Entries[j].Key
	})
	return c, nil
}

// Empty returns a catalog with no entries, useful as a scanner stub
func Empty() *Catalog { return &Catalog{Version: 1} }

func validCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
