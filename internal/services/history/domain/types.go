// Package domain defines the core types and interfaces for the history service
package domain

import "time"

// WriteInput is the per-analysis payload history persists
type WriteInput struct {
	Accession    string // empty for pasted sequences
	SeqLength    int
	PTMCount     int
	DomainCount  int
	MappingCount int
	Summary      string
}

// Analysis is one recorded annotation run
type Analysis struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Accession    string    `json:"accession,omitempty"`
	SeqLength    int       `json:"seq_length"`
	PTMCount     int       `json:"ptm_count"`
	DomainCount  int       `json:"domain_count"`
	MappingCount int       `json:"mapping_count"`
	Summary      string    `json:"summary"`
}
