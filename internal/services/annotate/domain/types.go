// Package domain defines the DTOs and ports for the annotate service
package domain

// AnalyzeInput is the request payload for an annotation run.
// Raw sequence text wins over the accession when both are supplied
type AnalyzeInput struct {
	// Sequence is free-form text: bare residues, a FASTA record, or a
	// numbered listing pasted from a database page
	Sequence string `json:"sequence" validate:"omitempty,max=200000"`
	// Accession is a UniProtKB identifier, e.g. P04637
	Accession string `json:"accession" validate:"omitempty,max=16"`
}

// MotifInfo describes one catalog entry for listing endpoints
type MotifInfo struct {
	Key      string `json:"key"`
	Kind     string `json:"kind"`
	Pattern  string `json:"pattern"`
	Name     string `json:"name"`
	Function string `json:"function"`
	Desc     string `json:"desc,omitempty"`
	Color    string `json:"color,omitempty"`
}
