// Package repo provides the Postgres repository for analysis history
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	perr "protscan/internal/platform/errors"
	"protscan/internal/platform/store"
	"protscan/internal/services/history/domain"
)

// Schema is the table history expects; applied out of band
const Schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id            uuid PRIMARY KEY,
	created_at    timestamptz NOT NULL DEFAULT now(),
	accession     text NOT NULL DEFAULT '',
	seq_length    integer NOT NULL,
	ptm_count     integer NOT NULL,
	domain_count  integer NOT NULL,
	mapping_count integer NOT NULL,
	summary       text NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

// PG is the Postgres-backed history storage
type PG struct {
	q store.Queryer
}

// NewPG constructs a history repo over a Queryer (pool or tx)
func NewPG(q store.Queryer) *PG { return &PG{q: q} }

// Insert writes one analysis row and returns its generated id
func (r *PG) Insert(ctx context.Context, in domain.WriteInput) (string, error) {
	id := uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO analyses
			(id, created_at, accession, seq_length, ptm_count, domain_count, mapping_count, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, time.Now().UTC(), in.Accession, in.SeqLength,
		in.PTMCount, in.DomainCount, in.MappingCount, in.Summary,
	)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeDB, "history: insert analysis")
	}
	return id.String(), nil
}

// Recent returns the newest analyses, newest first
func (r *PG) Recent(ctx context.Context, limit int) ([]domain.Analysis, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id::text, created_at, accession, seq_length,
			ptm_count, domain_count, mapping_count, summary
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "history: list recent")
	}
	defer rows.Close()

	var out []domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		if err := rows.Scan(
			&a.ID, &a.CreatedAt, &a.Accession, &a.SeqLength,
			&a.PTMCount, &a.DomainCount, &a.MappingCount, &a.Summary,
		); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "history: scan analysis")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "history: iterate analyses")
	}
	return out, nil
}
