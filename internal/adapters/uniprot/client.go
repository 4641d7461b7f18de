// Package uniprot provides a minimal client for fetching FASTA records from
// the UniProtKB REST API by accession identifier
package uniprot

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"time"

	perr "protscan/internal/platform/errors"
	"protscan/internal/platform/logger"
)

const (
	baseURLDefault = "https://rest.uniprot.org"
	defaultTimeout = 10 * time.Second
	defaultUA      = "protscan"

	// maxRecordBytes caps the response body; FASTA records are small
	maxRecordBytes = 1 << 20
)

// accessions are alphanumeric UniProt identifiers like P04637
var accessionRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{3,11}$`)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Record is one fetched FASTA record, raw text with the header line intact.
// The sequence normalizer strips the header downstream
type Record struct {
	Accession string
	FASTA     string
}

// Client fetches FASTA records. One attempt per call, no retries; callers
// that want retry or backoff add it at this boundary
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("uniprot"),
	}
}

// Fetch retrieves the FASTA record for an accession.
// Outcomes are typed: a record, not-found for any non-200 status, or
// unavailable for transport failures. Detail is preserved in the wrapped cause
func (c *Client) Fetch(ctx context.Context, accession string) (Record, error) {
	if !accessionRe.MatchString(accession) {
		return Record{}, perr.InvalidArgf("malformed accession %q", accession)
	}

	url := c.opts.BaseURL + "/uniprotkb/" + accession + ".fasta"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Record{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "uniprot: new request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/plain")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("accession", accession).Msg("uniprot fetch failed")
		return Record{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "connection to UniProt failed")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error().Err(err).Msg("failed to close response body")
		}
	}()

	c.log.Debug().
		Str("accession", accession).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("uniprot fetch")

	if resp.StatusCode != http.StatusOK {
		return Record{}, perr.NotFoundf("UniProt ID %s not found", accession)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordBytes))
	if err != nil {
		return Record{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "connection to UniProt failed")
	}
	if len(body) == 0 {
		return Record{}, perr.NotFoundf("UniProt ID %s returned an empty record", accession)
	}

	return Record{Accession: accession, FASTA: string(body)}, nil
}

// FetchFASTA returns just the raw FASTA text; satisfies the annotate
// service's fetcher port
func (c *Client) FetchFASTA(ctx context.Context, accession string) (string, error) {
	rec, err := c.Fetch(ctx, accession)
	if err != nil {
		return "", err
	}
	return rec.FASTA, nil
}
