package uniprot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "protscan/internal/platform/errors"
)

const fastaP04637 = ">sp|P04637|P53_HUMAN Cellular tumor antigen p53\nMEEPQSDPSV\n"

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uniprotkb/P04637.fasta" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "text/plain" {
			t.Errorf("unexpected accept header %q", r.Header.Get("Accept"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(fastaP04637))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	rec, err := c.Fetch(context.Background(), "P04637")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.Accession != "P04637" {
		t.Fatalf("accession = %q", rec.Accession)
	}
	if rec.FASTA != fastaP04637 {
		t.Fatalf("fasta = %q", rec.FASTA)
	}
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), "Q99999")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse the connection

	c := NewClient(Options{BaseURL: srv.URL, Timeout: time.Second})
	_, err := c.Fetch(context.Background(), "P04637")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("code = %v, want unavailable", perr.CodeOf(err))
	}
}

func TestFetch_MalformedAccession(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	for _, acc := range []string{"", "ab", "has space", "semi;colon", "../../etc"} {
		_, err := c.Fetch(context.Background(), acc)
		if err == nil {
			t.Fatalf("%q: expected error", acc)
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("%q: code = %v, want invalid argument", acc, perr.CodeOf(err))
		}
	}
}

func TestFetch_SingleAttempt(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	if _, err := c.Fetch(context.Background(), "P04637"); err == nil {
		t.Fatalf("expected error")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("server hit %d times, want 1", n)
	}
}

func TestFetch_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), "P04637")
	if err == nil {
		t.Fatalf("expected error for empty record")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}
