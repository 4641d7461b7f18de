// Package service provides the history service implementation
package service

import (
	"context"

	"protscan/internal/platform/logger"
	"protscan/internal/platform/store"
	"protscan/internal/services/history/domain"
	"protscan/internal/services/history/repo"
)

// Config for the history service
type Config struct {
	// HardLimit caps the limit per Recent call; defaults to 100 if <= 0
	HardLimit int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	db  *store.Store
	rp  *repo.PG
	cfg Config
	log logger.Logger
}

// New constructs a history service over an open store
func New(db *store.Store, cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{
		db:  db,
		rp:  repo.NewPG(db.Pool),
		cfg: cfg,
		log: *logger.Named("history"),
	}
}

// Record implements domain.WriterPort
func (s *Service) Record(ctx context.Context, in domain.WriteInput) error {
	id, err := s.rp.Insert(ctx, in)
	if err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Int("seq_length", in.SeqLength).Msg("analysis recorded")
	return nil
}

// Recent implements domain.ReaderPort
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Analysis, error) {
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}
	return s.rp.Recent(ctx, limit)
}
