// Package api provides the HTTP API for the application
package api

import (
	"time"

	"protscan/internal/adapters/uniprot"
	"protscan/internal/core/annotate"
	"protscan/internal/core/motif"
	"protscan/internal/platform/config"
	"protscan/internal/platform/logger"
	phttp "protscan/internal/platform/net/http"
	"protscan/internal/platform/net/middleware"
	"protscan/internal/platform/store"

	"protscan/internal/services/annotate/domain"
	annotatehttp "protscan/internal/services/annotate/http"
	annotatesvc "protscan/internal/services/annotate/service"
	histdom "protscan/internal/services/history/domain"
	historyhttp "protscan/internal/services/history/http"
	historysvc "protscan/internal/services/history/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store // nil disables history
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	cat, err := motif.Load()
	if err != nil {
		opt.Logger.Panic().Err(err).Msg("motif catalog load failed")
	}

	eng := annotate.NewEngine(cat, annotatesvc.EngineOptionsFromConfig(opt.Config))

	var fetch domain.FetcherPort
	if opt.Config.MayBool("UNIPROT", true) {
		fetch = uniprot.NewClient(uniprot.Options{
			BaseURL: opt.Config.MayString("UNIPROT_URL", ""),
			Timeout: opt.Config.MayDuration("UNIPROT_TIMEOUT", 10*time.Second),
		})
	}

	var histWriter histdom.WriterPort
	var histSvc *historysvc.Service
	if opt.Store != nil {
		histSvc = historysvc.New(opt.Store, historysvc.Config{
			HardLimit: opt.Config.MayInt("HISTORY_LIMIT", 100),
		})
		histWriter = histSvc
	}

	svc := annotatesvc.New(eng, fetch, histWriter)

	r.Use(middleware.Defaults()...)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{
		Slow: opt.Config.MayDuration("SLOW_REQ", 2*time.Second),
	}))
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/v1", func(v1 phttp.Router) {
		annotatehttp.Register(v1, svc)
		if histSvc != nil {
			historyhttp.Register(v1, histSvc)
		}
	})
}
