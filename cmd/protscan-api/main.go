package main

import (
	"context"

	"protscan/internal/platform/config"
	"protscan/internal/platform/logger"
	phttp "protscan/internal/platform/net/http"
	"protscan/internal/platform/store"

	"protscan/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	// history persistence is optional; the API is fully functional without it
	var st *store.Store
	if pgCfg.MayBool("ENABLED", false) {
		var err error
		st, err = store.Open(context.Background(), store.Config{
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
		})
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer st.Close()
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Store:  st,
		Logger: l,
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
