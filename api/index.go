package handler

import (
	"kidstrainer/config"
	"kidstrainer/di"
	"kidstrainer/helper"
	"kidstrainer/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The router is built on the first
// call and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		if cfg.DB.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize schema")
			}
		}

		server, err := di.InitializeService()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize service")
		}

		handler = server.Handler()
	})

	handler.ServeHTTP(w, r)
}
