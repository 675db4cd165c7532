package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/akshatcoder-hash/lifi-lens/internal/analysis"
	"github.com/akshatcoder-hash/lifi-lens/internal/common"
	"github.com/akshatcoder-hash/lifi-lens/internal/config"
	"github.com/akshatcoder-hash/lifi-lens/internal/http"
	"github.com/akshatcoder-hash/lifi-lens/internal/lifi"
)

// @title LiFi Lens API
// @version 1.0
// @description Route analysis API for cross-chain bridge transactions. Given a failed or
// @description suboptimal transfer, it reconstructs equivalent route requests, queries the
// @description aggregation API with several parameter variations, and returns deduplicated,
// @description ranked alternative routes with fee/time/reliability metrics, success
// @description probability estimates and recommendation labels.
// @description
// @description ## - Endpoints
// @description - **/api/v1/status**: cached transaction status lookup
// @description - **/api/v1/compare**: alternative-route comparison for a transaction
// @description
// @description ## - Rate Limit
// @description 10 requests/second (burst: 20)
// @BasePath /
// @schemes https http
// @tag.name status
// @tag.description Look up cross-chain transaction status
// @tag.name compare
// @tag.description Compare alternative routes for failed transactions

func main() {
	common.InitRuntime()

	// load env; absence is fine in containerized deployments
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}
	applyLogLevel()

	// di container config
	conf := container.NewConf(
		&config.GeneralConfig{},
		&config.LifiConfig{},
		&config.AnalysisConfig{},
	)

	// di container
	dic, err := container.New(
		conf,

		// services
		&lifi.Service{},
		&analysis.Service{},
		&http.HTTPService{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create di container")
		return
	}

	// Run() waits for SIGINT/SIGTERM
	if err := dic.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run di container")
		return
	}

	log.Info().Msg("Shutting down services...")
	if err := dic.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("Shutdown complete")
}

func applyLogLevel() {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
