package restapi

import (
	"github.com/andreyxaxa/ooh-proofs/config"
	v1 "github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title OOH proofs
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	gatherer prometheus.Gatherer,
	proofs usecase.ProofUseCase,
	photos usecase.PhotoUseCase,
	pricing usecase.PricingUseCase,
	l logger.Interface,
) {
	app.Use(recover.New())

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Prometheus
	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRoutes(apiV1Group, proofs, photos, pricing, l)
	}
}
