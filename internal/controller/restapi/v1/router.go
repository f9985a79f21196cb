package v1

import (
	"github.com/andreyxaxa/ooh-proofs/internal/usecase"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewRoutes(
	apiV1Group fiber.Router,
	proofs usecase.ProofUseCase,
	photos usecase.PhotoUseCase,
	pricing usecase.PricingUseCase,
	l logger.Interface,
) {
	r := &V1{proofs: proofs, photos: photos, pricing: pricing, logger: l}

	assets := apiV1Group.Group("/assets")
	{
		assets.Get("/:id/proof", r.getProof)
		assets.Get("/:id/proof/export", r.exportProof)
		assets.Post("/:id/photos", r.uploadPhoto)
	}

	photosGroup := apiV1Group.Group("/photos")
	{
		photosGroup.Get("/:id", r.getWatermarkedPhoto)
		photosGroup.Delete("/:id", r.deletePhoto)
	}

	apiV1Group.Post("/pricing/quote", r.quote)
}
