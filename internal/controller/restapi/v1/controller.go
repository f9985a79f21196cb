package v1

import (
	"github.com/andreyxaxa/ooh-proofs/internal/usecase"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
)

type V1 struct {
	proofs  usecase.ProofUseCase
	photos  usecase.PhotoUseCase
	pricing usecase.PricingUseCase
	logger  logger.Interface
}
