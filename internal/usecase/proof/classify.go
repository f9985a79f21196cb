package proof

import "github.com/andreyxaxa/ooh-proofs/internal/entity"

// Classify derives the proof status. A terminal status from QA is returned as is.
func Classify(photos entity.LatestPhotos, externalStatus string) entity.ProofStatus {
	if s := entity.ProofStatus(externalStatus); s.Terminal() {
		return s
	}

	if photos.Has(entity.SlotNewspaper) &&
		photos.Has(entity.SlotGeotag) &&
		(photos.Has(entity.SlotTraffic1) || photos.Has(entity.SlotTraffic2)) {
		return entity.ProofReadyForQA
	}

	return entity.ProofPending
}
