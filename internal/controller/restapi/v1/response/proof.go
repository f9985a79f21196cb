package response

import "github.com/andreyxaxa/ooh-proofs/internal/entity"

type Proof struct {
	AssetID      string              `json:"asset_id"`
	Photos       entity.LatestPhotos `json:"photos"`
	Status       string              `json:"status"`
	FromFallback bool                `json:"from_fallback"`
	Filled       int                 `json:"filled"`
}
