package entity

import "github.com/google/uuid"

type ProofStatus string

const (
	ProofPending    ProofStatus = "Pending"
	ProofReadyForQA ProofStatus = "Ready for QA"
	ProofVerified   ProofStatus = "Verified"
	ProofFailed     ProofStatus = "Failed"
)

// Terminal statuses are set by the QA approval workflow.
func (s ProofStatus) Terminal() bool {
	return s == ProofVerified || s == ProofFailed
}

type ExportItem struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type ProofSummary struct {
	AssetID      uuid.UUID    `json:"asset_id"`
	Photos       LatestPhotos `json:"photos"`
	Status       ProofStatus  `json:"status"`
	FromFallback bool         `json:"from_fallback"`
}

// AssetProof is the campaign asset row the resolver reads: the QA status set
// elsewhere and the legacy aggregated photos column.
type AssetProof struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	AssetCode  string    `json:"asset_code"`
	QAStatus   *string   `json:"qa_status,omitempty"`
	PhotosJSON []byte    `json:"-"`
}

func (a *AssetProof) ExternalStatus() string {
	if a.QAStatus == nil {
		return ""
	}
	return *a.QAStatus
}
