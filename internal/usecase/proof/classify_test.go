package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

func photos(slots ...entity.CanonicalSlot) entity.LatestPhotos {
	var p entity.LatestPhotos
	for _, s := range slots {
		p.Set(s, string(s)+".jpg")
	}
	return p
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		photos   entity.LatestPhotos
		external string
		want     entity.ProofStatus
	}{
		{"empty", photos(), "", entity.ProofPending},
		{"traffic only", photos(entity.SlotTraffic1), "", entity.ProofPending},
		{"no traffic", photos(entity.SlotNewspaper, entity.SlotGeotag), "", entity.ProofPending},
		{"no geotag", photos(entity.SlotNewspaper, entity.SlotTraffic1, entity.SlotTraffic2), "", entity.ProofPending},
		{"minimum with traffic1", photos(entity.SlotNewspaper, entity.SlotGeotag, entity.SlotTraffic1), "", entity.ProofReadyForQA},
		{"minimum with traffic2", photos(entity.SlotNewspaper, entity.SlotGeotag, entity.SlotTraffic2), "", entity.ProofReadyForQA},
		{"all slots", photos(entity.Slots[:]...), "", entity.ProofReadyForQA},
		{"verified wins over empty", photos(), "Verified", entity.ProofVerified},
		{"failed wins over complete", photos(entity.Slots[:]...), "Failed", entity.ProofFailed},
		{"non-terminal external ignored", photos(), "Ready for QA", entity.ProofPending},
		{"unknown external ignored", photos(entity.Slots[:]...), "approved", entity.ProofReadyForQA},
		{"case sensitive", photos(), "verified", entity.ProofPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.photos, tt.external))
		})
	}
}

func TestClassify_ScenarioTrafficOnly(t *testing.T) {
	p := DeriveLatestPhotos([]entity.PhotoRecord{record("traffic_left", "x.jpg", "")})

	assert.Equal(t, entity.ProofPending, Classify(p, ""))
}
