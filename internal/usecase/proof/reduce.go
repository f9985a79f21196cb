package proof

import (
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

var epoch = time.Unix(0, 0).UTC()

// DeriveLatestPhotos keeps the most recent photo per slot.
// Records without a URL or with an unmapped category are skipped; a missing
// upload time ranks as the epoch. On equal timestamps the record seen first stays.
func DeriveLatestPhotos(records []entity.PhotoRecord) entity.LatestPhotos {
	var latest entity.LatestPhotos

	best := make(map[entity.CanonicalSlot]time.Time, len(entity.Slots))

	for _, rec := range records {
		if rec.PhotoURL == "" {
			continue
		}

		slot, ok := Normalize(rec.Category)
		if !ok {
			continue
		}

		ts := epoch
		if rec.UploadedAt != nil {
			ts = *rec.UploadedAt
		}

		seen, ok := best[slot]
		if !ok || ts.After(seen) {
			latest.Set(slot, rec.PhotoURL)
			best[slot] = ts
		}
	}

	return latest
}
