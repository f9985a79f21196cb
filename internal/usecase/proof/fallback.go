package proof

import (
	"encoding/json"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

// fallbackAliases lists, per slot, the keys accepted in the aggregated photos
// column, highest priority first.
var fallbackAliases = map[entity.CanonicalSlot][]string{
	entity.SlotNewspaper: {"newspaper", "news", "newspaper_photo"},
	entity.SlotGeotag:    {"geo", "geotag", "gps", "geotag_photo"},
	entity.SlotTraffic1:  {"traffic1", "traffic_1", "traffic_left", "traffic"},
	entity.SlotTraffic2:  {"traffic2", "traffic_2", "traffic_right"},
}

// ParseFallback reads slots out of a pre-aggregated photos object. Anything
// that is not a JSON object yields empty slots. Only non-empty string values count.
func ParseFallback(blob any) entity.LatestPhotos {
	var latest entity.LatestPhotos

	obj, ok := blob.(map[string]any)
	if !ok {
		return latest
	}

	for _, slot := range entity.Slots {
		for _, key := range fallbackAliases[slot] {
			if url, ok := obj[key].(string); ok && url != "" {
				latest.Set(slot, url)
				break
			}
		}
	}

	return latest
}

// DecodeFallback turns a raw JSONB column into a blob for ParseFallback.
// Empty or invalid JSON decodes to nil.
func DecodeFallback(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var blob any
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil
	}

	return blob
}
