package proof

import "github.com/andreyxaxa/ooh-proofs/internal/entity"

var slotLabels = map[entity.CanonicalSlot]string{
	entity.SlotNewspaper: "Newspaper Ad",
	entity.SlotGeotag:    "Geo-tagged Photo",
	entity.SlotTraffic1:  "Traffic View 1",
	entity.SlotTraffic2:  "Traffic View 2",
}

func Label(slot entity.CanonicalSlot) string {
	return slotLabels[slot]
}

// ToExportList lists filled slots in the fixed presentation order.
func ToExportList(photos entity.LatestPhotos) []entity.ExportItem {
	items := make([]entity.ExportItem, 0, len(entity.Slots))

	for _, slot := range entity.Slots {
		url := photos.Get(slot)
		if url == nil {
			continue
		}
		items = append(items, entity.ExportItem{URL: *url, Label: Label(slot)})
	}

	return items
}
