package entity

// LatestPhotos holds at most one URL per slot. A nil field is an empty slot.
type LatestPhotos struct {
	Newspaper *string `json:"newspaper"`
	Geotag    *string `json:"geotag"`
	Traffic1  *string `json:"traffic1"`
	Traffic2  *string `json:"traffic2"`
}

func (p *LatestPhotos) Get(slot CanonicalSlot) *string {
	switch slot {
	case SlotNewspaper:
		return p.Newspaper
	case SlotGeotag:
		return p.Geotag
	case SlotTraffic1:
		return p.Traffic1
	case SlotTraffic2:
		return p.Traffic2
	}
	return nil
}

func (p *LatestPhotos) Set(slot CanonicalSlot, url string) {
	switch slot {
	case SlotNewspaper:
		p.Newspaper = &url
	case SlotGeotag:
		p.Geotag = &url
	case SlotTraffic1:
		p.Traffic1 = &url
	case SlotTraffic2:
		p.Traffic2 = &url
	}
}

func (p *LatestPhotos) Has(slot CanonicalSlot) bool {
	return p.Get(slot) != nil
}

// Filled counts occupied slots.
func (p *LatestPhotos) Filled() int {
	n := 0
	for _, s := range Slots {
		if p.Has(s) {
			n++
		}
	}
	return n
}
