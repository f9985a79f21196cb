package entity

type CanonicalSlot string

const (
	SlotNewspaper CanonicalSlot = "newspaper"
	SlotGeotag    CanonicalSlot = "geotag"
	SlotTraffic1  CanonicalSlot = "traffic1"
	SlotTraffic2  CanonicalSlot = "traffic2"
)

// Slots in export order.
var Slots = [...]CanonicalSlot{SlotNewspaper, SlotGeotag, SlotTraffic1, SlotTraffic2}

func (s CanonicalSlot) Valid() bool {
	switch s {
	case SlotNewspaper, SlotGeotag, SlotTraffic1, SlotTraffic2:
		return true
	}
	return false
}
