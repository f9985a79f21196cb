package proof

import (
	"strings"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

type categoryRule struct {
	match func(c string) bool
	slot  entity.CanonicalSlot
}

// categoryRules are evaluated top to bottom, first match wins.
var categoryRules = []categoryRule{
	{
		match: func(c string) bool { return strings.Contains(c, "newspaper") || c == "news" },
		slot:  entity.SlotNewspaper,
	},
	{
		match: func(c string) bool { return strings.Contains(c, "geo") || c == "gps" || c == "location" },
		slot:  entity.SlotGeotag,
	},
	{
		match: func(c string) bool {
			return containsAny(c, "traffic1", "traffic-1", "traffic_left") || c == "traffic left"
		},
		slot: entity.SlotTraffic1,
	},
	{
		match: func(c string) bool {
			return containsAny(c, "traffic2", "traffic-2", "traffic_right") || c == "traffic right"
		},
		slot: entity.SlotTraffic2,
	},
	{
		// bare "traffic" defaults to the left view
		match: func(c string) bool { return strings.Contains(c, "traffic") && !strings.ContainsAny(c, "12") },
		slot:  entity.SlotTraffic1,
	},
}

// Normalize maps a free-form category label onto a canonical slot.
// Unknown and nil categories report false.
func Normalize(category *string) (entity.CanonicalSlot, bool) {
	if category == nil {
		return "", false
	}

	c := strings.ToLower(*category)
	for _, r := range categoryRules {
		if r.match(c) {
			return r.slot, true
		}
	}

	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
