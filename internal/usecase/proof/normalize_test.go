package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		category string
		want     entity.CanonicalSlot
		ok       bool
	}{
		{"newspaper", entity.SlotNewspaper, true},
		{"Newspaper Ad", entity.SlotNewspaper, true},
		{"news", entity.SlotNewspaper, true},
		{"NEWS", entity.SlotNewspaper, true},
		{"geo", entity.SlotGeotag, true},
		{"Geotag", entity.SlotGeotag, true},
		{"geo-tagged photo", entity.SlotGeotag, true},
		{"gps", entity.SlotGeotag, true},
		{"Location", entity.SlotGeotag, true},
		{"traffic1", entity.SlotTraffic1, true},
		{"Traffic-1", entity.SlotTraffic1, true},
		{"traffic_left", entity.SlotTraffic1, true},
		{"Traffic Left", entity.SlotTraffic1, true},
		{"traffic2", entity.SlotTraffic2, true},
		{"traffic-2", entity.SlotTraffic2, true},
		{"TRAFFIC_RIGHT", entity.SlotTraffic2, true},
		{"traffic right", entity.SlotTraffic2, true},
		{"traffic", entity.SlotTraffic1, true},
		{"Traffic View", entity.SlotTraffic1, true},
		// a digit without a recognised separator does not default to the left view
		{"traffic 2", "", false},
		{"traffic 1", "", false},
		{"news clipping", "", false},
		{"gps photo", "", false},
		{"closeup", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got, ok := Normalize(strPtr(tt.category))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	slot, ok := Normalize(nil)
	assert.False(t, ok)
	assert.Empty(t, slot)
}

func TestNormalize_PriorityOrder(t *testing.T) {
	// newspaper rule is checked before geo
	slot, ok := Normalize(strPtr("geo newspaper"))
	assert.True(t, ok)
	assert.Equal(t, entity.SlotNewspaper, slot)

	// geo is checked before traffic
	slot, ok = Normalize(strPtr("traffic2 geo"))
	assert.True(t, ok)
	assert.Equal(t, entity.SlotGeotag, slot)

	// traffic1 is checked before traffic2
	slot, ok = Normalize(strPtr("traffic1 traffic2"))
	assert.True(t, ok)
	assert.Equal(t, entity.SlotTraffic1, slot)
}
