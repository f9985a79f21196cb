package proof

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

func TestToExportList(t *testing.T) {
	tests := []struct {
		name   string
		photos entity.LatestPhotos
		want   []entity.ExportItem
	}{
		{
			name:   "omits empty slots and keeps order",
			photos: entity.LatestPhotos{Geotag: strPtr("g.jpg"), Traffic1: strPtr("t1.jpg")},
			want: []entity.ExportItem{
				{URL: "g.jpg", Label: "Geo-tagged Photo"},
				{URL: "t1.jpg", Label: "Traffic View 1"},
			},
		},
		{
			name: "all slots",
			photos: entity.LatestPhotos{
				Traffic2:  strPtr("t2.jpg"),
				Traffic1:  strPtr("t1.jpg"),
				Geotag:    strPtr("g.jpg"),
				Newspaper: strPtr("n.jpg"),
			},
			want: []entity.ExportItem{
				{URL: "n.jpg", Label: "Newspaper Ad"},
				{URL: "g.jpg", Label: "Geo-tagged Photo"},
				{URL: "t1.jpg", Label: "Traffic View 1"},
				{URL: "t2.jpg", Label: "Traffic View 2"},
			},
		},
		{
			name:   "nothing",
			photos: entity.LatestPhotos{},
			want:   []entity.ExportItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ToExportList(tt.photos)); diff != "" {
				t.Errorf("ToExportList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabel_Unknown(t *testing.T) {
	if got := Label(entity.CanonicalSlot("roof")); got != "" {
		t.Errorf("Label(roof) = %q, want empty", got)
	}
}
