package watermark

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure/mocks"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

func TestStampLines(t *testing.T) {
	uploaded := time.Date(2024, 3, 9, 18, 45, 0, 0, time.UTC)
	captured := time.Date(2024, 3, 9, 12, 0, 30, 0, time.FixedZone("IST", 5*3600+1800))
	lat, long := 17.385044, 78.486671

	tests := []struct {
		name string
		job  dto.WatermarkJob
		want []string
	}{
		{
			name: "full stamp",
			job: dto.WatermarkJob{
				AssetCode:  "HYD-BB-0042",
				Category:   "geotag",
				UploadedAt: uploaded,
				CapturedAt: &captured,
				Latitude:   &lat,
				Longitude:  &long,
			},
			want: []string{"HYD-BB-0042 | Geo-tagged Photo", "2024-03-09 06:30 UTC", "17.385044, 78.486671"},
		},
		{
			name: "upload time when not captured",
			job:  dto.WatermarkJob{Category: "traffic_right", UploadedAt: uploaded},
			want: []string{"Traffic View 2", "2024-03-09 18:45 UTC"},
		},
		{
			name: "unmapped category kept verbatim",
			job:  dto.WatermarkJob{AssetCode: "BLR-07", Category: "night view"},
			want: []string{"BLR-07 | night view"},
		},
		{
			name: "nothing known",
			job:  dto.WatermarkJob{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StampLines(tt.job))
		})
	}
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	job := dto.WatermarkJob{AssetCode: "A1", Category: "newspaper", ContentType: "image/jpeg"}

	t.Run("pipes resize, stamp and thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockImageProcessor(ctrl)
		uc := New(p, 1024)

		gomock.InOrder(
			p.EXPECT().Resize(ctx, "image/jpeg", []byte("orig"), 1024).Return([]byte("resized"), nil),
			p.EXPECT().Watermark(ctx, "image/jpeg", []byte("resized"), []string{"A1 | Newspaper Ad"}).Return([]byte("stamped"), nil),
			p.EXPECT().Thumbnail(ctx, "image/jpeg", []byte("stamped")).Return([]byte("thumb"), nil),
		)

		r, err := uc.Render(ctx, dto.WatermarkTask{Data: []byte("orig"), WatermarkJob: job})
		require.NoError(t, err)
		assert.Equal(t, []byte("stamped"), r.Watermarked)
		assert.Equal(t, []byte("thumb"), r.Thumbnail)
		assert.Equal(t, "image/jpeg", r.ContentType)
	})

	t.Run("stops on processor error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockImageProcessor(ctrl)
		uc := New(p, 1024)

		p.EXPECT().Resize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("decode"))

		_, err := uc.Render(ctx, dto.WatermarkTask{Data: []byte("orig"), WatermarkJob: job})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "uc.p.Resize")
	})

	t.Run("empty data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := New(mocks.NewMockImageProcessor(ctrl), 1024)

		_, err := uc.Render(ctx, dto.WatermarkTask{WatermarkJob: job})
		assert.ErrorIs(t, err, errs.ErrUnsupportedImage)
	})
}
