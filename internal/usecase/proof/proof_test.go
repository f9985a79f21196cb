package proof

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/metrics"
	"github.com/andreyxaxa/ooh-proofs/internal/repo/mocks"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

type ProofUseCaseSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	photos  *mocks.MockProofPhotoRepo
	assets  *mocks.MockAssetProofRepo
	metrics *metrics.Metrics
	uc      *UseCase
}

func TestProofUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ProofUseCaseSuite))
}

func (s *ProofUseCaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.photos = mocks.NewMockProofPhotoRepo(s.ctrl)
	s.assets = mocks.NewMockAssetProofRepo(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.uc = New(s.photos, s.assets, s.metrics)
}

func (s *ProofUseCaseSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProofUseCaseSuite) TestResolve() {
	ctx := context.Background()

	s.Run("derives slots from records and classifies", func() {
		assetID := uuid.New()
		s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{ID: assetID}, nil)
		s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return([]entity.PhotoRecord{
			record("newspaper", "np.jpg", "2024-01-01"),
			record("geo", "g1.jpg", "2024-01-01"),
			record("geotag", "g2.jpg", "2024-01-02"),
			record("traffic_left", "t1.jpg", "2024-01-03"),
		}, nil)

		summary, err := s.uc.Resolve(ctx, assetID)
		s.Require().NoError(err)
		s.Equal(assetID, summary.AssetID)
		s.False(summary.FromFallback)
		s.Equal(entity.ProofReadyForQA, summary.Status)
		s.Require().NotNil(summary.Photos.Geotag)
		s.Equal("g2.jpg", *summary.Photos.Geotag)
	})

	s.Run("falls back to aggregated column when there are no records", func() {
		assetID := uuid.New()
		s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{
			ID:         assetID,
			PhotosJSON: []byte(`{"geo":"g.jpg","traffic_right":"t2.jpg"}`),
		}, nil)
		s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return(nil, nil)

		before := testutil.ToFloat64(s.metrics.FallbackResolutions)

		summary, err := s.uc.Resolve(ctx, assetID)
		s.Require().NoError(err)
		s.True(summary.FromFallback)
		s.Equal(entity.ProofPending, summary.Status)
		s.Require().NotNil(summary.Photos.Traffic2)
		s.Equal("t2.jpg", *summary.Photos.Traffic2)
		s.Equal(before+1, testutil.ToFloat64(s.metrics.FallbackResolutions))
	})

	s.Run("does not fall back when records exist but none map to a slot", func() {
		assetID := uuid.New()
		s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{
			ID:         assetID,
			PhotosJSON: []byte(`{"newspaper":"np.jpg"}`),
		}, nil)
		s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return([]entity.PhotoRecord{
			record("closeup", "c.jpg", "2024-01-01"),
		}, nil)

		summary, err := s.uc.Resolve(ctx, assetID)
		s.Require().NoError(err)
		s.False(summary.FromFallback)
		s.Equal(entity.LatestPhotos{}, summary.Photos)
	})

	s.Run("external terminal status wins", func() {
		assetID := uuid.New()
		verified := string(entity.ProofVerified)
		s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{ID: assetID, QAStatus: &verified}, nil)
		s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return(nil, nil)

		summary, err := s.uc.Resolve(ctx, assetID)
		s.Require().NoError(err)
		s.Equal(entity.ProofVerified, summary.Status)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.ProofsResolved.WithLabelValues("Verified")))
	})

	s.Run("unknown asset", func() {
		assetID := uuid.New()
		s.assets.EXPECT().GetByID(ctx, assetID).Return(nil, errs.ErrRecordNotFound)

		_, err := s.uc.Resolve(ctx, assetID)
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrRecordNotFound)
	})

	s.Run("records query fails", func() {
		assetID := uuid.New()
		s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{ID: assetID}, nil)
		s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return(nil, errors.New("connection reset"))

		_, err := s.uc.Resolve(ctx, assetID)
		s.Require().Error(err)
		s.Contains(err.Error(), "ListRecordsByAsset")
	})
}

func (s *ProofUseCaseSuite) TestExport() {
	ctx := context.Background()
	assetID := uuid.New()

	s.assets.EXPECT().GetByID(ctx, assetID).Return(&entity.AssetProof{ID: assetID}, nil)
	s.photos.EXPECT().ListRecordsByAsset(ctx, assetID).Return([]entity.PhotoRecord{
		record("traffic2", "t2.jpg", "2024-01-01"),
		record("newspaper", "np.jpg", "2024-01-01"),
	}, nil)

	items, err := s.uc.Export(ctx, assetID)
	s.Require().NoError(err)
	s.Equal([]entity.ExportItem{
		{URL: "np.jpg", Label: "Newspaper Ad"},
		{URL: "t2.jpg", Label: "Traffic View 2"},
	}, items)
}
