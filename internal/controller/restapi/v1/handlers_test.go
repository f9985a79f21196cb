package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/mocks"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/pricing"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

type HandlersSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	proofs *mocks.MockProofUseCase
	photos *mocks.MockPhotoUseCase
	app    *fiber.App
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.proofs = mocks.NewMockProofUseCase(s.ctrl)
	s.photos = mocks.NewMockPhotoUseCase(s.ctrl)

	s.app = fiber.New()
	NewRoutes(s.app.Group("/v1"), s.proofs, s.photos, pricing.New(), logger.Nop())
}

func (s *HandlersSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlersSuite) do(req *http.Request) (*http.Response, []byte) {
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	_ = resp.Body.Close()

	return resp, body
}

func (s *HandlersSuite) errorOf(body []byte) string {
	var e response.Error
	s.Require().NoError(json.Unmarshal(body, &e))
	return e.Error
}

func (s *HandlersSuite) TestGetProof() {
	s.Run("ok", func() {
		id := uuid.New()
		url := "https://cdn.example.com/g.jpg"
		s.proofs.EXPECT().Resolve(gomock.Any(), id).Return(&entity.ProofSummary{
			AssetID: id,
			Photos:  entity.LatestPhotos{Geotag: &url},
			Status:  entity.ProofPending,
		}, nil)

		resp, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/assets/"+id.String()+"/proof", nil))
		s.Equal(http.StatusOK, resp.StatusCode)

		var got response.Proof
		s.Require().NoError(json.Unmarshal(body, &got))
		s.Equal("Pending", got.Status)
		s.Equal(1, got.Filled)
		s.Require().NotNil(got.Photos.Geotag)
		s.Equal(url, *got.Photos.Geotag)
		s.Nil(got.Photos.Newspaper)
	})

	s.Run("invalid id", func() {
		resp, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/assets/nope/proof", nil))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal("invalid id", s.errorOf(body))
	})

	s.Run("unknown asset", func() {
		id := uuid.New()
		s.proofs.EXPECT().Resolve(gomock.Any(), id).Return(nil, fmt.Errorf("wrap: %w", errs.ErrRecordNotFound))

		resp, _ := s.do(httptest.NewRequest(http.MethodGet, "/v1/assets/"+id.String()+"/proof", nil))
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("database failure", func() {
		id := uuid.New()
		s.proofs.EXPECT().Resolve(gomock.Any(), id).Return(nil, errors.New("conn refused"))

		resp, _ := s.do(httptest.NewRequest(http.MethodGet, "/v1/assets/"+id.String()+"/proof", nil))
		s.Equal(http.StatusInternalServerError, resp.StatusCode)
	})
}

func (s *HandlersSuite) TestExportProof() {
	id := uuid.New()
	s.proofs.EXPECT().Export(gomock.Any(), id).Return([]entity.ExportItem{
		{URL: "n.jpg", Label: "Newspaper Ad"},
		{URL: "t.jpg", Label: "Traffic View 1"},
	}, nil)

	resp, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/assets/"+id.String()+"/proof/export", nil))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`[{"url":"n.jpg","label":"Newspaper Ad"},{"url":"t.jpg","label":"Traffic View 1"}]`, string(body))
}

func multipartUpload(s *HandlersSuite, fields map[string]string, filename, contentType string, data []byte) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}

	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		s.Require().NoError(err)
		_, err = part.Write(data)
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	return multipartRequest(&buf, w.FormDataContentType())
}

func multipartRequest(body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/assets/"+uuid.NewString()+"/photos", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func (s *HandlersSuite) TestUploadPhoto() {
	s.Run("created", func() {
		uploaded := time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC)
		s.photos.EXPECT().UploadProofPhoto(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, up dto.PhotoUpload) (*entity.ProofPhoto, error) {
				s.Equal("Traffic Left", up.Category)
				s.Equal("HYD-BB-0042", up.AssetCode)
				s.Equal("image/jpeg", up.ContentType)
				data, err := io.ReadAll(up.Data)
				s.Require().NoError(err)
				s.Equal([]byte("jpeg"), data)

				return &entity.ProofPhoto{
					ID:          uuid.New(),
					AssetID:     up.AssetID,
					PhotoURL:    "https://cdn.example.com/originals/x",
					Category:    &up.Category,
					UploadedAt:  &uploaded,
					ContentType: up.ContentType,
					Size:        4,
					Status:      entity.Pending,
				}, nil
			})

		req := multipartUpload(s, map[string]string{"category": "Traffic Left", "asset_code": " HYD-BB-0042 "}, "site.JPG", "image/jpeg", []byte("jpeg"))
		resp, body := s.do(req)
		s.Equal(http.StatusCreated, resp.StatusCode)

		var got response.UploadPhoto
		s.Require().NoError(json.Unmarshal(body, &got))
		s.Equal("traffic1", got.Slot)
		s.Equal("pending", got.Status)
		s.Equal("2024-03-09T06:30:00Z", got.UploadedAt)
	})

	cases := []struct {
		name     string
		fields   map[string]string
		filename string
		ctype    string
		data     []byte
		code     int
		msg      string
	}{
		{"no file", map[string]string{"category": "geo"}, "", "", nil, http.StatusBadRequest, "file is required"},
		{"empty file", map[string]string{"category": "geo"}, "a.jpg", "image/jpeg", nil, http.StatusBadRequest, "file is empty"},
		{"gif", map[string]string{"category": "geo"}, "a.gif", "image/gif", []byte("gif"), http.StatusUnsupportedMediaType, "unsupported file type. Allowed: jpeg, png"},
		{"bad extension", map[string]string{"category": "geo"}, "a.webp", "image/png", []byte("png"), http.StatusUnsupportedMediaType, "unsupported file extension. Allowed: .jpg, .jpeg, .png"},
		{"missing category", nil, "a.png", "image/png", []byte("png"), http.StatusBadRequest, "category is required"},
		{"unknown category", map[string]string{"category": "selfie"}, "a.png", "image/png", []byte("png"), http.StatusBadRequest, "unknown category. Allowed: newspaper, geotag, traffic1, traffic2"},
		{"long asset code", map[string]string{"category": "geo", "asset_code": strings.Repeat("X", MaxAssetCodeLen+1)}, "a.png", "image/png", []byte("png"), http.StatusBadRequest, "asset_code cant be longer than 32 characters"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, body := s.do(multipartUpload(s, tc.fields, tc.filename, tc.ctype, tc.data))
			s.Equal(tc.code, resp.StatusCode)
			s.Equal(tc.msg, s.errorOf(body))
		})
	}

	s.Run("unknown asset", func() {
		s.photos.EXPECT().UploadProofPhoto(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("tx: %w", errs.ErrRecordNotFound))

		resp, _ := s.do(multipartUpload(s, map[string]string{"category": "newspaper"}, "a.png", "image/png", []byte("png")))
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})
}

func (s *HandlersSuite) TestGetWatermarkedPhoto() {
	s.Run("streams stamped image", func() {
		id := uuid.New()
		s.photos.EXPECT().GetWatermarkedKeyByID(gomock.Any(), id).Return("watermarked/a/b", "image/png", nil)
		s.photos.EXPECT().DownloadPhoto(gomock.Any(), "watermarked/a/b").Return(io.NopCloser(bytes.NewReader([]byte("png-bytes"))), nil)

		resp, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/photos/"+id.String(), nil))
		s.Equal(http.StatusOK, resp.StatusCode)
		s.Equal("image/png", resp.Header.Get("Content-Type"))
		s.Equal("png-bytes", string(body))
	})

	s.Run("not processed yet", func() {
		id := uuid.New()
		s.photos.EXPECT().GetWatermarkedKeyByID(gomock.Any(), id).Return("", "", errs.ErrRecordNotFound)

		resp, body := s.do(httptest.NewRequest(http.MethodGet, "/v1/photos/"+id.String(), nil))
		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.Equal("photo not found", s.errorOf(body))
	})
}

func (s *HandlersSuite) TestDeletePhoto() {
	id := uuid.New()
	s.photos.EXPECT().DeletePhoto(gomock.Any(), id).Return(nil)

	resp, _ := s.do(httptest.NewRequest(http.MethodDelete, "/v1/photos/"+id.String(), nil))
	s.Equal(http.StatusNoContent, resp.StatusCode)

	missing := uuid.New()
	s.photos.EXPECT().DeletePhoto(gomock.Any(), missing).Return(errs.ErrRecordNotFound)

	resp, _ = s.do(httptest.NewRequest(http.MethodDelete, "/v1/photos/"+missing.String(), nil))
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersSuite) TestQuote() {
	post := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	s.Run("ok", func() {
		resp, body := s.do(post(`{"card_rate":90000,"negotiated_rate":75000,"start_date":"2024-03-01","end_date":"2024-03-15","printing_cost":4500,"mounting_cost":1500}`))
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var got entity.Pricing
		s.Require().NoError(json.Unmarshal(body, &got))
		s.Equal(15, got.Days)
		s.InDelta(37500, got.DisplayCost, 1e-9)
		s.InDelta(43500, got.Subtotal, 1e-9)
		s.InDelta(7830, got.GST, 1e-9)
		s.InDelta(51330, got.Total, 1e-9)
	})

	s.Run("bad date", func() {
		resp, body := s.do(post(`{"card_rate":1000,"start_date":"01/03/2024","end_date":"2024-03-15"}`))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal("start_date must be YYYY-MM-DD", s.errorOf(body))
	})

	s.Run("end before start", func() {
		resp, _ := s.do(post(`{"card_rate":1000,"start_date":"2024-03-15","end_date":"2024-03-01"}`))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("zero card rate", func() {
		resp, _ := s.do(post(`{"card_rate":0,"start_date":"2024-03-01","end_date":"2024-03-01"}`))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("malformed json", func() {
		resp, body := s.do(post(`{`))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal("invalid request body", s.errorOf(body))
	})
}
