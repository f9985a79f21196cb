package v1

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/proof"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

const (
	MaxFileSize     int64 = 10 * 1024 * 1024
	MaxAssetCodeLen       = 32
)

var (
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}

	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)

// @Summary  	Upload proof photo
// @Description Stores the original in S3, saves the photo row and queues the watermark job
// @Tags 		photos
// @Accept 		mpfd
// @Produce 	json
// @Param 		id 		   path 	string true  "Asset ID(uuid)"
// @Param 		file 	   formData file   true  "Photo (jpg, png)"
// @Param 		category   formData string true  "Category label, e.g. newspaper, geo, traffic_left"
// @Param 		asset_code formData string false "Asset code printed on the stamp"
// @Success 	201 {object} response.UploadPhoto
// @Failure 	400 {object} response.Error "Empty file or wrong parameters"
// @Failure 	404 {object} response.Error "Asset not found"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/assets/{id}/photos [post]
func (r *V1) uploadPhoto(ctx *fiber.Ctx) error {
	assetID, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "file is required")
	}

	// 1. size
	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "file is empty")
	}

	if file.Size > MaxFileSize {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file size cant be more than %d bytes", MaxFileSize))
	}

	// 2. content type and extension
	contentType := file.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported file type. Allowed: jpeg, png")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported file extension. Allowed: .jpg, .jpeg, .png")
	}

	// 3. category must land in a slot
	category := ctx.FormValue("category")
	if category == "" {
		return errorResponse(ctx, http.StatusBadRequest, "category is required")
	}

	slot, ok := proof.Normalize(&category)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "unknown category. Allowed: newspaper, geotag, traffic1, traffic2")
	}

	assetCode := strings.TrimSpace(ctx.FormValue("asset_code"))
	if len(assetCode) > MaxAssetCodeLen {
		return errorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("asset_code cant be longer than %d characters", MaxAssetCodeLen))
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadPhoto")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	photo, err := r.photos.UploadProofPhoto(ctx.UserContext(), dto.PhotoUpload{
		AssetID:      assetID,
		AssetCode:    assetCode,
		Category:     category,
		OriginalName: file.Filename,
		ContentType:  contentType,
		Size:         file.Size,
		Data:         fileReader,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "asset not found")
		case errors.Is(err, errs.ErrUnknownCategory):
			return errorResponse(ctx, http.StatusBadRequest, "unknown category")
		}
		r.logger.Error(err, "restapi - v1 - uploadPhoto")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	resp := response.UploadPhoto{
		PhotoID:     photo.ID.String(),
		AssetID:     photo.AssetID.String(),
		PhotoURL:    photo.PhotoURL,
		Category:    category,
		Slot:        string(slot),
		ContentType: photo.ContentType,
		Size:        photo.Size,
		Status:      string(photo.Status),
		Latitude:    photo.Latitude,
		Longitude:   photo.Longitude,
	}
	if photo.UploadedAt != nil {
		resp.UploadedAt = photo.UploadedAt.Format(time.RFC3339)
	}
	if photo.CapturedAt != nil {
		captured := photo.CapturedAt.Format(time.RFC3339)
		resp.CapturedAt = &captured
	}

	return ctx.Status(http.StatusCreated).JSON(resp)
}

// @Summary 	Get watermarked photo
// @Description Streams the stamped rendition from S3. 404 until the watermark job has run
// @Tags 		photos
// @Produce 	image/jpeg,image/png
// @Param 		id path string true "Photo ID(uuid)"
// @Success 	200 {file} 	binary
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Photo not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos/{id} [get]
func (r *V1) getWatermarkedPhoto(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	key, contentType, err := r.photos.GetWatermarkedKeyByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "photo not found")
		}
		r.logger.Error(err, "restapi - v1 - getWatermarkedPhoto")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	body, err := r.photos.DownloadPhoto(ctx.UserContext(), key)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - getWatermarkedPhoto")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	ctx.Set(fiber.HeaderContentType, contentType)

	return ctx.SendStream(body)
}

// @Summary 	Delete photo
// @Description Deletes the photo row, its outbox job (cascade) and every stored rendition
// @Tags 		photos
// @Param		id 	path	 string true "Photo ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Photo not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos/{id} [delete]
func (r *V1) deletePhoto(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	err := r.photos.DeletePhoto(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "photo not found")
		}
		r.logger.Error(err, "restapi - v1 - deletePhoto")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
