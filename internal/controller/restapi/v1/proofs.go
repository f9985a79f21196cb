package v1

import (
	"errors"
	"net/http"

	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	Resolve asset proof
// @Description Latest photo per slot and the derived proof status of a campaign asset
// @Tags 		proofs
// @Produce 	json
// @Param 		id path string true "Asset ID(uuid)"
// @Success 	200 {object} response.Proof
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Asset not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/assets/{id}/proof [get]
func (r *V1) getProof(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	summary, err := r.proofs.Resolve(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "asset not found")
		}
		r.logger.Error(err, "restapi - v1 - getProof")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.Proof{
		AssetID:      summary.AssetID.String(),
		Photos:       summary.Photos,
		Status:       string(summary.Status),
		FromFallback: summary.FromFallback,
		Filled:       summary.Photos.Filled(),
	})
}

// @Summary 	Export asset proof
// @Description Present photos in slot order with their display labels
// @Tags 		proofs
// @Produce 	json
// @Param 		id path string true "Asset ID(uuid)"
// @Success 	200 {array}  entity.ExportItem
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Asset not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/assets/{id}/proof/export [get]
func (r *V1) exportProof(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	items, err := r.proofs.Export(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "asset not found")
		}
		r.logger.Error(err, "restapi - v1 - exportProof")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(items)
}
