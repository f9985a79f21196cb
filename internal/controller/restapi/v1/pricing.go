package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1/request"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// @Summary 	Quote booking price
// @Description Pro-rata display cost on a 30-day month plus printing, mounting and GST
// @Tags 		pricing
// @Accept 		json
// @Produce 	json
// @Param 		request body request.Quote true "Booking"
// @Success 	200 {object} entity.Pricing
// @Failure 	400 {object} response.Error "Invalid request body"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/pricing/quote [post]
func (r *V1) quote(ctx *fiber.Ctx) error {
	var body request.Quote
	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}

	pricing, err := r.pricing.Quote(ctx.UserContext(), entity.PricingInput{
		CardRate:       body.CardRate,
		NegotiatedRate: body.NegotiatedRate,
		StartDate:      start,
		EndDate:        end,
		PrintingCost:   body.PrintingCost,
		MountingCost:   body.MountingCost,
		GSTPercent:     body.GSTPercent,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidBookingPeriod):
			return errorResponse(ctx, http.StatusBadRequest, "end_date must not be before start_date")
		case errors.Is(err, errs.ErrInvalidRate):
			return errorResponse(ctx, http.StatusBadRequest, "card_rate must be positive and amounts non-negative")
		}
		r.logger.Error(err, "restapi - v1 - quote")

		return errorResponse(ctx, http.StatusInternalServerError, "pricing problems")
	}

	return ctx.JSON(pricing)
}
