package v1

import (
	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, bool) {
	idStr := ctx.Params("id")
	if idStr == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
