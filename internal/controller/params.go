package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tavor118/notes/internal/pkg/apperror"
)

// parseIdParam reads the :id path segment. A non-numeric id behaves
// like a missing row.
func parseIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, apperror.NotFound("resource")
	}
	return uint(id), nil
}

func currentUserId(ctx *fiber.Ctx) uint {
	return ctx.Locals("user_id").(uint)
}
