package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tavor118/notes/internal/pkg/serverutils"
	"github.com/tavor118/notes/internal/service"
)

// IPublicNoteController serves the read-only note projections without
// authentication.
type IPublicNoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type publicNoteController struct {
	publicNoteService service.IPublicNoteService
}

func NewPublicNoteController(publicNoteService service.IPublicNoteService) IPublicNoteController {
	return &publicNoteController{
		publicNoteService: publicNoteService,
	}
}

func (c *publicNoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *publicNoteController) List(ctx *fiber.Ctx) error {
	res, err := c.publicNoteService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *publicNoteController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.publicNoteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}
