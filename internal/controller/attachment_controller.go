package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/pkg/apperror"
	"github.com/tavor118/notes/internal/pkg/serverutils"
	"github.com/tavor118/notes/internal/service"
)

type IAttachmentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type attachmentController struct {
	attachmentService service.IAttachmentService
}

func NewAttachmentController(attachmentService service.IAttachmentService) IAttachmentController {
	return &attachmentController{
		attachmentService: attachmentService,
	}
}

func (c *attachmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/attachments")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// Create accepts multipart form data: a required "file" part, an
// optional "preview" part, and an optional "title" field.
func (c *attachmentController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.ValidationMsg("file", "This field is required.")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Internal("open upload", err)
	}
	defer file.Close()

	input := service.CreateAttachmentInput{
		Title:    ctx.FormValue("title"),
		Filename: fileHeader.Filename,
		File:     file,
	}

	if previewHeader, err := ctx.FormFile("preview"); err == nil {
		preview, err := previewHeader.Open()
		if err != nil {
			return apperror.Internal("open upload", err)
		}
		defer preview.Close()
		input.PreviewFilename = previewHeader.Filename
		input.Preview = preview
	}

	res, err := c.attachmentService.Create(ctx.Context(), userId, &input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create attachment", res))
}

func (c *attachmentController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.attachmentService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show attachment", res))
}

func (c *attachmentController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAttachmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.attachmentService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update attachment", res))
}

func (c *attachmentController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	err = c.attachmentService.Delete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *attachmentController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.attachmentService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list attachments", res))
}
