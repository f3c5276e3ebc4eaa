package handler

import (
	"fmt"

	"travel-service/internal/module/content/models/entity"
	"travel-service/internal/module/content/models/request"
	"travel-service/internal/module/content/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ContentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ContentHandler) ListContent(ctx *fiber.Ctx) error {
	return h.list(ctx, entity.StatusPublished)
}

func (h *ContentHandler) AdminListContent(ctx *fiber.Ctx) error {
	return h.list(ctx, ctx.Query("status"))
}

func (h *ContentHandler) list(ctx *fiber.Ctx, status string) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		Type:   ctx.Query("type"),
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	items, total, err := h.Usecase.List(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list content: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, items, page, total)
}

// GetBySlug serves published pages only.
func (h *ContentHandler) GetBySlug(ctx *fiber.Ctx) error {
	content, err := h.Usecase.GetBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	if content.Status != entity.StatusPublished {
		return helpers.RespError(ctx, h.Log, errors.NotFound("content not found"))
	}

	return helpers.RespSuccess(ctx, h.Log, content, "success get content")
}

func (h *ContentHandler) AdminGetContent(ctx *fiber.Ctx) error {
	content, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, content, "success get content")
}

func (h *ContentHandler) parse(ctx *fiber.Ctx) (*request.Content, error) {
	var req request.Content
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return nil, errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return nil, errors.BadRequest(err.Error())
	}
	return &req, nil
}

func (h *ContentHandler) CreateContent(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	content, err := h.Usecase.Create(ctx.UserContext(), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create content: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, content, "success create content")
}

func (h *ContentHandler) UpdateContent(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	content, err := h.Usecase.Update(ctx.UserContext(), ctx.Params("id"), req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update content: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, content, "success update content")
}

func (h *ContentHandler) UpdateImage(ctx *fiber.Ctx) error {
	files, err := helpers.ReadFiles(ctx, "image")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error read image: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	content, err := h.Usecase.UpdateImage(ctx.UserContext(), ctx.Params("id"), files[0])
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update content image: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, content, "success update content image")
}

func (h *ContentHandler) DeleteContent(ctx *fiber.Ctx) error {
	if err := h.Usecase.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete content: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete content")
}
