package handler

import (
	"fmt"
	"strconv"

	"travel-service/internal/module/service/models/entity"
	"travel-service/internal/module/service/models/request"
	"travel-service/internal/module/service/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ServiceHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ServiceHandler) ListServices(ctx *fiber.Ctx) error {
	return h.list(ctx, entity.StatusActive)
}

func (h *ServiceHandler) AdminListServices(ctx *fiber.Ctx) error {
	return h.list(ctx, ctx.Query("status"))
}

func (h *ServiceHandler) list(ctx *fiber.Ctx, status string) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		Category: ctx.Query("category"),
		Status:   status,
		Search:   ctx.Query("search"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	if raw := ctx.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return helpers.RespError(ctx, h.Log, errors.BadRequest("featured must be a boolean"))
		}
		filter.Featured = &featured
	}

	services, total, err := h.Usecase.List(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, services, page, total)
}

func (h *ServiceHandler) FeaturedServices(ctx *fiber.Ctx) error {
	services, err := h.Usecase.Featured(ctx.UserContext(), ctx.QueryInt("limit"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error featured services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, services, "success get featured services")
}

func (h *ServiceHandler) Categories(ctx *fiber.Ctx) error {
	categories, err := h.Usecase.Categories(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error service categories: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, categories, "success get service categories")
}

func (h *ServiceHandler) GetService(ctx *fiber.Ctx) error {
	service, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	if service.Status != entity.StatusActive {
		return helpers.RespError(ctx, h.Log, errors.NotFound("service not found"))
	}

	return helpers.RespSuccess(ctx, h.Log, service, "success get service")
}

func (h *ServiceHandler) AdminGetService(ctx *fiber.Ctx) error {
	service, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, service, "success get service")
}

func (h *ServiceHandler) CreateService(ctx *fiber.Ctx) error {
	var req request.Service
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	service, err := h.Usecase.Create(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, service, "success create service")
}

func (h *ServiceHandler) UpdateService(ctx *fiber.Ctx) error {
	var req request.Service
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	service, err := h.Usecase.Update(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, service, "success update service")
}

func (h *ServiceHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var req request.UpdateStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.UpdateStatus(ctx.UserContext(), ctx.Params("id"), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update service status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success update service status")
}

func (h *ServiceHandler) UpdateImages(ctx *fiber.Ctx) error {
	files, err := helpers.ReadFiles(ctx, "images")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	service, err := h.Usecase.UpdateImages(ctx.UserContext(), ctx.Params("id"), files)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update service images: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, service, "success update service images")
}

func (h *ServiceHandler) DeleteService(ctx *fiber.Ctx) error {
	if err := h.Usecase.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete service")
}
