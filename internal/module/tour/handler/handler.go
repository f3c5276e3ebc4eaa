package handler

import (
	"fmt"

	"travel-service/internal/module/tour/models/entity"
	"travel-service/internal/module/tour/models/request"
	"travel-service/internal/module/tour/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type TourHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// ListTours is the public catalogue: active tours only.
func (h *TourHandler) ListTours(ctx *fiber.Ctx) error {
	return h.list(ctx, entity.StatusActive)
}

func (h *TourHandler) AdminListTours(ctx *fiber.Ctx) error {
	return h.list(ctx, ctx.Query("status"))
}

func (h *TourHandler) list(ctx *fiber.Ctx, status string) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		Status: status,
		Search: ctx.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	tours, total, err := h.Usecase.List(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list tours: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, tours, page, total)
}

func (h *TourHandler) GetTour(ctx *fiber.Ctx) error {
	tour, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	if tour.Status != entity.StatusActive {
		return helpers.RespError(ctx, h.Log, errors.NotFound("tour not found"))
	}

	return helpers.RespSuccess(ctx, h.Log, tour, "success get tour")
}

func (h *TourHandler) AdminGetTour(ctx *fiber.Ctx) error {
	tour, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, tour, "success get tour")
}

func (h *TourHandler) CreateTour(ctx *fiber.Ctx) error {
	var req request.Tour
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	tour, err := h.Usecase.Create(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create tour: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, tour, "success create tour")
}

func (h *TourHandler) UpdateTour(ctx *fiber.Ctx) error {
	var req request.Tour
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	tour, err := h.Usecase.Update(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update tour: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, tour, "success update tour")
}

func (h *TourHandler) UpdateStatus(ctx *fiber.Ctx) error {
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
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update tour status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success update tour status")
}

func (h *TourHandler) UpdateImages(ctx *fiber.Ctx) error {
	files, err := helpers.ReadFiles(ctx, "images")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error read images: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	tour, err := h.Usecase.UpdateImages(ctx.UserContext(), ctx.Params("id"), files)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update tour images: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, tour, "success update tour images")
}

func (h *TourHandler) DeleteTour(ctx *fiber.Ctx) error {
	if err := h.Usecase.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete tour: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete tour")
}
