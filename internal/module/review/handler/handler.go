package handler

import (
	"fmt"

	"travel-service/internal/module/review/models/entity"
	"travel-service/internal/module/review/models/request"
	"travel-service/internal/module/review/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReviewHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ReviewHandler) ListTourReviews(ctx *fiber.Ctx) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		TourID: ctx.Params("id"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	reviews, total, err := h.Usecase.ListByTour(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list tour reviews: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, reviews, page, total)
}

func (h *ReviewHandler) AdminListReviews(ctx *fiber.Ctx) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		TourID: ctx.Query("tour_id"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	reviews, total, err := h.Usecase.List(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list reviews: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, reviews, page, total)
}

func (h *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	var req request.Review
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	review, err := h.Usecase.Create(ctx.UserContext(), helpers.UserID(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create review: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, review, "success create review")
}

func (h *ReviewHandler) DeleteReview(ctx *fiber.Ctx) error {
	admin := helpers.UserRole(ctx) == middleware.RoleAdmin
	if err := h.Usecase.Delete(ctx.UserContext(), ctx.Params("id"), helpers.UserID(ctx), admin); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete review: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete review")
}
