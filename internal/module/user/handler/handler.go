package handler

import (
	"fmt"

	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/module/user/models/request"
	"travel-service/internal/module/user/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type UserHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *UserHandler) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}
	return nil
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	auth, err := h.Usecase.Register(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register user: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, auth, "success register")
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	auth, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, auth, "success login")
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.Usecase.Me(ctx.UserContext(), helpers.UserID(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, user, "success get profile")
}

func (h *UserHandler) UpdatePreferences(ctx *fiber.Ctx) error {
	var req request.UpdatePreferences
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	user, err := h.Usecase.UpdatePreferences(ctx.UserContext(), helpers.UserID(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update preferences: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, user, "success update preferences")
}

func (h *UserHandler) AdminListUsers(ctx *fiber.Ctx) error {
	page := helpers.ParsePage(ctx)
	filter := entity.Filter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	users, total, err := h.Usecase.List(ctx.UserContext(), filter)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list users: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, users, page, total)
}

func (h *UserHandler) UpdateRole(ctx *fiber.Ctx) error {
	var req request.UpdateRole
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if ctx.Params("id") == helpers.UserID(ctx) {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("cannot change your own role"))
	}

	if err := h.Usecase.UpdateRole(ctx.UserContext(), ctx.Params("id"), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update role: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success update role")
}
