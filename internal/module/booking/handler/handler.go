package handler

import (
	"fmt"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.Booking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	booking, err := h.Usecase.Create(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, booking, "success create booking, we will contact you shortly")
}

func (h *BookingHandler) LookupBooking(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("email is required"))
	}

	booking, err := h.Usecase.Lookup(ctx.UserContext(), ctx.Params("number"), email)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, booking, "success get booking")
}

func filterFrom(ctx *fiber.Ctx, page helpers.Page) entity.Filter {
	return entity.Filter{
		Status: ctx.Query("status"),
		Type:   ctx.Query("type"),
		Search: ctx.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	page := helpers.ParsePage(ctx)

	bookings, total, err := h.Usecase.List(ctx.UserContext(), filterFrom(ctx, page))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPaginated(ctx, h.Log, bookings, page, total)
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	booking, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, booking, "success get booking")
}

func (h *BookingHandler) UpdateStatus(ctx *fiber.Ctx) error {
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
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success update booking status")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	if err := h.Usecase.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete booking")
}

func (h *BookingHandler) BookingStats(ctx *fiber.Ctx) error {
	stats, err := h.Usecase.Stats(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error booking stats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, stats, "success get booking stats")
}

func (h *BookingHandler) ExportBookings(ctx *fiber.Ctx) error {
	export, err := h.Usecase.Export(ctx.UserContext(), filterFrom(ctx, helpers.Page{}))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error export bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Attachment(export.Filename)
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	return ctx.Send(export.Content)
}

// ConsumeBookingCreated mails the customer and the back office. A returned
// error sends the message to the poisoned queue.
func (h *BookingHandler) ConsumeBookingCreated(msg *message.Message) error {
	var booking entity.Booking
	if err := json.Unmarshal(msg.Payload, &booking); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Usecase.NotifyBookingCreated(msg.Context(), &booking); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error notify booking created: %v", err))
		return err
	}

	return nil
}
