package handler

import (
	"fmt"

	"travel-service/internal/module/admin/usecases"
	"travel-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AdminHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *AdminHandler) Dashboard(ctx *fiber.Ctx) error {
	stats, err := h.Usecase.Dashboard(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get dashboard: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, stats, "success get dashboard")
}
