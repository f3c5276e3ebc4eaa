package middleware

import (
	"context"
	"fmt"
	"strings"

	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/token"

	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// RoleLookup returns the stored role of a user, or "" when the user is gone.
type RoleLookup func(ctx context.Context, userID string) (string, error)

type Middleware struct {
	Log      *otelzap.Logger
	Tokens   *token.Manager
	Enforcer *casbin.Enforcer
	// Roles, when set, replaces the role carried in the token.
	Roles RoleLookup
}

func bearer(ctx *fiber.Ctx) string {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	raw := bearer(ctx)
	if raw == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	claims, err := m.Tokens.Parse(raw)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	role := claims.Role
	if m.Roles != nil {
		role, err = m.Roles(ctx.UserContext(), claims.UserID)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error lookup role: %v", err))
			return helpers.RespError(ctx, m.Log, errors.InternalServerError("error lookup role"))
		}
		if role == "" {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("user %s no longer exists", claims.UserID))
			return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("user not found"))
		}
	}

	ctx.Locals("user_id", claims.UserID)
	ctx.Locals("role", role)

	return ctx.Next()
}

// OptionalToken attaches claims when a valid token is present and lets the
// request through either way.
func (m *Middleware) OptionalToken(ctx *fiber.Ctx) error {
	if raw := bearer(ctx); raw != "" {
		if claims, err := m.Tokens.Parse(raw); err == nil {
			ctx.Locals("user_id", claims.UserID)
			ctx.Locals("role", claims.Role)
		}
	}
	return ctx.Next()
}

// Authorize checks the caller's role against the casbin policy for obj/act.
// It must run after ValidateToken.
func (m *Middleware) Authorize(obj, act string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := helpers.UserRole(ctx)
		ok, err := m.Enforcer.Enforce(role, obj, act)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error enforce policy: %v", err))
			return helpers.RespError(ctx, m.Log, errors.InternalServerError("error authorize request"))
		}
		if !ok {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("role %q denied %s on %s", role, act, obj))
			return helpers.RespError(ctx, m.Log, errors.ForbiddenError("insufficient permissions"))
		}
		return ctx.Next()
	}
}
