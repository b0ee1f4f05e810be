package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
	gate domain.AuthorizationGate
}

func New(auth domain.AuthUsecase, gate domain.AuthorizationGate) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
		gate: gate,
	}
}

// Auth requires a bearer token and sets "address" to its holder.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// Require rejects callers the gate does not grant capability.
func (m *AuthMiddleware) Require(capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			address := c.Get("address").(domain.Address)

			if ok, err := m.gate.HasCapability(ctx, address, capability); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !ok {
				return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrUnauthorized)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("address", domain.Address(ads))
		return true, nil
	}
}
