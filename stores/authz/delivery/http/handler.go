package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	roles domain.RoleGrantUsecase
}

func New(e *echo.Echo, roles domain.RoleGrantUsecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{roles}

	g := e.Group("/admin/roles", authMiddleware.Auth(), authMiddleware.Require(domain.CapabilityAdmin))
	g.GET("", h.getAll)
	g.POST("", h.grant)
	g.DELETE("/:capability/:address", h.revoke)
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.roles.FindAll(ctx, domain.Capability(c.QueryParam("capability"))); err != nil {
		ctx.WithField("err", err).Error("roles.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) grant(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Address    domain.Address    `json:"address" validate:"required,address"`
		Capability domain.Capability `json:"capability" validate:"required,oneof=ADMIN UPGRADE"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.roles.Grant(ctx, caller, p.Address, p.Capability); err != nil {
		ctx.WithField("err", err).Error("roles.Grant failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) revoke(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	address := domain.Address(c.Param("address"))
	capability := domain.Capability(c.Param("capability"))

	if err := h.roles.Revoke(ctx, caller, address, capability); err != nil {
		ctx.WithField("err", err).Error("roles.Revoke failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
