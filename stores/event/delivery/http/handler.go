package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type handler struct {
	events auction.EventRepo
}

func New(e *echo.Echo, events auction.EventRepo) {
	h := &handler{events}

	e.GET("/auctions/:id/events", h.list)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	type params struct {
		Offset int `query:"offset" validate:"gte=0"`
		Limit  int `query:"limit" validate:"gte=0,lte=100"`
	}

	p := &params{}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.events.FindByAuction(ctx, id, p.Offset, p.Limit)
	if err != nil {
		ctx.WithField("err", err).Error("events.FindByAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
