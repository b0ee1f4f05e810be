package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/ptr"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const maxListLimit = 100

type handler struct {
	auction   auction.Usecase
	formatter pricefomatter.PriceFormatter
}

func New(e *echo.Echo, auctionUC auction.Usecase, formatter pricefomatter.PriceFormatter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		auction:   auctionUC,
		formatter: formatter,
	}

	g := e.Group("/auctions")
	g.GET("", h.list)
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("/:id", h.get)
	g.POST("/:id/bids", h.bid, authMiddleware.Auth())
	g.POST("/:id/settle", h.settle)

	e.GET("/settings", h.getSettings)
	e.GET("/price-feeds", h.listPriceFeeds)

	admin := e.Group("/admin", authMiddleware.Auth())
	admin.PUT("/price-feeds", h.setPriceFeed)
	admin.PUT("/treasury", h.setTreasury)
	admin.PUT("/platform-fee", h.setPlatformFee)
}

func parseId(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return id, nil
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller      string `query:"seller" validate:"omitempty,address"`
		PaymentUnit string `query:"paymentUnit" validate:"omitempty,address"`
		Settled     string `query:"settled" validate:"omitempty,oneof=true false"`
		Offset      int    `query:"offset" validate:"gte=0"`
		Limit       int    `query:"limit" validate:"gte=0,lte=100"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	filter := auction.Filter{Offset: p.Offset, Limit: p.Limit}
	if filter.Limit == 0 {
		filter.Limit = maxListLimit
	}
	if p.Settled != "" {
		filter.Settled = ptr.Bool(p.Settled == "true")
	}
	if p.Seller != "" {
		seller := domain.Address(p.Seller).ToLower()
		filter.Seller = &seller
	}
	if p.PaymentUnit != "" {
		unit := domain.Address(p.PaymentUnit).ToLower()
		filter.PaymentUnit = &unit
	}

	res, err := h.auction.ListAuctions(ctx, filter)
	if err != nil {
		ctx.WithField("err", err).Error("auction.ListAuctions failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	views := make([]*auctionView, 0, len(res))
	for _, a := range res {
		views = append(views, h.toView(ctx, a))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.auction.GetAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toView(ctx, a))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type payload struct {
		Contract        domain.Address `json:"contract" validate:"required,address"`
		TokenId         domain.TokenId `json:"tokenId" validate:"required,uint256"`
		DurationSeconds int64          `json:"durationSeconds" validate:"required,gt=0"`
		PaymentUnit     domain.Address `json:"paymentUnit" validate:"omitempty,address"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.auction.CreateAuction(ctx, auction.CreateAuctionReq{
		Seller:          seller,
		Asset:           domain.AssetRef{Contract: p.Contract, TokenId: p.TokenId},
		DurationSeconds: p.DurationSeconds,
		PaymentUnit:     p.PaymentUnit,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("auction.CreateAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]uint64{"auctionId": id})
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Amount  string `json:"amount" validate:"required,uint256"`
		Payment string `json:"payment" validate:"omitempty,uint256"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	req := auction.BidReq{Bidder: bidder, AuctionId: id}
	if req.Amount, err = domain.ParseAmount(p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Payment != "" {
		if req.Payment, err = domain.ParseAmount(p.Payment); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
	}

	if err := h.auction.Bid(ctx, req); err != nil {
		ctx.WithField("err", err).Warn("auction.Bid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Settle(ctx, id); err != nil {
		ctx.WithField("err", err).Warn("auction.Settle failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) getSettings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.auction.GetSettings(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("auction.GetSettings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toSettingsView(s))
}

func (h *handler) listPriceFeeds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.ListPriceFeeds(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("auction.ListPriceFeeds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setPriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		PaymentUnit   domain.Address `json:"paymentUnit" validate:"omitempty,address"`
		Oracle        domain.Address `json:"oracle" validate:"required,address"`
		TokenDecimals uint8          `json:"tokenDecimals" validate:"lte=77"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetPriceFeed(ctx, caller, p.PaymentUnit, p.Oracle, p.TokenDecimals); err != nil {
		ctx.WithField("err", err).Warn("auction.SetPriceFeed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) setTreasury(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Treasury domain.Address `json:"treasury" validate:"required,address"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetTreasury(ctx, caller, p.Treasury); err != nil {
		ctx.WithField("err", err).Warn("auction.SetTreasury failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) setPlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		FeeBps *uint32 `json:"feeBps" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetPlatformFee(ctx, caller, *p.FeeBps); err != nil {
		ctx.WithField("err", err).Warn("auction.SetPlatformFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
