package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/middleware"
)

// AssetMinter is the sandbox side of the in-memory asset registry.
type AssetMinter interface {
	Mint(ctx ctx.Ctx, asset domain.AssetRef, owner domain.Address)
	SetApprovalForAll(ctx ctx.Ctx, owner, operator domain.Address, approved bool)
}

type sandboxHandler struct {
	minter AssetMinter
	faucet domain.Faucet
	ledger domain.FundsLedger
	escrow domain.Address
}

// NewSandbox registers the routes that stand in for the chain when running on memory drivers.
func NewSandbox(e *echo.Echo, minter AssetMinter, faucet domain.Faucet, ledger domain.FundsLedger, escrow domain.Address) {
	h := &sandboxHandler{
		minter: minter,
		faucet: faucet,
		ledger: ledger,
		escrow: escrow,
	}

	g := e.Group("/sandbox")
	g.POST("/mint", h.mint)
	g.POST("/faucet", h.drip)
	g.GET("/balances/:account", h.balance, middleware.IsValidAddress("account"))
}

func (h *sandboxHandler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Contract domain.Address `json:"contract" validate:"required,address"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required,uint256"`
		Owner    domain.Address `json:"owner" validate:"required,address"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	asset := domain.AssetRef{Contract: p.Contract.ToLower(), TokenId: p.TokenId}
	h.minter.Mint(ctx, asset, p.Owner.ToLower())
	// listing needs the escrow approved
	h.minter.SetApprovalForAll(ctx, p.Owner.ToLower(), h.escrow, true)
	return delivery.MakeJsonResp(c, http.StatusCreated, asset)
}

func (h *sandboxHandler) drip(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Unit    domain.Address `json:"unit" validate:"omitempty,address"`
		Account domain.Address `json:"account" validate:"required,address"`
		Amount  string         `json:"amount" validate:"required,uint256"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	unit := p.Unit.ToLower()
	if unit.IsEmpty() {
		unit = domain.NativeUnit
	}
	if err := h.faucet.Credit(ctx, unit, p.Account.ToLower(), amount); err != nil {
		ctx.WithField("err", err).Error("faucet.Credit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *sandboxHandler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	unit := domain.Address(c.QueryParam("unit")).ToLower()
	if unit.IsEmpty() {
		unit = domain.NativeUnit
	}
	account := domain.Address(c.Param("account")).ToLower()

	bal, err := h.ledger.BalanceOf(ctx, unit, account)
	if err != nil {
		ctx.WithField("err", err).Error("ledger.BalanceOf failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{"balance": bal.String()})
}
