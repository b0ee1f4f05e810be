package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
)

// nativeDecimals is the precision of the chain's native currency.
const nativeDecimals = 18

func (im *impl) authorize(c ctx.Ctx, caller domain.Address) error {
	ok, err := im.gate.HasCapability(c, caller.ToLower(), domain.CapabilityAdmin)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "caller": caller}).Error("gate.HasCapability failed")
		return err
	}
	if !ok {
		c.WithField("caller", caller).Warn("admin call denied")
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) SetPriceFeed(c ctx.Ctx, caller, unit, oracle domain.Address, tokenDecimals uint8) error {
	if err := im.authorize(c, caller); err != nil {
		return err
	}
	if oracle.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if unit.IsEmpty() {
		unit = domain.NativeUnit
		tokenDecimals = nativeDecimals
	}

	binding := &domain.PriceFeedBinding{
		PaymentUnit:   unit.ToLower(),
		Oracle:        oracle.ToLower(),
		TokenDecimals: tokenDecimals,
		UpdatedAt:     im.clock.Now(),
	}
	if err := im.priceFeedRepo.Upsert(c, binding); err != nil {
		c.WithFields(log.Fields{"err": err, "binding": binding}).Error("priceFeedRepo.Upsert failed")
		return err
	}

	im.emit(c, auction.Event{
		Type:    auction.EventPriceFeedUpdated,
		Account: binding.Oracle,
		Unit:    binding.PaymentUnit,
	})
	return nil
}

func (im *impl) SetTreasury(c ctx.Ctx, caller, treasury domain.Address) error {
	if err := im.authorize(c, caller); err != nil {
		return err
	}
	if treasury.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	lc, release, err := im.hold(c, keys.RedisKey(keys.PfxSettings))
	if err != nil {
		return err
	}
	defer release()

	if err := im.settingsRepo.SetTreasury(lc, treasury.ToLower()); err != nil {
		lc.WithFields(log.Fields{"err": err, "treasury": treasury}).Error("settingsRepo.SetTreasury failed")
		return err
	}

	im.emit(lc, auction.Event{
		Type:    auction.EventTreasuryUpdated,
		Account: treasury.ToLower(),
	})
	return nil
}

func (im *impl) SetPlatformFee(c ctx.Ctx, caller domain.Address, bps uint32) error {
	if err := im.authorize(c, caller); err != nil {
		return err
	}
	if bps > auction.MaxFeeBps {
		return domain.ErrFeeOutOfRange
	}

	lc, release, err := im.hold(c, keys.RedisKey(keys.PfxSettings))
	if err != nil {
		return err
	}
	defer release()

	if err := im.settingsRepo.SetFeeBps(lc, bps); err != nil {
		lc.WithFields(log.Fields{"err": err, "bps": bps}).Error("settingsRepo.SetFeeBps failed")
		return err
	}

	im.emit(lc, auction.Event{
		Type:   auction.EventPlatformFeeUpdated,
		FeeBps: &bps,
	})
	return nil
}

func (im *impl) GetAuction(c ctx.Ctx, id uint64) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("auctionRepo.FindOne failed")
		return nil, err
	} else if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (im *impl) ListAuctions(c ctx.Ctx, filter auction.Filter) ([]*auction.Auction, error) {
	res, err := im.auctionRepo.FindAll(c, filter)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "filter": filter}).Error("auctionRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetSettings(c ctx.Ctx) (*auction.Settings, error) {
	s, err := im.settingsRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settingsRepo.Get failed")
		return nil, err
	}
	return s, nil
}

func (im *impl) ListPriceFeeds(c ctx.Ctx) ([]*domain.PriceFeedBinding, error) {
	res, err := im.priceFeedRepo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("priceFeedRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}
