package usecase

import (
	"math/big"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/lock"
)

// DefaultLockWait bounds how long a caller queues behind another operation on the same auction.
const DefaultLockWait = 5 * time.Second

var met = metrics.New("auction")

type AuctionUseCaseCfg struct {
	// Escrow is the engine account holding listed assets.
	Escrow        domain.Address
	LockWait      time.Duration
	AuctionRepo   auction.Repo
	SettingsRepo  auction.SettingsRepo
	PriceFeedRepo domain.PriceFeedRepo
	Normalizer    domain.PriceNormalizer
	Registry      domain.AssetRegistry
	Ledger        domain.FundsLedger
	Gate          domain.AuthorizationGate
	Locker        lock.Locker
	Events        auction.EventSink
	Clock         clock.Clock
}

type impl struct {
	escrow        domain.Address
	lockWait      time.Duration
	auctionRepo   auction.Repo
	settingsRepo  auction.SettingsRepo
	priceFeedRepo domain.PriceFeedRepo
	normalizer    domain.PriceNormalizer
	registry      domain.AssetRegistry
	ledger        domain.FundsLedger
	gate          domain.AuthorizationGate
	locker        lock.Locker
	events        auction.EventSink
	clock         clock.Clock
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	lockWait := cfg.LockWait
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &impl{
		escrow:        cfg.Escrow.ToLower(),
		lockWait:      lockWait,
		auctionRepo:   cfg.AuctionRepo,
		settingsRepo:  cfg.SettingsRepo,
		priceFeedRepo: cfg.PriceFeedRepo,
		normalizer:    cfg.Normalizer,
		registry:      cfg.Registry,
		ledger:        cfg.Ledger,
		gate:          cfg.Gate,
		locker:        cfg.Locker,
		events:        cfg.Events,
		clock:         cfg.Clock,
	}
}

func auctionKey(id uint64) string {
	return keys.RedisKey(keys.PfxAuction, strconv.FormatUint(id, 10))
}

func assetKey(asset domain.AssetRef) string {
	return keys.RedisKey(keys.PfxAsset, asset.String())
}

// hold takes the lock for key and returns the ctx to run the guarded section with.
func (im *impl) hold(c ctx.Ctx, key string) (ctx.Ctx, lock.Release, error) {
	defer met.BumpTime("lock.wait").End()
	lc, release, err := lock.Hold(c, im.locker, key, im.lockWait)
	switch {
	case err == lock.ErrReentrant:
		met.BumpSum("lock.err", 1, "kind", "reentrant")
		return c, nil, xerrors.Errorf("%s: %w", key, domain.ErrReentrantCall)
	case err == lock.ErrTimeout:
		met.BumpSum("lock.err", 1, "kind", "timeout")
		return c, nil, xerrors.Errorf("%s: %w", key, domain.ErrAuctionLocked)
	case err != nil:
		c.WithFields(log.Fields{"err": err, "key": key}).Error("lock.Hold failed")
		return c, nil, err
	}
	return lc, release, nil
}

func (im *impl) emit(c ctx.Ctx, ev auction.Event) {
	if im.events == nil {
		return
	}
	ev.CreatedAt = im.clock.Now()
	im.events.Emit(c, ev)
}

func errKind(err error) string {
	for _, e := range []error{
		domain.ErrNotFound,
		domain.ErrNotOwnerOrNotApproved,
		domain.ErrInvalidDuration,
		domain.ErrAuctionInactive,
		domain.ErrAuctionAlreadySettled,
		domain.ErrAuctionNotYetEnded,
		domain.ErrBidTooLow,
		domain.ErrPaymentMismatch,
		domain.ErrInvalidAmount,
		domain.ErrNoPriceFeed,
		domain.ErrStalePrice,
		domain.ErrInvalidOracleData,
		domain.ErrAmountOverflow,
		domain.ErrTransferFailed,
		domain.ErrTreasuryNotSet,
		domain.ErrReentrantCall,
		domain.ErrAuctionLocked,
	} {
		if xerrors.Is(err, e) {
			return e.Error()
		}
	}
	return "internal"
}

func bumpErr(op string, err error) {
	met.BumpSum(op+".err", 1, "kind", errKind(err))
}

func (im *impl) CreateAuction(c ctx.Ctx, req auction.CreateAuctionReq) (id uint64, err error) {
	defer met.BumpTime("create.time").End()
	defer func() {
		if err != nil {
			bumpErr("create", err)
		}
	}()

	if req.Seller.IsEmpty() || req.Asset.Contract.IsEmpty() {
		return 0, domain.ErrInvalidAddress
	}
	if _, err := req.Asset.TokenId.ToBig(); err != nil {
		return 0, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if req.DurationSeconds <= 0 {
		return 0, domain.ErrInvalidDuration
	}

	seller := req.Seller.ToLower()
	asset := domain.AssetRef{Contract: req.Asset.Contract.ToLower(), TokenId: req.Asset.TokenId}
	c = ctx.WithValues(c, map[string]interface{}{"seller": seller, "asset": asset.String()})

	lc, release, err := im.hold(c, assetKey(asset))
	if err != nil {
		return 0, err
	}
	defer release()

	owner, err := im.registry.OwnerOf(lc, asset)
	if xerrors.Is(err, domain.ErrNotFound) {
		return 0, xerrors.Errorf("%s: %w", asset, domain.ErrNotOwnerOrNotApproved)
	} else if err != nil {
		lc.WithField("err", err).Error("registry.OwnerOf failed")
		return 0, err
	}
	if !owner.Equals(seller) {
		return 0, domain.ErrNotOwnerOrNotApproved
	}
	approved, err := im.registry.IsApproved(lc, asset, seller, im.escrow)
	if err != nil {
		lc.WithField("err", err).Error("registry.IsApproved failed")
		return 0, err
	}
	if !approved {
		return 0, domain.ErrNotOwnerOrNotApproved
	}

	j := &journal{}
	if err := im.registry.Transfer(lc, asset, seller, im.escrow); err != nil {
		lc.WithField("err", err).Error("registry.Transfer to escrow failed")
		return 0, &domain.TransferError{Op: domain.TransferOpAsset, Unit: asset.Contract, Account: seller, Err: err}
	}
	j.add("return asset", func(rc ctx.Ctx) error {
		return im.registry.Transfer(rc, asset, im.escrow, seller)
	})

	id, err = im.auctionRepo.NextId(lc)
	if err != nil {
		lc.WithField("err", err).Error("auctionRepo.NextId failed")
		j.rollback(lc)
		return 0, err
	}

	now := im.clock.Now()
	a := &auction.Auction{
		Id:                 id,
		Seller:             seller,
		Asset:              asset,
		EndTime:            now.Add(time.Duration(req.DurationSeconds) * time.Second),
		PaymentUnit:        req.PaymentUnit.ToLower(),
		HighestBidAmount:   big.NewInt(0),
		HighestBidUsdValue: big.NewInt(0),
		CreatedAt:          now,
	}
	if a.PaymentUnit.IsEmpty() {
		a.PaymentUnit = domain.NativeUnit
	}
	if err := im.auctionRepo.Insert(lc, a); err != nil {
		lc.WithFields(log.Fields{"err": err, "auctionId": id}).Error("auctionRepo.Insert failed")
		j.rollback(lc)
		return 0, err
	}

	im.emit(lc, auction.Event{
		Type:      auction.EventAuctionCreated,
		AuctionId: id,
		Account:   seller,
		Unit:      a.PaymentUnit,
	})
	return id, nil
}

func (im *impl) Bid(c ctx.Ctx, req auction.BidReq) (err error) {
	defer met.BumpTime("bid.time").End()
	defer func() {
		if err != nil {
			bumpErr("bid", err)
		}
	}()

	if req.Bidder.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if req.Amount == nil || req.Amount.Sign() < 0 || (req.Payment != nil && req.Payment.Sign() < 0) {
		return domain.ErrInvalidAmount
	}

	bidder := req.Bidder.ToLower()
	c = ctx.WithValues(c, map[string]interface{}{"auctionId": req.AuctionId, "bidder": bidder})

	lc, release, err := im.hold(c, auctionKey(req.AuctionId))
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auctionRepo.FindOne(lc, req.AuctionId)
	if err != nil {
		lc.WithField("err", err).Error("auctionRepo.FindOne failed")
		return err
	} else if a == nil {
		return domain.ErrNotFound
	}

	if !a.IsActive(im.clock.Now()) {
		return domain.ErrAuctionInactive
	}

	usd, err := im.normalizer.NormalizeUnit(lc, a.PaymentUnit, req.Amount)
	if err != nil {
		return err
	}

	prev := a.CurrentBid()
	highest := prev.UsdValue
	if highest == nil {
		highest = domain.Big0
	}
	if usd.Cmp(highest) <= 0 {
		return domain.ErrBidTooLow
	}

	if err := checkPayment(a.PaymentUnit, req.Amount, req.Payment); err != nil {
		return err
	}

	j := &journal{}
	if err := im.auctionRepo.UpdateBid(lc, a.Id, auction.Bid{Bidder: bidder, Amount: req.Amount, UsdValue: usd}); err != nil {
		lc.WithField("err", err).Error("auctionRepo.UpdateBid failed")
		return err
	}
	j.add("restore bid", func(rc ctx.Ctx) error {
		return im.auctionRepo.UpdateBid(rc, a.Id, prev)
	})

	if req.Amount.Sign() > 0 {
		if err := im.ledger.Pull(lc, a.PaymentUnit, bidder, req.Amount); err != nil {
			lc.WithField("err", err).Error("ledger.Pull failed")
			j.rollback(lc)
			return &domain.TransferError{Op: domain.TransferOpPull, Unit: a.PaymentUnit, Account: bidder, Err: err}
		}
		j.add("return pulled funds", func(rc ctx.Ctx) error {
			return im.ledger.Push(rc, a.PaymentUnit, bidder, req.Amount)
		})
	}

	if a.HasBid() && prev.Amount != nil && prev.Amount.Sign() > 0 {
		if err := im.ledger.Push(lc, a.PaymentUnit, prev.Bidder, prev.Amount); err != nil {
			lc.WithFields(log.Fields{"err": err, "refundTo": prev.Bidder}).Error("ledger.Push refund failed")
			j.rollback(lc)
			return &domain.TransferError{Op: domain.TransferOpPush, Unit: a.PaymentUnit, Account: prev.Bidder, Err: err}
		}
	}

	im.emit(lc, auction.Event{
		Type:      auction.EventBidPlaced,
		AuctionId: a.Id,
		Account:   bidder,
		Unit:      a.PaymentUnit,
		Amount:    req.Amount.String(),
		UsdValue:  usd.String(),
	})
	return nil
}

// checkPayment matches the native value attached to a bid against its unit.
func checkPayment(unit domain.Address, amount, payment *big.Int) error {
	if unit.IsNative() {
		if payment == nil || payment.Cmp(amount) != 0 {
			return domain.ErrPaymentMismatch
		}
		return nil
	}
	if payment != nil && payment.Sign() != 0 {
		return domain.ErrPaymentMismatch
	}
	return nil
}

func (im *impl) Settle(c ctx.Ctx, auctionId uint64) (err error) {
	defer met.BumpTime("settle.time").End()
	defer func() {
		if err != nil {
			bumpErr("settle", err)
		}
	}()

	c = ctx.WithValue(c, "auctionId", auctionId)
	lc, release, err := im.hold(c, auctionKey(auctionId))
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auctionRepo.FindOne(lc, auctionId)
	if err != nil {
		lc.WithField("err", err).Error("auctionRepo.FindOne failed")
		return err
	} else if a == nil {
		return domain.ErrNotFound
	}

	now := im.clock.Now()
	if now.Before(a.EndTime) {
		return domain.ErrAuctionNotYetEnded
	}
	if a.Settled {
		return domain.ErrAuctionAlreadySettled
	}

	var sellerAmount, feeAmount *big.Int
	var settings *auction.Settings
	if a.HasBid() {
		settings, err = im.settingsRepo.Get(lc)
		if err != nil {
			lc.WithField("err", err).Error("settingsRepo.Get failed")
			return err
		}
		sellerAmount, feeAmount = settings.SplitProceeds(a.HighestBidAmount)
		if feeAmount.Sign() > 0 && settings.Treasury.IsEmpty() {
			return domain.ErrTreasuryNotSet
		}
	}

	j := &journal{}
	if err := im.auctionRepo.MarkSettled(lc, a.Id, true, &now); err != nil {
		lc.WithField("err", err).Error("auctionRepo.MarkSettled failed")
		return err
	}
	j.add("unmark settled", func(rc ctx.Ctx) error {
		return im.auctionRepo.MarkSettled(rc, a.Id, false, nil)
	})

	if !a.HasBid() {
		if err := im.registry.Transfer(lc, a.Asset, im.escrow, a.Seller); err != nil {
			lc.WithField("err", err).Error("registry.Transfer to seller failed")
			j.rollback(lc)
			return &domain.TransferError{Op: domain.TransferOpAsset, Unit: a.Asset.Contract, Account: a.Seller, Err: err}
		}
		im.emit(lc, auction.Event{
			Type:      auction.EventAuctionSettled,
			AuctionId: a.Id,
			Account:   a.Seller,
			Unit:      a.PaymentUnit,
			Amount:    "0",
		})
		return nil
	}

	// the asset transfer cannot be compensated, so it runs after the proceeds
	legs := []struct {
		account domain.Address
		amount  *big.Int
	}{
		{a.Seller, sellerAmount},
		{settings.Treasury, feeAmount},
	}
	for _, leg := range legs {
		leg := leg
		if leg.amount.Sign() == 0 {
			continue
		}
		if err := im.ledger.Push(lc, a.PaymentUnit, leg.account, leg.amount); err != nil {
			lc.WithFields(log.Fields{"err": err, "to": leg.account}).Error("ledger.Push proceeds failed")
			j.rollback(lc)
			return &domain.TransferError{Op: domain.TransferOpPush, Unit: a.PaymentUnit, Account: leg.account, Err: err}
		}
		j.add("reclaim proceeds", func(rc ctx.Ctx) error {
			return im.ledger.Pull(rc, a.PaymentUnit, leg.account, leg.amount)
		})
	}

	winner := a.HighestBidder
	if err := im.registry.Transfer(lc, a.Asset, im.escrow, winner); err != nil {
		lc.WithField("err", err).Error("registry.Transfer to winner failed")
		j.rollback(lc)
		return &domain.TransferError{Op: domain.TransferOpAsset, Unit: a.Asset.Contract, Account: winner, Err: err}
	}

	im.emit(lc, auction.Event{
		Type:      auction.EventAuctionSettled,
		AuctionId: a.Id,
		Account:   winner,
		Unit:      a.PaymentUnit,
		Amount:    a.HighestBidAmount.String(),
		UsdValue:  a.HighestBidUsdValue.String(),
		FeeBps:    &settings.FeeBps,
	})
	return nil
}
