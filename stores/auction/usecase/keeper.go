package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain/auction"
)

const keeperWorkers = 8

type keeperImpl struct {
	auctionRepo auction.Repo
	auctionUC   auction.Usecase
	clock       clock.Clock
}

func NewKeeper(auctionRepo auction.Repo, auctionUC auction.Usecase, clock clock.Clock) auction.KeeperUsecase {
	return &keeperImpl{
		auctionRepo: auctionRepo,
		auctionUC:   auctionUC,
		clock:       clock,
	}
}

func (im *keeperImpl) SettleEnded(c ctx.Ctx, batch int) (int, error) {
	now := im.clock.Now()
	ended, err := im.auctionRepo.FindAll(c, auction.Filter{
		Settled:     ptr.Bool(false),
		EndedBefore: &now,
		Limit:       batch,
	})
	if err != nil {
		c.WithField("err", err).Error("auctionRepo.FindAll failed")
		return 0, err
	}
	if len(ended) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(keeperWorkers, goroutines.WithBatchSize(len(ended)))
	defer b.Close()
	for _, a := range ended {
		id := a.Id
		b.Queue(func() (interface{}, error) {
			return id, im.auctionUC.Settle(c, id)
		})
	}
	b.QueueComplete()

	settled := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			// another instance may have settled it first
			c.WithFields(log.Fields{
				"err":       ret.Error(),
				"auctionId": ret.Value(),
			}).Warn("keeper settle failed")
			continue
		}
		settled++
	}
	met.BumpSum("keeper.settled", float64(settled))
	return settled, nil
}
