package auction

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// KeeperUsecase settles auctions whose end time has passed.
type KeeperUsecase interface {
	// SettleEnded settles up to batch ended auctions and returns how many succeeded.
	SettleEnded(c ctx.Ctx, batch int) (int, error)
}
