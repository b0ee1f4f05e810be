package repository

import (
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

const defaultLimit = 100

// auctionDoc is the stored form of auction.Auction, big integers kept as base-10 strings.
type auctionDoc struct {
	Id                 uint64          `bson:"auctionId"`
	Seller             domain.Address  `bson:"seller"`
	Asset              domain.AssetRef `bson:"asset"`
	EndTime            time.Time       `bson:"endTime"`
	PaymentUnit        domain.Address  `bson:"paymentUnit"`
	HighestBidAmount   string          `bson:"highestBidAmount"`
	HighestBidUsdValue string          `bson:"highestBidUsdValue"`
	HighestBidder      domain.Address  `bson:"highestBidder"`
	Settled            bool            `bson:"settled"`
	CreatedAt          time.Time       `bson:"createdAt"`
	SettledAt          *time.Time      `bson:"settledAt,omitempty"`
}

type counterDoc struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

func amountStr(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toDoc(a *auction.Auction) *auctionDoc {
	return &auctionDoc{
		Id:                 a.Id,
		Seller:             a.Seller.ToLower(),
		Asset:              domain.AssetRef{Contract: a.Asset.Contract.ToLower(), TokenId: a.Asset.TokenId},
		EndTime:            a.EndTime,
		PaymentUnit:        a.PaymentUnit.ToLower(),
		HighestBidAmount:   amountStr(a.HighestBidAmount),
		HighestBidUsdValue: amountStr(a.HighestBidUsdValue),
		HighestBidder:      a.HighestBidder.ToLower(),
		Settled:            a.Settled,
		CreatedAt:          a.CreatedAt,
		SettledAt:          a.SettledAt,
	}
}

func (d *auctionDoc) toAuction() (*auction.Auction, error) {
	amount, err := domain.ParseAmount(d.HighestBidAmount)
	if err != nil {
		return nil, xerrors.Errorf("auction %d highestBidAmount: %w", d.Id, err)
	}
	usd, err := domain.ParseAmount(d.HighestBidUsdValue)
	if err != nil {
		return nil, xerrors.Errorf("auction %d highestBidUsdValue: %w", d.Id, err)
	}
	return &auction.Auction{
		Id:                 d.Id,
		Seller:             d.Seller,
		Asset:              d.Asset,
		EndTime:            d.EndTime.UTC(),
		PaymentUnit:        d.PaymentUnit,
		HighestBidAmount:   amount,
		HighestBidUsdValue: usd,
		HighestBidder:      d.HighestBidder,
		Settled:            d.Settled,
		CreatedAt:          d.CreatedAt.UTC(),
		SettledAt:          d.SettledAt,
	}, nil
}

func toFilter(filter auction.Filter) (bson.M, error) {
	if filter.Seller != nil {
		seller := filter.Seller.ToLower()
		filter.Seller = &seller
	}
	if filter.PaymentUnit != nil {
		unit := filter.PaymentUnit.ToLower()
		filter.PaymentUnit = &unit
	}
	qry, err := mongoclient.MakeBsonM(filter)
	if err != nil {
		return nil, err
	}
	if filter.EndedBefore != nil {
		qry["endTime"] = bson.M{"$lte": *filter.EndedBefore}
	}
	if len(qry) == 0 {
		// to prevent scancol error
		qry["auctionId"] = bson.M{"$gte": auction.FirstId}
	}
	return qry, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &impl{q}
}

// EnsureIndexes creates the indexes the auction queries rely on.
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableAuctions,
		query.Index{Keys: []string{"auctionId"}, Unique: true},
		query.Index{Keys: []string{"seller", "auctionId"}},
		query.Index{Keys: []string{"paymentUnit", "auctionId"}},
		query.Index{Keys: []string{"settled", "endTime"}},
	); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableCounters, query.Index{Keys: []string{"name"}, Unique: true})
}

func (im *impl) NextId(c ctx.Ctx) (uint64, error) {
	counter := &counterDoc{}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"name": auction.CounterName}, counter, "seq", 1); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return counter.Seq, nil
}

func (im *impl) Insert(c ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, toDoc(a)); err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": a.Id}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id uint64) (*auction.Auction, error) {
	doc := &auctionDoc{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"auctionId": id}, doc); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("q.FindOne failed")
		return nil, err
	}
	return doc.toAuction()
}

func (im *impl) FindAll(c ctx.Ctx, filter auction.Filter) ([]*auction.Auction, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	qry, err := toFilter(filter)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "filter": filter}).Error("toFilter failed")
		return nil, err
	}

	docs := []*auctionDoc{}
	if err := im.q.Search(c, domain.TableAuctions, filter.Offset, limit, "auctionId", qry, &docs); err != nil {
		c.WithFields(log.Fields{"err": err, "filter": filter}).Error("q.Search failed")
		return nil, err
	}

	res := make([]*auction.Auction, 0, len(docs))
	for _, d := range docs {
		a, err := d.toAuction()
		if err != nil {
			c.WithField("err", err).Error("toAuction failed")
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (im *impl) UpdateBid(c ctx.Ctx, id uint64, bid auction.Bid) error {
	update := bson.M{
		"highestBidder":      bid.Bidder.ToLower(),
		"highestBidAmount":   amountStr(bid.Amount),
		"highestBidUsdValue": amountStr(bid.UsdValue),
	}
	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"auctionId": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) MarkSettled(c ctx.Ctx, id uint64, settled bool, at *time.Time) error {
	update := bson.M{"settled": settled, "settledAt": at}
	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"auctionId": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("q.Patch failed")
		return err
	}
	return nil
}
