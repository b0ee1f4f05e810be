package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type priceFeedMongoRepo struct {
	q query.Mongo
}

func NewPriceFeedRepo(q query.Mongo) domain.PriceFeedRepo {
	return &priceFeedMongoRepo{
		q: q,
	}
}

// EnsureIndexes creates the unique payment unit index.
func EnsureIndexes(ctx bCtx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(ctx, domain.TablePriceFeeds, query.Index{Keys: []string{"paymentUnit"}, Unique: true})
}

func (r *priceFeedMongoRepo) FindOne(ctx bCtx.Ctx, unit domain.Address) (*domain.PriceFeedBinding, error) {
	binding := &domain.PriceFeedBinding{}
	qry := bson.M{"paymentUnit": unit.ToLower()}
	if err := r.q.FindOne(ctx, domain.TablePriceFeeds, qry, binding); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{"err": err, "unit": unit}).Error("q.FindOne failed")
		return nil, err
	}
	return binding, nil
}

func (r *priceFeedMongoRepo) FindAll(ctx bCtx.Ctx) ([]*domain.PriceFeedBinding, error) {
	res := []*domain.PriceFeedBinding{}
	qry := bson.M{"paymentUnit": bson.M{"$exists": true}}
	if err := r.q.Search(ctx, domain.TablePriceFeeds, 0, 0, "paymentUnit", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *priceFeedMongoRepo) Upsert(ctx bCtx.Ctx, binding *domain.PriceFeedBinding) error {
	b := *binding
	b.PaymentUnit = b.PaymentUnit.ToLower()
	b.Oracle = b.Oracle.ToLower()
	selector := bson.M{"paymentUnit": b.PaymentUnit}
	if err := r.q.Upsert(ctx, domain.TablePriceFeeds, selector, &b); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"unit": b.PaymentUnit,
		}).Error("failed to upsert")
		return err
	}
	return nil
}
