package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache/provider"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetDel() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "0xabc:ADMIN"
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		ok := true
		return &ok, nil
	}

	var got bool
	ts.NoError(ts.im.GetByFunc(mockCtx, k, &got, getter))
	ts.True(got)
	ts.Equal(1, calls)

	got = false
	ts.NoError(ts.im.GetByFunc(mockCtx, k, &got, getter))
	ts.True(got)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errFetch := errors.New("fetch failed")
	var got bool
	err := ts.im.GetByFunc(mockCtx, "k", &got, func() (interface{}, error) {
		return nil, errFetch
	})
	ts.Equal(errFetch, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", &got))
}

func (ts *testsuite) TestGetByFuncNilGetter() {
	var got bool
	ts.Equal(ErrNilGetter, ts.im.GetByFunc(mockCtx, "k", &got, nil))
}
