package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/auction/mocks"
)

type testsuite struct {
	suite.Suite
	e    *echo.Echo
	repo *mocks.EventRepo
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mocks.EventRepo{}
	t.e = echo.New()
	t.e.Validator = validator.NewCustomValidator(validator.New())
	t.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(t.e, t.repo)
}

func (t *testsuite) TearDownTest() {
	t.repo.AssertExpectations(t.T())
}

func (t *testsuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	t.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (t *testsuite) TestList() {
	t.repo.On("FindByAuction", mock.Anything, uint64(4), 10, 5).
		Return([]*auction.Event{{Id: "e1", Type: auction.EventBidPlaced, AuctionId: 4}}, nil).Once()

	rec := t.get("/auctions/4/events?offset=10&limit=5")
	t.Equal(http.StatusOK, rec.Code)
	t.Contains(rec.Body.String(), `"type":"BidPlaced"`)
}

func (t *testsuite) TestBadParams() {
	t.Equal(http.StatusBadRequest, t.get("/auctions/x/events").Code)
	t.Equal(http.StatusBadRequest, t.get("/auctions/4/events?limit=500").Code)
}
