package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/mocks"
)

const admin = "0x00000000000000000000000000000000000000d1"

type testsuite struct {
	suite.Suite
	e    *echo.Echo
	auth *mocks.AuthUsecase
	gate *mocks.AuthorizationGate
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.auth = &mocks.AuthUsecase{}
	t.gate = &mocks.AuthorizationGate{}
	m := New(t.auth, t.gate)

	t.e = echo.New()
	t.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	t.e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, string(c.Get("address").(domain.Address)))
	}, m.Auth())
	t.e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.Auth(), m.Require(domain.CapabilityAdmin))
}

func (t *testsuite) TearDownTest() {
	t.auth.AssertExpectations(t.T())
	t.gate.AssertExpectations(t.T())
}

func (t *testsuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	t.e.ServeHTTP(rec, req)
	return rec
}

func (t *testsuite) TestAuth() {
	t.auth.On("ParseToken", mock.Anything, "good").Return(admin, nil).Once()
	t.auth.On("ParseToken", mock.Anything, "bad").Return("", errors.New("expired")).Once()

	rec := t.get("/me", "good")
	t.Equal(http.StatusOK, rec.Code)
	t.Equal(admin, rec.Body.String())

	t.Equal(http.StatusUnauthorized, t.get("/me", "bad").Code)
	t.Equal(http.StatusBadRequest, t.get("/me", "").Code)
}

func (t *testsuite) TestRequire() {
	t.auth.On("ParseToken", mock.Anything, "good").Return(admin, nil).Twice()
	t.gate.On("HasCapability", mock.Anything, domain.Address(admin), domain.CapabilityAdmin).Return(true, nil).Once()
	t.gate.On("HasCapability", mock.Anything, domain.Address(admin), domain.CapabilityAdmin).Return(false, nil).Once()

	t.Equal(http.StatusOK, t.get("/admin", "good").Code)
	t.Equal(http.StatusForbidden, t.get("/admin", "good").Code)
}
