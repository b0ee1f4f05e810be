package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
)

// GoMiddleware holds the request-scoped middlewares shared by every route.
type GoMiddleware struct{}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS allows any origin. Writes are guarded by bearer tokens, not cookies.
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		if c.Request().Method == http.MethodOptions {
			c.Response().Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
			return c.NoContent(http.StatusNoContent)
		}
		return next(c)
	}
}

// AddContext stores a ctx.Ctx under "ctx", bound to the request lifetime and tagged with the request id.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			base := ctx.From(ctx.Background(), c.Request().Context())
			cont := ctx.WithValue(base, "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger writes one access log line per request, at warn level for
// 4xx and error level for 5xx, and times it under http.request.time.
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			met.BumpHistogram("request.time", float64(time.Since(start).Milliseconds()),
				"method", req.Method, "path", c.Path(), "status", strconv.Itoa(res.Status/100)+"xx")

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}
			if caller, ok := c.Get("address").(domain.Address); ok {
				fields["caller"] = caller
			}

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger = logger.WithFields(fields)
			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.WithField("nextErr", err).Error("response")
			case res.Status >= http.StatusBadRequest:
				logger.WithField("nextErr", err).Warn("response")
			default:
				logger.Info("response")
			}
			return nil
		}
	}
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
			}
			return next(c)
		}
	}
}
