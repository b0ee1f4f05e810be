package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		context.WithField("err", err).Warn("healthCheck.Check failed")
		return c.JSON(http.StatusServiceUnavailable, delivery.JsonResponse{Data: report, Status: delivery.JsonResponseStatusFail})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
