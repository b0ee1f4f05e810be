package healthcheck

import (
	"github.com/x-xyz/goauction/base/ctx"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"
)

type Report struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

func (r Report) Healthy() bool {
	return r.Mongo != StatusDown && r.Redis != StatusDown
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingDB and PingRedis return repository.ErrDisabled for a backend the deployment runs without.
	PingDB(context ctx.Ctx) error
	PingRedis(context ctx.Ctx) error
}
