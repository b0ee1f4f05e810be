package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	"github.com/x-xyz/goauction/stores/healthcheck/repository"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check pings every backend and returns the first failure alongside the full report.
func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	report := hcdomain.Report{Mongo: hcdomain.StatusOk, Redis: hcdomain.StatusOk}
	var firstErr error

	if err := im.repo.PingDB(context); err == repository.ErrDisabled {
		report.Mongo = hcdomain.StatusDisabled
	} else if err != nil {
		report.Mongo = hcdomain.StatusDown
		firstErr = err
	}

	if err := im.repo.PingRedis(context); err == repository.ErrDisabled {
		report.Redis = hcdomain.StatusDisabled
	} else if err != nil {
		report.Redis = hcdomain.StatusDown
		if firstErr == nil {
			firstErr = err
		}
	}
	return report, firstErr
}
