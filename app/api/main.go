package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/app/internal/bootstrap"
	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	bValidator "github.com/x-xyz/goauction/base/validator"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auth_delivery "github.com/x-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/goauction/stores/auth/usecase"
	authz_delivery "github.com/x-xyz/goauction/stores/authz/delivery/http"
	event_delivery "github.com/x-xyz/goauction/stores/event/delivery/http"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
)

func init() {
	if err := bootstrap.LoadConfig(`infra/configs/config.yaml`); err != nil {
		panic(err)
	}
}

func main() {
	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	app, err := bootstrap.Build(context)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.Build failed")
	}
	defer app.Close()

	// construct repository, usecase and delivery
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), clock.NewSystem())
	authMiddleware := auth_middleware.New(auth, app.Roles)

	hc_delivery.New(e, hc_usecase.New(hc_repo.New(app.Query, app.Redis)))
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	authz_delivery.New(e, app.Roles, authMiddleware)
	auction_delivery.New(e, app.Auction, app.Formatter, authMiddleware)
	event_delivery.New(e, app.Events)
	if app.Sandbox() {
		auction_delivery.NewSandbox(e, app.Minter, app.Ledger, app.Ledger, app.Escrow)
	}

	if viper.GetBool("keeper.embedded") {
		runKeeper(context, app)
	}

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
	shutdownCtx, shutdownCancel := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// runKeeper settles ended auctions in process, for single instance sandbox deployments.
func runKeeper(c ctx.Ctx, app *bootstrap.App) {
	interval := viper.GetDuration("keeper.interval")
	batch := viper.GetInt("keeper.batch")
	goroutine.RecoverableGo(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				return
			case <-ticker.C:
				if _, err := app.Keeper.SettleEnded(c, batch); err != nil {
					c.WithField("err", err).Error("keeper.SettleEnded failed")
				}
			}
		}
	}, goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
		c.WithFields(log.Fields{"panic": p, "stack": string(stack)}).Error("keeper panicked")
	}))
}
