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
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
)

const restartDelay = 5 * time.Second

func init() {
	if err := bootstrap.LoadConfig(`infra/configs/keeper/config.yaml`); err != nil {
		panic(err)
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()

	app, err := bootstrap.Build(ctx)
	if err != nil {
		ctx.WithField("err", err).Panic("bootstrap.Build failed")
	}
	defer app.Close()
	if app.Sandbox() {
		ctx.Panic("keeper needs shared drivers, memory registry is per process")
	}

	// start server to pass cloud run health check
	startEchoServer(app)

	interval := viper.GetDuration("keeper.interval")
	batch := viper.GetInt("keeper.batch")
	go func() {
		for ctx.Err() == nil {
			panicChan := goroutine.RecoverableGo(func() {
				loop(ctx, app, interval, batch)
			})
			if p := <-panicChan; p != nil {
				ctx.WithField("panic", p).Error("keeper loop panicked, restarting")
				time.Sleep(restartDelay)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
}

func loop(ctx bCtx.Ctx, app *bootstrap.App, interval time.Duration, batch int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.Keeper.SettleEnded(ctx, batch)
			if err != nil {
				ctx.WithField("err", err).Error("keeper.SettleEnded failed")
				continue
			}
			if n > 0 {
				ctx.WithField("settled", n).Info("settled ended auctions")
			}
		}
	}
}

func startEchoServer(app *bootstrap.App) {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	hc_delivery.New(e, hc_usecase.New(hc_repo.New(app.Query, app.Redis)))

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}
