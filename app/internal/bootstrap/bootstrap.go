// Package bootstrap builds the engine and its collaborators from viper config.
package bootstrap

import (
	"math/big"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	"github.com/x-xyz/goauction/service/chain"
	chainlinkService "github.com/x-xyz/goauction/service/chainlink"
	"github.com/x-xyz/goauction/service/lock"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	auctionRepository "github.com/x-xyz/goauction/stores/auction/repository"
	auctionUsecase "github.com/x-xyz/goauction/stores/auction/usecase"
	authzRepository "github.com/x-xyz/goauction/stores/authz/repository"
	authzUsecase "github.com/x-xyz/goauction/stores/authz/usecase"
	chainlinkUsecase "github.com/x-xyz/goauction/stores/chainlink/usecase"
	erc721Usecase "github.com/x-xyz/goauction/stores/erc721/usecase"
	eventRepository "github.com/x-xyz/goauction/stores/event/repository"
	eventUsecase "github.com/x-xyz/goauction/stores/event/usecase"
	ledgerRepository "github.com/x-xyz/goauction/stores/ledger/repository"
	paytokenRepository "github.com/x-xyz/goauction/stores/paytoken/repository"
)

const (
	DriverMemory    = "memory"
	DriverMongo     = "mongo"
	DriverRedis     = "redis"
	DriverLocal     = "local"
	DriverErc721    = "erc721"
	DriverChainlink = "chainlink"
	DriverStatic    = "static"

	dispatchWorkers = 4
)

// LoadConfig reads the yaml file named by --config (or defaultPath) with env overrides.
func LoadConfig(defaultPath string) error {
	path := pflag.String("config", defaultPath, "path of the yaml config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("store.driver", DriverMongo)
	viper.SetDefault("registry.driver", DriverErc721)
	viper.SetDefault("ledger.driver", DriverMongo)
	viper.SetDefault("lock.driver", DriverRedis)
	viper.SetDefault("oracle.driver", DriverChainlink)
	viper.SetDefault("engine.lockWait", auctionUsecase.DefaultLockWait)
	viper.SetDefault("engine.lockTtl", 30*time.Second)
	viper.SetDefault("authz.cacheTtl", 30*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

// App holds everything the binaries serve or schedule.
type App struct {
	Escrow     domain.Address
	Query      query.Mongo
	Redis      redis.Service
	Events     auction.EventRepo
	PriceFeeds domain.PriceFeedRepo
	Roles      domain.RoleGrantUsecase
	Registry   domain.AssetRegistry
	Ledger     ledgerRepository.Ledger
	Formatter  pricefomatter.PriceFormatter
	Dispatcher *eventUsecase.Dispatcher
	Auction    auction.Usecase
	Keeper     auction.KeeperUsecase

	// Minter is set only with the memory registry.
	Minter *erc721Usecase.MemoryRegistry
}

func (a *App) Close() {
	if a.Dispatcher != nil {
		a.Dispatcher.Close()
	}
}

// Sandbox reports whether the app runs without a chain.
func (a *App) Sandbox() bool {
	return a.Minter != nil
}

func initMongo(c ctx.Ctx) query.Mongo {
	c.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	return query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
}

func initRedis(c ctx.Ctx) redis.Service {
	c.Info("init redis")
	name := viper.GetString("redis.name")
	pool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
}

func ensureIndexes(c ctx.Ctx, q query.Mongo) error {
	for name, ensure := range map[string]func(ctx.Ctx, query.Mongo) error{
		"auctions":    auctionRepository.EnsureIndexes,
		"price_feeds": paytokenRepository.EnsureIndexes,
		"events":      eventRepository.EnsureIndexes,
		"role_grants": authzRepository.EnsureIndexes,
		"balances":    ledgerRepository.EnsureIndexes,
	} {
		if err := ensure(c, q); err != nil {
			c.WithFields(log.Fields{"err": err, "table": name}).Error("EnsureIndexes failed")
			return err
		}
	}
	return nil
}

func staticAnswers() (map[domain.Address]*big.Int, error) {
	answers := map[domain.Address]*big.Int{}
	for feed, raw := range viper.GetStringMapString("oracle.static.answers") {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, xerrors.Errorf("oracle.static.answers.%s: invalid answer %q", feed, raw)
		}
		answers[domain.Address(feed)] = v
	}
	return answers, nil
}

// Build connects the configured drivers and wires the engine.
func Build(c ctx.Ctx) (*App, error) {
	app := &App{}
	clk := clock.NewSystem()
	storeDriver := viper.GetString("store.driver")

	var q query.Mongo
	if storeDriver == DriverMongo || viper.GetString("ledger.driver") == DriverMongo {
		q = initMongo(c)
		if err := ensureIndexes(c, q); err != nil {
			return nil, err
		}
	}
	app.Query = q

	if viper.GetString("lock.driver") == DriverRedis {
		app.Redis = initRedis(c)
	}

	var (
		auctionRepo  auction.Repo
		settingsRepo auction.SettingsRepo
		roleRepo     domain.RoleGrantRepo
	)
	switch storeDriver {
	case DriverMongo:
		auctionRepo = auctionRepository.New(q)
		settingsRepo = auctionRepository.NewSettings(q)
		app.PriceFeeds = paytokenRepository.NewPriceFeedRepo(q)
		app.Events = eventRepository.New(q)
		roleRepo = authzRepository.New(q)
	case DriverMemory:
		auctionRepo = auctionRepository.NewMemory()
		settingsRepo = auctionRepository.NewSettingsMemory()
		app.PriceFeeds = paytokenRepository.NewPriceFeedMemoryRepo()
		app.Events = eventRepository.NewMemory()
		roleRepo = authzRepository.NewMemory()
	default:
		return nil, xerrors.Errorf("unknown store.driver %q", storeDriver)
	}

	var chainClient chain.Client
	if viper.GetString("registry.driver") == DriverErc721 || viper.GetString("oracle.driver") == DriverChainlink {
		var err error
		chainClient, err = chain.NewClient(c, &chain.ClientCfg{
			ChainId:    viper.GetInt64("network.chainId"),
			RpcUrl:     viper.GetString("network.rpcUrl"),
			PrivateKey: viper.GetString("engine.privateKey"),
		})
		if err != nil {
			c.WithField("err", err).Error("chain.NewClient failed")
			return nil, err
		}
	}

	switch driver := viper.GetString("registry.driver"); driver {
	case DriverErc721:
		app.Registry = erc721Usecase.NewErc721Registry(chainClient)
		// the hot wallet signs custody transfers so it is the escrow
		app.Escrow = domain.AddressFromCommon(chainClient.From())
	case DriverMemory:
		app.Escrow = domain.Address(viper.GetString("engine.escrowAddress")).ToLower()
		app.Minter = erc721Usecase.NewMemoryRegistry(app.Escrow)
		app.Registry = app.Minter
	default:
		return nil, xerrors.Errorf("unknown registry.driver %q", driver)
	}
	if app.Escrow.IsEmpty() {
		return nil, xerrors.Errorf("escrow address: %w", domain.ErrInvalidAddress)
	}

	switch driver := viper.GetString("ledger.driver"); driver {
	case DriverMongo:
		app.Ledger = ledgerRepository.NewMongo(q, app.Escrow)
	case DriverMemory:
		app.Ledger = ledgerRepository.NewMemory(app.Escrow)
	default:
		return nil, xerrors.Errorf("unknown ledger.driver %q", driver)
	}

	var locker lock.Locker
	switch driver := viper.GetString("lock.driver"); driver {
	case DriverRedis:
		ttl := viper.GetDuration("engine.lockTtl")
		if ttl <= 0 {
			return nil, xerrors.Errorf("engine.lockTtl must be positive, got %s", ttl)
		}
		locker = lock.NewRedis(app.Redis, ttl)
	case DriverLocal:
		locker = lock.NewLocal()
	default:
		return nil, xerrors.Errorf("unknown lock.driver %q", driver)
	}

	var oracle domain.PriceOracle
	switch driver := viper.GetString("oracle.driver"); driver {
	case DriverChainlink:
		oracle = chainlinkService.New(chainClient)
	case DriverStatic:
		answers, err := staticAnswers()
		if err != nil {
			return nil, err
		}
		oracle = chainlinkService.NewStatic(clk, uint8(viper.GetUint("oracle.static.decimals")), answers)
	default:
		return nil, xerrors.Errorf("unknown oracle.driver %q", driver)
	}

	app.Roles = authzUsecase.New(&authzUsecase.GateUseCaseCfg{
		Admins: viper.GetStringSlice("admin.addresses"),
		Repo:   roleRepo,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("authz.cacheTtl"),
			Pfx:   "authz",
			Cache: primitive.NewPrimitive("authz", 8),
		}),
		Clock: clk,
	})

	app.Formatter = pricefomatter.NewPriceFormatter(app.PriceFeeds)

	handlers := []eventUsecase.Handler{
		eventUsecase.NewLogHandler(),
		eventUsecase.NewHistoryHandler(app.Events),
	}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		discord, err := eventUsecase.NewDiscordHandler(eventUsecase.DiscordConfig{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
			Formatter: app.Formatter,
		})
		if err != nil {
			c.WithField("err", err).Error("NewDiscordHandler failed")
			return nil, err
		}
		handlers = append(handlers, discord)
	}
	app.Dispatcher = eventUsecase.NewDispatcher(dispatchWorkers, handlers...)

	app.Auction = auctionUsecase.New(&auctionUsecase.AuctionUseCaseCfg{
		Escrow:        app.Escrow,
		LockWait:      viper.GetDuration("engine.lockWait"),
		AuctionRepo:   auctionRepo,
		SettingsRepo:  settingsRepo,
		PriceFeedRepo: app.PriceFeeds,
		Normalizer:    chainlinkUsecase.New(oracle, app.PriceFeeds, clk),
		Registry:      app.Registry,
		Ledger:        app.Ledger,
		Gate:          app.Roles,
		Locker:        locker,
		Events:        app.Dispatcher,
		Clock:         clk,
	})
	app.Keeper = auctionUsecase.NewKeeper(auctionRepo, app.Auction, clk)

	c.WithFields(log.Fields{
		"escrow":  app.Escrow,
		"store":   storeDriver,
		"sandbox": app.Sandbox(),
	}).Info("engine ready")
	return app, nil
}
