package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"dealdesk/internal/config"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/internal/infrastructure/airtable"
	"dealdesk/internal/infrastructure/locker"
	"dealdesk/internal/infrastructure/notifier"
	"dealdesk/internal/infrastructure/telegram"
	"dealdesk/internal/server"
	"dealdesk/internal/transport/bot"
	"dealdesk/internal/worker"
	"dealdesk/pkg/application/connectors"
	"dealdesk/pkg/application/modules"
	"dealdesk/pkg/contextx"
	"dealdesk/pkg/logx"
	"dealdesk/pkg/middlewarex"
)

const (
	appName    = "dealdesk"
	appVersion = "1.0.0"
)

const readHeaderTimeout = 10 * time.Second

func Run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	// Стор — единственный источник правды по селлерам, заказам и клеймам.
	storeClient := airtable.NewClient(cfg.Airtable)
	sellers := airtable.NewSellerStore(storeClient)
	orders := airtable.NewOrderStore(storeClient)
	offers := airtable.NewOfferStore(storeClient)
	inventory := airtable.NewInventoryStore(storeClient)

	tgBot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	poster := telegram.NewPoster(tgBot)

	webhook := notifier.NewWebhook(cfg.Notify.AutomationWebhookURL, cfg.Notify.RequestTimeout)
	notifyHandlers := worker.NewHandlers(webhook)

	var (
		guard  service.ClaimGuard
		notify service.Notifier
	)

	useRedis := cfg.Redis.Address != ""

	if useRedis {
		redisConnector := &connectors.Redis{
			Address:        cfg.Redis.Address,
			Username:       cfg.Redis.Username,
			Password:       cfg.Redis.Password,
			DatabaseNumber: cfg.Redis.DatabaseNumber,
		}
		defer redisConnector.Close(ctx)

		guard = locker.NewRedis(redisConnector.Client(ctx), cfg.Redis.ClaimLockTTL)

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		})
		defer asynqClient.Close()

		notify = worker.NewEnqueuer(asynqClient)
	} else {
		// Одиночный процесс без Redis: guard в памяти, уведомления синхронно.
		log.Warn("redis is not configured, running with in-process claim guard")

		guard = locker.NewMemory(cfg.Redis.ClaimLockTTL)
		notify = webhook
	}

	svc := service.NewDealService(
		sellers, orders, offers, inventory,
		poster, notify, guard, cfg.Bot.BroadcastChatIDs,
	)

	dealBot, err := bot.New(cfg, tgBot, svc)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.Logger(log),
		middlewarex.TraceID,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
	)

	server.NewServer(server.NewDealServer(svc)).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(gctx, g, httpServer)
	modules.ProbeServer{
		Name:          appName,
		Version:       appVersion,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(gctx, g)
	modules.MetricServer{ListenAddress: cfg.Server.MetricListenAddress}.Run(gctx, g)

	if useRedis {
		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(gctx, g,
			modules.AsynqQueues{"default": 10},
			modules.AsynqHandler{Pattern: worker.TypeNotifySeller, Handle: notifyHandlers.HandleNotifySeller},
			modules.AsynqHandler{Pattern: worker.TypeNotifyAutomation, Handle: notifyHandlers.HandleNotifyAutomation},
		)
	}

	g.Go(func() error {
		return dealBot.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
