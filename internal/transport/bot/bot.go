package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"dealdesk/internal/config"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/internal/transport/bot/handler"
	"dealdesk/pkg/contextx"
	"dealdesk/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

// Bot представляет собой Telegram-бота
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

// New создает новый экземпляр бота поверх уже открытого клиента API
func New(cfg config.Config, tgBot *telego.Bot, svc *service.Service) (*Bot, error) {
	// Получаем обновления через long polling
	updates, err := tgBot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	// Создаем BotHandler
	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot handler: %w", err)
	}

	promptHandler := handler.New(svc, handler.NewPromptStore(cfg.Bot.PromptTTL))

	allowedChats := cfg.Bot.AllowedChatIDs
	if len(allowedChats) == 0 {
		allowedChats = cfg.Bot.BroadcastChatIDs
	}

	promptHandler.RegisterRoutes(botHandler, allowedChats)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		handler:    promptHandler,
	}, nil
}

// Run запускает бота
func (b *Bot) Run(ctx context.Context) error {
	// Запускаем обработку обновлений
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("failed to start bot handler", logx.Error(err))
		}
	}()

	logger(ctx).Info("bot handler started")

	// Ждем завершения
	<-ctx.Done()

	// Останавливаем обработчик
	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("failed to stop bot handler", logx.Error(err))
	}

	return ctx.Err()
}
