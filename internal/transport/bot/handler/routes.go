package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"dealdesk/internal/infrastructure/telegram"
	"dealdesk/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats []int64) {
	// Бот работает только в своих чатах, всё остальное отсекается до хендлеров.
	group := bh.Group()
	group.Use(middleware.AllowedChats(allowedChats))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnHelp, th.CommandEqual("help"))

	group.HandleCallbackQuery(h.OnClaimCallback, th.CallbackDataEqual(telegram.CallbackClaim))
	group.HandleCallbackQuery(h.OnOfferCallback, th.CallbackDataEqual(telegram.CallbackOffer))
	group.HandleCallbackQuery(h.OnClosedCallback, th.CallbackDataEqual(telegram.CallbackClosed))

	// Ответы на force-reply приглашения. Регистрируется после команд, чтобы
	// команды не утекали в разбор ответов.
	group.HandleMessage(h.OnPromptReply, th.AnyMessage())
}
