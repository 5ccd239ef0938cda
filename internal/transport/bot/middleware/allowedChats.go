package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"
)

func AllowedChats(chatIDs []int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		var chatID int64

		switch {
		case update.Message != nil:
			chatID = update.Message.Chat.ID
		case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
			chatID = update.CallbackQuery.Message.GetChat().ID
		default:
			return nil
		}

		// ПРОВЕРКА
		if lo.Contains(chatIDs, chatID) {
			return ctx.Next(update)
		}

		return nil
	}
}
