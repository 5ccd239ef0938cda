package handler

import (
	"fmt"
	"strconv"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	service "dealdesk/internal/domain/service/deal"
	"dealdesk/internal/transport/bot/view"
)

func (h *Handler) OnClaimCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.sendPrompt(ctx, query, promptClaim, view.ClaimPromptText)
}

func (h *Handler) OnOfferCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.sendPrompt(ctx, query, promptOffer, view.OfferPromptText)
}

// OnClosedCallback — кнопка погашенной карточки, просто отвечаем алертом.
func (h *Handler) OnClosedCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
		WithText("This deal is closed.").WithShowAlert())
}

// sendPrompt отправляет force-reply приглашение и запоминает контекст
// карточки до ответа пользователя.
func (h *Handler) sendPrompt(
	ctx *th.Context,
	query telego.CallbackQuery,
	kind promptKind,
	text string,
) error {
	// Telegram отдаёт только свежие сообщения целиком: без текста карточки
	// восстановить сделку нечем.
	msg, ok := query.Message.(*telego.Message)
	if !ok {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText("This card is too old to interact with.").WithShowAlert())
	}

	cardText := msg.Text
	if cardText == "" {
		cardText = msg.Caption
	}

	chatID := msg.Chat.ID

	prompt, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:          tu.ID(chatID),
		Text:            text,
		ReplyParameters: &telego.ReplyParameters{MessageID: msg.MessageID},
		ReplyMarkup:     &telego.ForceReply{ForceReply: true, Selective: true},
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	h.prompts.Put(chatID, prompt.MessageID, pendingPrompt{
		Kind: kind,
		Card: service.CardContext{
			ChatID:    chatID,
			MessageID: strconv.Itoa(msg.MessageID),
			CardText:  cardText,
		},
	})

	// Убираем часики на кнопке.
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
