package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	service "dealdesk/internal/domain/service/deal"
	"dealdesk/internal/transport/bot/view"
)

// OnPromptReply ловит ответы на force-reply приглашения. Любое другое
// сообщение молча пропускается.
func (h *Handler) OnPromptReply(ctx *th.Context, message telego.Message) error {
	if message.ReplyToMessage == nil {
		return nil
	}

	prompt, ok := h.prompts.Pop(message.Chat.ID, message.ReplyToMessage.MessageID)
	if !ok {
		// Ответ на наше приглашение, которое уже протухло или погашено.
		if isPromptText(message.ReplyToMessage.Text) {
			return h.reply(ctx, message, view.ExpiredPromptText)
		}

		return nil
	}

	switch prompt.Kind {
	case promptClaim:
		return h.handleClaimReply(ctx, message, prompt)
	case promptOffer:
		return h.handleOfferReply(ctx, message, prompt)
	}

	return nil
}

func (h *Handler) handleClaimReply(ctx *th.Context, message telego.Message, prompt pendingPrompt) error {
	result, err := h.svc.RequestClaim(ctx, service.ClaimRequest{
		SellerCode: strings.TrimSpace(message.Text),
		Card:       prompt.Card,
	})
	if err != nil {
		logger(ctx).Info("claim rejected", "chat", message.Chat.ID, "error", err)
		return h.reply(ctx, message, view.ErrorText(err))
	}

	return h.reply(ctx, message, view.ClaimSuccessText(result))
}

func (h *Handler) handleOfferReply(ctx *th.Context, message telego.Message, prompt pendingPrompt) error {
	fields := strings.Fields(message.Text)
	if len(fields) != 2 {
		return h.reply(ctx, message, view.OfferUsageText)
	}

	result, err := h.svc.RequestOffer(ctx, service.OfferRequest{
		SellerCode: fields[0],
		Amount:     fields[1],
		Card:       prompt.Card,
	})
	if err != nil {
		logger(ctx).Info("offer rejected", "chat", message.Chat.ID, "error", err)
		return h.reply(ctx, message, view.ErrorText(err))
	}

	if !result.Accepted {
		return h.reply(ctx, message, view.OfferRejectedText(result))
	}

	return h.reply(ctx, message, view.OfferAcceptedText(result))
}

func (h *Handler) reply(ctx *th.Context, to telego.Message, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:          tu.ID(to.Chat.ID),
		Text:            text,
		ReplyParameters: &telego.ReplyParameters{MessageID: to.MessageID},
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func isPromptText(text string) bool {
	return text == view.ClaimPromptText || text == view.OfferPromptText
}
