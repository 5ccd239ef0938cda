package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"dealdesk/internal/domain"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/errcodes"
)

// Callback data кнопок карточки. Хэндлеры транспорта матчатся по этим же
// константам, поэтому они экспортированы отсюда, от владельца клавиатуры.
const (
	CallbackClaim  = "deal_claim"
	CallbackOffer  = "deal_offer"
	CallbackClosed = "deal_closed"
)

type botAPI interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error)
	EditMessageReplyMarkup(ctx context.Context, params *telego.EditMessageReplyMarkupParams) (*telego.Message, error)
}

// Poster публикует и гасит карточки сделок в чатах.
type Poster struct {
	bot botAPI
}

func NewPoster(bot botAPI) *Poster {
	return &Poster{bot: bot}
}

func (p *Poster) PostCard(ctx context.Context, chatID int64, card service.Card) (string, error) {
	var (
		msg *telego.Message
		err error
	)

	// Карточка с картинкой уходит фото с подписью, без — обычным текстом.
	if card.ImageURL != "" {
		msg, err = p.bot.SendPhoto(ctx, &telego.SendPhotoParams{
			ChatID:      tu.ID(chatID),
			Photo:       telego.InputFile{URL: card.ImageURL},
			Caption:     card.Text,
			ReplyMarkup: CardKeyboard(),
		})
	} else {
		msg, err = p.bot.SendMessage(ctx, &telego.SendMessageParams{
			ChatID:      tu.ID(chatID),
			Text:        card.Text,
			ReplyMarkup: CardKeyboard(),
		})
	}

	if err != nil {
		return "", fmt.Errorf("bot send card: %w", err)
	}

	return strconv.Itoa(msg.MessageID), nil
}

func (p *Poster) DisableCard(ctx context.Context, chatID int64, messageID string) error {
	id, err := strconv.Atoi(messageID)
	if err != nil {
		return domain.NewError(errcodes.ValidationError,
			fmt.Sprintf("malformed message id %q", messageID))
	}

	_, err = p.bot.EditMessageReplyMarkup(ctx, &telego.EditMessageReplyMarkupParams{
		ChatID:      tu.ID(chatID),
		MessageID:   id,
		ReplyMarkup: ClosedKeyboard(),
	})
	if err != nil {
		return fmt.Errorf("bot.EditMessageReplyMarkup: %w", err)
	}

	return nil
}

// CardKeyboard — кнопки живой карточки.
func CardKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ Claim Deal").WithCallbackData(CallbackClaim),
			tu.InlineKeyboardButton("💶 Make Offer").WithCallbackData(CallbackOffer),
		),
	)
}

// ClosedKeyboard заменяет кнопки после клейма или ручного гашения: карточка
// остаётся видимой, но взаимодействие закрыто.
func ClosedKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🚫 Closed").WithCallbackData(CallbackClosed),
		),
	)
}
