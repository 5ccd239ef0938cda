package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/lox"
)

const fanOutConcurrency = 4

type SellerStore interface {
	// FindByCode возвращает nil, nil если селлера с таким кодом нет.
	FindByCode(ctx context.Context, canonicalCode string) (*entity.Seller, error)
}

type OrderStore interface {
	GetByID(ctx context.Context, recordID string) (*entity.Order, error)
	// FindByMessageID возвращает кандидатов по префильтру стора; точное
	// членство messageID в наборе проверяет вызывающий.
	FindByMessageID(ctx context.Context, messageID string) ([]entity.Order, error)
	SetMessageIDs(ctx context.Context, recordID string, messageIDs []string) error
	SetButtonsDisabled(ctx context.Context, recordID string, disabled bool) error
}

type OfferStore interface {
	ListByOrder(ctx context.Context, orderRecordID string) ([]entity.Offer, error)
	Create(ctx context.Context, offer *entity.Offer) error
}

type InventoryStore interface {
	// FindByOrder возвращает nil, nil если клейма по заказу ещё нет.
	FindByOrder(ctx context.Context, orderRecordID string) (*entity.Claim, error)
	Create(ctx context.Context, claim *entity.Claim) (recordID string, err error)
}

// Card — то, что уходит в чат: текст плюс опциональная картинка.
type Card struct {
	Text     string
	ImageURL string
}

type CardGateway interface {
	PostCard(ctx context.Context, chatID int64, card Card) (messageID string, err error)
	// DisableCard гасит кнопки на опубликованной копии, сама карточка
	// остаётся видимой.
	DisableCard(ctx context.Context, chatID int64, messageID string) error
}

type Notifier interface {
	NotifySeller(ctx context.Context, seller entity.Seller, claim entity.Claim) error
	NotifyAutomation(ctx context.Context, claim entity.Claim) error
}

// ClaimGuard — взаимное исключение по ключу заказа между конкурентными
// клеймами. Acquire отвечает false, если маркер уже удерживается.
type ClaimGuard interface {
	Acquire(ctx context.Context, orderRecordID string) (bool, error)
	Release(ctx context.Context, orderRecordID string)
}

type Service struct {
	sellers        SellerStore
	orders         OrderStore
	offers         OfferStore
	inventory      InventoryStore
	cards          CardGateway
	notifier       Notifier
	guard          ClaimGuard
	broadcastChats []int64
	now            func() time.Time
}

func NewDealService(
	sellers SellerStore,
	orders OrderStore,
	offers OfferStore,
	inventory InventoryStore,
	cards CardGateway,
	notifier Notifier,
	guard ClaimGuard,
	broadcastChats []int64,
) *Service {
	return &Service{
		sellers:        sellers,
		orders:         orders,
		offers:         offers,
		inventory:      inventory,
		cards:          cards,
		notifier:       notifier,
		guard:          guard,
		broadcastChats: broadcastChats,
		now:            time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CardContext — откуда пришло взаимодействие: чат, сообщение карточки и её текст.
type CardContext struct {
	ChatID    int64
	MessageID string
	CardText  string
}

type ClaimRequest struct {
	SellerCode string
	Card       CardContext
}

type ClaimResult struct {
	Seller entity.Seller
	Claim  entity.Claim
}

type OfferRequest struct {
	SellerCode string
	Amount     string
	Card       CardContext
}

// OfferResult — исход запроса предложения. Отказ арбитража — это не ошибка,
// а вердикт с заполненными Floor/MaxAllowed.
type OfferResult struct {
	Accepted bool
	Amount   float64
	Verdict  Arbitration
	Seller   entity.Seller
}

type PostedCard struct {
	ChatID    int64
	MessageID string
}

// Publish рендерит карточку и рассылает её по всем настроенным чатам.
// Частичный успех допустим, полный провал — ошибка. Если сделка привязана к
// заказу, заказ переводится в свежее состояние (Reset) с новым набором копий.
func (s *Service) Publish(ctx context.Context, deal entity.Deal) ([]PostedCard, error) {
	if len(s.broadcastChats) == 0 {
		return nil, domain.NewError(errcodes.NoBroadcastTarget, "no broadcast chats configured")
	}

	card := Card{
		Text:     RenderCard(deal),
		ImageURL: deal.ImageURL,
	}

	var posted []PostedCard

	for _, chatID := range s.broadcastChats {
		messageID, err := s.cards.PostCard(ctx, chatID, card)
		if err != nil {
			logger(ctx).Error("failed to post card", "chat_id", chatID, "error", err)
			continue
		}

		posted = append(posted, PostedCard{ChatID: chatID, MessageID: messageID})
	}

	if len(posted) == 0 {
		return nil, domain.NewError(errcodes.NoBroadcastTarget, "card was not posted to any chat")
	}

	metricCardsPublished.Add(float64(len(posted)))

	if deal.OrderRecordID != "" {
		messageIDs := lox.Map(posted, func(p PostedCard) string { return p.MessageID })

		// Карточки уже опубликованы, откатывать нечего: провал Reset
		// логируем и живём дальше.
		if err := s.Reset(ctx, deal.OrderRecordID, messageIDs); err != nil {
			logger(ctx).Error("failed to reset order after publish",
				"record_id", deal.OrderRecordID, "error", err)
		}
	}

	return posted, nil
}

// RequestClaim — клейм через кнопку на карточке. Поля сделки восстанавливаются
// из текста карточки, заказ — по идентификатору сообщения.
func (s *Service) RequestClaim(ctx context.Context, req ClaimRequest) (*ClaimResult, error) {
	seller, err := s.ResolveSeller(ctx, req.SellerCode)
	if err != nil {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, err
	}

	order, err := s.ResolveOrderByMessage(ctx, req.Card.MessageID)
	if err != nil {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, err
	}

	deal := ParseCard(req.Card.CardText)
	deal.OrderRecordID = order.RecordID

	return s.claimOrder(ctx, *seller, *order, deal)
}

// ClaimByOrder — клейм от внешней автоматизации: карточки под рукой нет,
// поля сделки берутся из самой записи заказа.
func (s *Service) ClaimByOrder(ctx context.Context, orderRecordID, sellerCode string) (*ClaimResult, error) {
	seller, err := s.ResolveSeller(ctx, sellerCode)
	if err != nil {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderRecordID)
	if err != nil {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("orders.GetByID: %w", err)
	}

	deal := entity.Deal{
		ProductName:   order.ProductName,
		SKU:           order.SKU,
		Size:          order.Size,
		Brand:         order.Brand,
		StartPayout:   order.StartPayout,
		DealID:        order.DealID,
		OrderRecordID: order.RecordID,
	}

	return s.claimOrder(ctx, *seller, *order, deal)
}

// claimOrder — общий хвост обоих путей клейма: guard → проверка дубликата →
// запись в inventory → гашение копий → уведомления. Уведомления и гашение
// best-effort: однажды записанный клейм назад не откатывается.
func (s *Service) claimOrder(
	ctx context.Context,
	seller entity.Seller,
	order entity.Order,
	deal entity.Deal,
) (*ClaimResult, error) {
	acquired, err := s.guard.Acquire(ctx, order.RecordID)
	if err != nil {
		metricClaims.WithLabelValues("failed").Inc()
		return nil, domain.WrapError(err, errcodes.InternalServerError, "claim guard unavailable")
	}

	if !acquired {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, domain.NewError(errcodes.ClaimInProgress, "another claim for this deal is in progress")
	}

	defer s.guard.Release(ctx, order.RecordID)

	existing, err := s.inventory.FindByOrder(ctx, order.RecordID)
	if err != nil {
		metricClaims.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("inventory.FindByOrder: %w", err)
	}

	if existing != nil {
		metricClaims.WithLabelValues("rejected").Inc()
		return nil, domain.NewError(errcodes.DealAlreadyClaimed, "this deal has already been claimed")
	}

	claim := entity.Claim{
		ProductName:    deal.ProductName,
		SKU:            deal.SKU,
		Size:           deal.Size,
		Brand:          deal.Brand,
		DealID:         deal.DealID,
		PurchasePrice:  deal.StartPayout,
		PurchaseDate:   s.now(),
		Status:         entity.ClaimStatusInitial,
		Listed:         entity.ClaimListedInitial,
		SellerRecordID: seller.RecordID,
		OrderRecordID:  order.RecordID,
	}

	recordID, err := s.inventory.Create(ctx, &claim)
	if err != nil {
		metricClaims.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("inventory.Create: %w", err)
	}

	claim.RecordID = recordID

	s.disableOrder(ctx, order)

	if err := s.notifier.NotifySeller(ctx, seller, claim); err != nil {
		logger(ctx).Error("seller notification failed", "seller", seller.Code, "error", err)
	}

	if err := s.notifier.NotifyAutomation(ctx, claim); err != nil {
		logger(ctx).Error("automation notification failed", "record_id", recordID, "error", err)
	}

	metricClaims.WithLabelValues("accepted").Inc()

	logger(ctx).Info("deal claimed",
		"order", order.RecordID,
		"seller", seller.Code,
		"inventory_record", recordID,
	)

	return &ClaimResult{Seller: seller, Claim: claim}, nil
}

// RequestOffer — встречное предложение через кнопку на карточке.
func (s *Service) RequestOffer(ctx context.Context, req OfferRequest) (*OfferResult, error) {
	seller, err := s.ResolveSeller(ctx, req.SellerCode)
	if err != nil {
		metricOffers.WithLabelValues("rejected").Inc()
		return nil, err
	}

	amount, err := parseOfferAmount(req.Amount)
	if err != nil {
		metricOffers.WithLabelValues("rejected").Inc()
		return nil, err
	}

	order, err := s.ResolveOrderByMessage(ctx, req.Card.MessageID)
	if err != nil {
		metricOffers.WithLabelValues("rejected").Inc()
		return nil, err
	}

	existing, err := s.offers.ListByOrder(ctx, order.RecordID)
	if err != nil {
		metricOffers.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("offers.ListByOrder: %w", err)
	}

	verdict := EvaluateOffer(amount, existing)
	if !verdict.Accepted {
		metricOffers.WithLabelValues("rejected").Inc()

		return &OfferResult{
			Accepted: false,
			Amount:   amount,
			Verdict:  verdict,
			Seller:   *seller,
		}, nil
	}

	offer := entity.Offer{
		Amount:         amount,
		SellerRecordID: seller.RecordID,
		OrderRecordID:  order.RecordID,
		CreatedAt:      s.now(),
	}

	if err := s.offers.Create(ctx, &offer); err != nil {
		metricOffers.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("offers.Create: %w", err)
	}

	metricOffers.WithLabelValues("accepted").Inc()

	logger(ctx).Info("offer accepted",
		"order", order.RecordID,
		"seller", seller.Code,
		"amount", amount,
	)

	return &OfferResult{
		Accepted: true,
		Amount:   amount,
		Verdict:  verdict,
		Seller:   *seller,
	}, nil
}

// Disable гасит все копии карточки заказа, независимо от наличия клейма.
// Повторный вызов с уже взведённым флагом не делает лишнего фан-аута.
func (s *Service) Disable(ctx context.Context, orderRecordID string) error {
	order, err := s.orders.GetByID(ctx, orderRecordID)
	if err != nil {
		return fmt.Errorf("orders.GetByID: %w", err)
	}

	if order.ButtonsDisabled {
		logger(ctx).Debug("order already disabled, skipping fan-out", "record_id", orderRecordID)
		return nil
	}

	s.disableOrder(ctx, *order)

	return nil
}

// Reset фиксирует новый набор опубликованных копий и снимает флаг гашения,
// чтобы будущие клеймы/предложения находили эту публикацию.
func (s *Service) Reset(ctx context.Context, orderRecordID string, messageIDs []string) error {
	if err := s.orders.SetMessageIDs(ctx, orderRecordID, messageIDs); err != nil {
		return fmt.Errorf("orders.SetMessageIDs: %w", err)
	}

	if err := s.orders.SetButtonsDisabled(ctx, orderRecordID, false); err != nil {
		return fmt.Errorf("orders.SetButtonsDisabled: %w", err)
	}

	return nil
}

// disableOrder — фан-аут гашения по всем копиям плюс взведение флага.
// Каждая копия — независимая попытка: удалённое сообщение или недоступный чат
// не мешают погасить остальные.
func (s *Service) disableOrder(ctx context.Context, order entity.Order) {
	s.fanOutDisable(ctx, order.MessageIDs)

	if err := s.orders.SetButtonsDisabled(ctx, order.RecordID, true); err != nil {
		logger(ctx).Error("failed to set disabled flag", "record_id", order.RecordID, "error", err)
	}
}

func (s *Service) fanOutDisable(ctx context.Context, messageIDs []string) {
	if len(messageIDs) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutConcurrency)

	for _, chatID := range s.broadcastChats {
		for _, messageID := range messageIDs {
			g.Go(func() error {
				if err := s.cards.DisableCard(gctx, chatID, messageID); err != nil {
					metricFanOutFailures.Inc()
					logger(ctx).Warn("failed to disable card copy",
						"chat_id", chatID, "message_id", messageID, "error", err)
				}

				return nil
			})
		}
	}

	_ = g.Wait()
}

func parseOfferAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), currencySymbol))

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return 0, domain.NewError(errcodes.InvalidOfferAmount, "offer amount must be a positive number")
	}

	return amount, nil
}
