package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/errcodes"
)

type fakeSellerStore struct {
	sellers map[string]entity.Seller // по каноническому коду
	calls   int
}

func (f *fakeSellerStore) FindByCode(_ context.Context, code string) (*entity.Seller, error) {
	f.calls++

	s, ok := f.sellers[code]
	if !ok {
		return nil, nil
	}

	return &s, nil
}

type fakeOrderStore struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderStore) GetByID(_ context.Context, recordID string) (*entity.Order, error) {
	order, ok := f.orders[recordID]
	if !ok {
		return nil, domain.NewError(errcodes.OrderNotFound, "order not found")
	}

	copied := *order

	return &copied, nil
}

// FindByMessageID эмулирует подстрочный префильтр стора: отдаёт все заказы,
// у которых messageID встречается как подстрока склеенного набора.
func (f *fakeOrderStore) FindByMessageID(_ context.Context, messageID string) ([]entity.Order, error) {
	var result []entity.Order

	for _, order := range f.orders {
		if strings.Contains(strings.Join(order.MessageIDs, ","), messageID) {
			result = append(result, *order)
		}
	}

	return result, nil
}

func (f *fakeOrderStore) SetMessageIDs(_ context.Context, recordID string, messageIDs []string) error {
	order, ok := f.orders[recordID]
	if !ok {
		return domain.NewError(errcodes.OrderNotFound, "order not found")
	}

	order.MessageIDs = messageIDs

	return nil
}

func (f *fakeOrderStore) SetButtonsDisabled(_ context.Context, recordID string, disabled bool) error {
	order, ok := f.orders[recordID]
	if !ok {
		return domain.NewError(errcodes.OrderNotFound, "order not found")
	}

	order.ButtonsDisabled = disabled

	return nil
}

type fakeOfferStore struct {
	offers  []entity.Offer
	listErr error
}

func (f *fakeOfferStore) ListByOrder(_ context.Context, orderRecordID string) ([]entity.Offer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var result []entity.Offer

	for _, o := range f.offers {
		if o.OrderRecordID == orderRecordID {
			result = append(result, o)
		}
	}

	return result, nil
}

func (f *fakeOfferStore) Create(_ context.Context, offer *entity.Offer) error {
	offer.RecordID = fmt.Sprintf("off-%d", len(f.offers)+1)
	f.offers = append(f.offers, *offer)

	return nil
}

type fakeInventoryStore struct {
	claims    map[string]entity.Claim // по record id заказа
	createErr error
}

func (f *fakeInventoryStore) FindByOrder(_ context.Context, orderRecordID string) (*entity.Claim, error) {
	claim, ok := f.claims[orderRecordID]
	if !ok {
		return nil, nil
	}

	return &claim, nil
}

func (f *fakeInventoryStore) Create(_ context.Context, claim *entity.Claim) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}

	if f.claims == nil {
		f.claims = map[string]entity.Claim{}
	}

	recordID := fmt.Sprintf("inv-%d", len(f.claims)+1)
	f.claims[claim.OrderRecordID] = *claim

	return recordID, nil
}

type disabledCopy struct {
	chatID    int64
	messageID string
}

type fakeCardGateway struct {
	mu         sync.Mutex
	nextMsgID  int
	posted     []PostedCard
	postErr    map[int64]error // по chat id
	disabled   []disabledCopy
	disableErr error
}

func (f *fakeCardGateway) PostCard(_ context.Context, chatID int64, _ Card) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.postErr[chatID]; ok {
		return "", err
	}

	f.nextMsgID++
	messageID := fmt.Sprintf("msg-%d", f.nextMsgID)
	f.posted = append(f.posted, PostedCard{ChatID: chatID, MessageID: messageID})

	return messageID, nil
}

func (f *fakeCardGateway) DisableCard(_ context.Context, chatID int64, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disableErr != nil {
		return f.disableErr
	}

	f.disabled = append(f.disabled, disabledCopy{chatID: chatID, messageID: messageID})

	return nil
}

type fakeNotifier struct {
	sellerClaims     []entity.Claim
	automationClaims []entity.Claim
	sellerErr        error
	automationErr    error
}

func (f *fakeNotifier) NotifySeller(_ context.Context, _ entity.Seller, claim entity.Claim) error {
	if f.sellerErr != nil {
		return f.sellerErr
	}

	f.sellerClaims = append(f.sellerClaims, claim)

	return nil
}

func (f *fakeNotifier) NotifyAutomation(_ context.Context, claim entity.Claim) error {
	if f.automationErr != nil {
		return f.automationErr
	}

	f.automationClaims = append(f.automationClaims, claim)

	return nil
}

type fakeGuard struct {
	busy       bool
	acquireErr error
	acquired   []string
	released   []string
}

func (f *fakeGuard) Acquire(_ context.Context, orderRecordID string) (bool, error) {
	if f.acquireErr != nil {
		return false, f.acquireErr
	}

	if f.busy {
		return false, nil
	}

	f.acquired = append(f.acquired, orderRecordID)

	return true, nil
}

func (f *fakeGuard) Release(_ context.Context, orderRecordID string) {
	f.released = append(f.released, orderRecordID)
}
