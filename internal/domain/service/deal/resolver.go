package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/errcodes"
)

const (
	sellerCodePrefix = "SE-"
	sellerCodeDigits = 5
)

var sellerCodePattern = regexp.MustCompile(`^[0-9]+$`) //nolint:gochecknoglobals

// CanonicalSellerCode нормализует пользовательский ввод в канонический код
// селлера: только цифры, дополнение нулями слева до пяти знаков, фиксированный
// префикс. "00007" и "7" дают один и тот же SE-00007. Невалидный ввод
// отклоняется до любого похода в стор.
func CanonicalSellerCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)

	if code == "" || !sellerCodePattern.MatchString(code) {
		return "", domain.NewError(errcodes.InvalidSellerCode, "seller code must contain digits only")
	}

	if len(code) < sellerCodeDigits {
		code = strings.Repeat("0", sellerCodeDigits-len(code)) + code
	}

	return sellerCodePrefix + code, nil
}

// ResolveSeller превращает введённый код в запись селлера из стора.
// Селлеры здесь никогда не создаются, уникальность кода — забота стора.
func (s *Service) ResolveSeller(ctx context.Context, rawCode string) (*entity.Seller, error) {
	canonical, err := CanonicalSellerCode(rawCode)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellers.FindByCode(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("sellers.FindByCode: %w", err)
	}

	if seller == nil {
		return nil, domain.NewError(errcodes.SellerNotFound,
			fmt.Sprintf("seller %s not found", canonical))
	}

	return seller, nil
}

// ResolveOrderByMessage находит заказ, среди опубликованных копий которого
// есть сообщение с данным идентификатором. Стор отдаёт кандидатов по
// подстрочному префильтру, членство подтверждаем сравнением целых
// идентификаторов — подстрочного совпадения недостаточно.
func (s *Service) ResolveOrderByMessage(ctx context.Context, messageID string) (*entity.Order, error) {
	candidates, err := s.orders.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("orders.FindByMessageID: %w", err)
	}

	for i := range candidates {
		if lo.Contains(candidates[i].MessageIDs, messageID) {
			return &candidates[i], nil
		}
	}

	return nil, domain.NewError(errcodes.OrderNotFound,
		fmt.Sprintf("no order found for message %s", messageID))
}
