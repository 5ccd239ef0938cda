package airtable

import (
	"context"
	"fmt"
	"strings"

	"dealdesk/internal/domain/entity"
)

type SellerStore struct {
	client *Client
}

func NewSellerStore(client *Client) *SellerStore {
	return &SellerStore{client: client}
}

func (s *SellerStore) FindByCode(ctx context.Context, canonicalCode string) (*entity.Seller, error) {
	formula := fmt.Sprintf("{%s} = %s", fieldSellerCode, formulaString(canonicalCode))

	records, err := s.client.listRecords(ctx, tableSellers, formula, 1)
	if err != nil {
		return nil, fmt.Errorf("listRecords: %w", err)
	}

	if len(records) == 0 {
		return nil, nil //nolint:nilnil // отсутствие записи — не ошибка
	}

	seller := sellerFromRecord(records[0])

	return &seller, nil
}

func sellerFromRecord(r Record) entity.Seller {
	return entity.Seller{
		RecordID:   r.ID,
		Code:       stringField(r, fieldSellerCode),
		WebhookURL: stringField(r, fieldSellerWebhook),
	}
}

// formulaString — строковый литерал формулы фильтра с экранированием кавычек.
func formulaString(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
