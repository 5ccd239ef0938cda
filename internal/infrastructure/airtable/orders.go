package airtable

import (
	"context"
	"fmt"
	"strings"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/errcodes"
)

// messageIDsSeparator — идентификаторы копий храним одной текстовой колонкой
// через запятую, как их видят операторы базы.
const messageIDsSeparator = ","

type OrderStore struct {
	client *Client
}

func NewOrderStore(client *Client) *OrderStore {
	return &OrderStore{client: client}
}

func (s *OrderStore) GetByID(ctx context.Context, recordID string) (*entity.Order, error) {
	record, err := s.client.getRecord(ctx, tableOrders, recordID)
	if err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.NotFound {
			return nil, domain.NewError(errcodes.OrderNotFound, "order record not found")
		}

		return nil, fmt.Errorf("getRecord: %w", err)
	}

	order := orderFromRecord(*record)

	return &order, nil
}

// FindByMessageID — префильтр по вхождению подстроки: FIND ничего не знает о
// границах идентификаторов внутри колонки. Точное членство проверяет сервис.
func (s *OrderStore) FindByMessageID(ctx context.Context, messageID string) ([]entity.Order, error) {
	formula := fmt.Sprintf("FIND(%s, {%s}) > 0", formulaString(messageID), fieldOrderMessageIDs)

	records, err := s.client.listRecords(ctx, tableOrders, formula, 0)
	if err != nil {
		return nil, fmt.Errorf("listRecords: %w", err)
	}

	orders := make([]entity.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, orderFromRecord(r))
	}

	return orders, nil
}

func (s *OrderStore) SetMessageIDs(ctx context.Context, recordID string, messageIDs []string) error {
	fields := map[string]any{
		fieldOrderMessageIDs: strings.Join(messageIDs, messageIDsSeparator),
	}

	if err := s.client.updateRecord(ctx, tableOrders, recordID, fields); err != nil {
		return fmt.Errorf("updateRecord: %w", err)
	}

	return nil
}

func (s *OrderStore) SetButtonsDisabled(ctx context.Context, recordID string, disabled bool) error {
	fields := map[string]any{fieldOrderButtonsDisabled: disabled}

	if err := s.client.updateRecord(ctx, tableOrders, recordID, fields); err != nil {
		return fmt.Errorf("updateRecord: %w", err)
	}

	return nil
}

func orderFromRecord(r Record) entity.Order {
	return entity.Order{
		RecordID:        r.ID,
		DealID:          stringField(r, fieldOrderDealID),
		MessageIDs:      splitMessageIDs(stringField(r, fieldOrderMessageIDs)),
		ButtonsDisabled: boolField(r, fieldOrderButtonsDisabled),
		ProductName:     stringField(r, fieldOrderProductName),
		SKU:             stringField(r, fieldOrderSKU),
		Size:            stringField(r, fieldOrderSize),
		Brand:           stringField(r, fieldOrderBrand),
		StartPayout:     floatField(r, fieldOrderPayout),
	}
}

func splitMessageIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, messageIDsSeparator)

	ids := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}
