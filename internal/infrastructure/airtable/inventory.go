package airtable

import (
	"context"
	"fmt"
	"time"

	"dealdesk/internal/domain/entity"
)

type InventoryStore struct {
	client *Client
}

func NewInventoryStore(client *Client) *InventoryStore {
	return &InventoryStore{client: client}
}

func (s *InventoryStore) FindByOrder(ctx context.Context, orderRecordID string) (*entity.Claim, error) {
	formula := fmt.Sprintf("FIND(%s, ARRAYJOIN(RECORD_ID({%s}))) > 0",
		formulaString(orderRecordID), fieldInventoryOrder)

	records, err := s.client.listRecords(ctx, tableInventory, formula, 1)
	if err != nil {
		return nil, fmt.Errorf("listRecords: %w", err)
	}

	if len(records) == 0 {
		return nil, nil //nolint:nilnil // отсутствие клейма — не ошибка
	}

	claim := claimFromRecord(records[0])

	return &claim, nil
}

func (s *InventoryStore) Create(ctx context.Context, claim *entity.Claim) (string, error) {
	fields := map[string]any{
		fieldInventoryProductName:   claim.ProductName,
		fieldInventorySKU:           claim.SKU,
		fieldInventorySize:          claim.Size,
		fieldInventoryBrand:         claim.Brand,
		fieldInventoryPurchasePrice: claim.PurchasePrice,
		fieldInventoryPurchaseDate:  claim.PurchaseDate.Format(dateLayout),
		fieldInventoryStatus:        claim.Status,
		fieldInventoryListed:        claim.Listed,
		fieldInventorySeller:        []string{claim.SellerRecordID},
		fieldInventoryOrder:         []string{claim.OrderRecordID},
	}

	if claim.DealID != "" {
		fields[fieldInventoryDealID] = claim.DealID
	}

	record, err := s.client.createRecord(ctx, tableInventory, fields)
	if err != nil {
		return "", fmt.Errorf("createRecord: %w", err)
	}

	return record.ID, nil
}

func claimFromRecord(r Record) entity.Claim {
	purchaseDate, _ := time.Parse(dateLayout, stringField(r, fieldInventoryPurchaseDate))

	return entity.Claim{
		RecordID:       r.ID,
		ProductName:    stringField(r, fieldInventoryProductName),
		SKU:            stringField(r, fieldInventorySKU),
		Size:           stringField(r, fieldInventorySize),
		Brand:          stringField(r, fieldInventoryBrand),
		DealID:         stringField(r, fieldInventoryDealID),
		PurchasePrice:  floatField(r, fieldInventoryPurchasePrice),
		PurchaseDate:   purchaseDate,
		Status:         stringField(r, fieldInventoryStatus),
		Listed:         stringField(r, fieldInventoryListed),
		SellerRecordID: linkField(r, fieldInventorySeller),
		OrderRecordID:  linkField(r, fieldInventoryOrder),
	}
}
