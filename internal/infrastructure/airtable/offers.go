package airtable

import (
	"context"
	"fmt"

	"dealdesk/internal/domain/entity"
)

type OfferStore struct {
	client *Client
}

func NewOfferStore(client *Client) *OfferStore {
	return &OfferStore{client: client}
}

// ListByOrder — linked-record поле в формуле видно только как строка,
// поэтому фильтруем через ARRAYJOIN по record id заказа.
func (s *OfferStore) ListByOrder(ctx context.Context, orderRecordID string) ([]entity.Offer, error) {
	formula := fmt.Sprintf("FIND(%s, ARRAYJOIN(RECORD_ID({%s}))) > 0",
		formulaString(orderRecordID), fieldOfferOrder)

	records, err := s.client.listRecords(ctx, tableOffers, formula, 0)
	if err != nil {
		return nil, fmt.Errorf("listRecords: %w", err)
	}

	offers := make([]entity.Offer, 0, len(records))
	for _, r := range records {
		offers = append(offers, entity.Offer{
			RecordID:       r.ID,
			Amount:         floatField(r, fieldOfferAmount),
			SellerRecordID: linkField(r, fieldOfferSeller),
			OrderRecordID:  linkField(r, fieldOfferOrder),
		})
	}

	return offers, nil
}

func (s *OfferStore) Create(ctx context.Context, offer *entity.Offer) error {
	fields := map[string]any{
		fieldOfferAmount: offer.Amount,
		fieldOfferDate:   offer.CreatedAt.Format(dateLayout),
		fieldOfferSeller: []string{offer.SellerRecordID},
		fieldOfferOrder:  []string{offer.OrderRecordID},
	}

	record, err := s.client.createRecord(ctx, tableOffers, fields)
	if err != nil {
		return fmt.Errorf("createRecord: %w", err)
	}

	offer.RecordID = record.ID

	return nil
}
