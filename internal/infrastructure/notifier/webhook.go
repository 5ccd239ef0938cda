package notifier

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dealdesk/internal/domain/entity"
	"dealdesk/pkg/contextx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

// Webhook доставляет уведомления о клеймах по HTTP: селлеру на его личный
// webhook и внешней автоматизации на общий endpoint.
type Webhook struct {
	httpClient    *http.Client
	automationURL string
}

func NewWebhook(automationURL string, timeout time.Duration) *Webhook {
	return &Webhook{
		httpClient:    &http.Client{Timeout: timeout},
		automationURL: automationURL,
	}
}

type claimPayload struct {
	Event         string  `json:"event"`
	RecordID      string  `json:"record_id"`
	ProductName   string  `json:"product_name"`
	SKU           string  `json:"sku"`
	Size          string  `json:"size"`
	Brand         string  `json:"brand"`
	DealID        string  `json:"deal_id,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	SellerCode    string  `json:"seller_code,omitempty"`
}

func (w *Webhook) NotifySeller(ctx context.Context, seller entity.Seller, claim entity.Claim) error {
	if seller.WebhookURL == "" {
		logger(ctx).Debug("seller has no webhook configured", "seller", seller.Code)
		return nil
	}

	payload := newClaimPayload(claim)
	payload.SellerCode = seller.Code

	return w.post(ctx, seller.WebhookURL, payload)
}

func (w *Webhook) NotifyAutomation(ctx context.Context, claim entity.Claim) error {
	if w.automationURL == "" {
		return nil
	}

	return w.post(ctx, w.automationURL, newClaimPayload(claim))
}

func newClaimPayload(claim entity.Claim) claimPayload {
	return claimPayload{
		Event:         "deal.claimed",
		RecordID:      claim.RecordID,
		ProductName:   claim.ProductName,
		SKU:           claim.SKU,
		Size:          claim.Size,
		Brand:         claim.Brand,
		DealID:        claim.DealID,
		PurchasePrice: claim.PurchasePrice,
		PurchaseDate:  claim.PurchaseDate.Format("2006-01-02"),
	}
}

func (w *Webhook) post(ctx context.Context, url string, payload claimPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}

	return nil
}
