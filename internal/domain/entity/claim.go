package entity

import "time"

// Статусы inventory-записи при создании клейма. Фиксированные стартовые
// значения — дальше ими управляет внешняя система.
const (
	ClaimStatusInitial = "Pending Shipment"
	ClaimListedInitial = "Not Listed"
)

// Claim — терминальное, эксклюзивное действие по сделке. На один заказ
// допускается не больше одной успешной записи.
type Claim struct {
	RecordID string `json:"record_id,omitempty"`

	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Size        string `json:"size"`
	Brand       string `json:"brand"`
	DealID      string `json:"deal_id,omitempty"`

	PurchasePrice float64   `json:"purchase_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Status        string    `json:"status"`
	Listed        string    `json:"listed"`

	SellerRecordID string `json:"seller_record_id"`
	OrderRecordID  string `json:"order_record_id"`
}
