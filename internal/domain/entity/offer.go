package entity

import "time"

// Offer — встречное предложение селлера по сделке.
// После принятия и записи в стор считается неизменяемым.
type Offer struct {
	RecordID       string    `json:"record_id,omitempty"`
	Amount         float64   `json:"amount"`
	SellerRecordID string    `json:"seller_record_id"`
	OrderRecordID  string    `json:"order_record_id"`
	CreatedAt      time.Time `json:"created_at"`
}
