package entity

// Order — запись заказа во внешнем сторе, каноническая привязка сделки.
// MessageIDs — идентификаторы всех опубликованных копий карточки.
type Order struct {
	RecordID        string   `json:"record_id"`
	DealID          string   `json:"deal_id,omitempty"`
	MessageIDs      []string `json:"message_ids"`
	ButtonsDisabled bool     `json:"buttons_disabled"`

	// Сводка по сделке из полей заказа — используется automation-клеймом,
	// когда текста карточки нет под рукой.
	ProductName string  `json:"product_name,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Size        string  `json:"size,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	StartPayout float64 `json:"start_payout,omitempty"`
}
