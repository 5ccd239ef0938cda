package entity

// Deal — торговое предложение, которое публикуется карточкой в чаты.
// Долговременного Deal-состояния у сервиса нет: всё, что нужно для обработки
// ответа, восстанавливается из текста карточки и записей внешнего стора.
type Deal struct {
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Size        string  `json:"size"`
	Brand       string  `json:"brand"`
	StartPayout float64 `json:"start_payout"`

	// Опциональные поля: пустая строка = отсутствует.
	DealID   string `json:"deal_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	// Ссылка на запись заказа во внешнем сторе (может отсутствовать).
	OrderRecordID string `json:"order_record_id,omitempty"`
}
