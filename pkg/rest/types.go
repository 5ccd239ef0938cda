// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

type CreateDealRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	StartPayout float64 `json:"startPayout" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	DealID      string  `json:"dealId,omitempty"`
	RecordID    string  `json:"recordId,omitempty"`
}

type CreateDealResponse struct {
	MessageIDs []string `json:"messageIds"`
}

type DisableDealRequest struct {
	RecordID string `json:"recordId" validate:"required"`
}

type ClaimDealRequest struct {
	OrderRecordID string `json:"orderRecordId" validate:"required"`
	SellerCode    string `json:"sellerCode" validate:"required"`
}

type ClaimDealResponse struct {
	SellerCode      string `json:"sellerCode"`
	InventoryRecord string `json:"inventoryRecord"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
